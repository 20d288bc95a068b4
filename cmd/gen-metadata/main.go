// gen-metadata regenerates the per-photo metadata YAML tree.
//
// Usage:
//
//	gen-metadata             # Rebuild data/photos/ from scratch
//	gen-metadata --dry-run   # List the files that would be created
//	gen-metadata -v <photo>  # Dump one photo's metadata to stdout
//
// The data/photos/ tree mirrors the photo library: for every image at
// photos/<path>, a document is written at data/photos/<path>.yaml. The
// tree is deleted and rebuilt on every run so stale documents never
// linger. The exports/ directory is not scanned.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iamjoshua/photography/internal/config"
	"github.com/iamjoshua/photography/internal/library"
	"github.com/iamjoshua/photography/internal/meta"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "Show what would be created without writing files")
	verbose := flag.String("v", "", "Dump metadata for a single photo and exit")
	rootDir := flag.String("root", "", "Project root directory (default: current directory)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Load(*rootDir)

	if *verbose != "" {
		if err := dumpOne(*verbose); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if _, err := os.Stat(cfg.PhotosDir); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: photos directory not found: %s\n", cfg.PhotosDir)
		os.Exit(1)
	}

	paths, err := library.Walk(cfg.PhotosDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning photos: %v\n", err)
		os.Exit(1)
	}

	if *dryRun {
		fmt.Println("DRY RUN - No files will be created")
		fmt.Println()
	}

	// Stale documents for deleted photos must not survive, so the whole
	// tree is rebuilt.
	if _, err := os.Stat(cfg.DataPhotosDir); err == nil {
		fmt.Println("Deleting existing metadata files...")
		fmt.Println()
		if !*dryRun {
			if err := os.RemoveAll(cfg.DataPhotosDir); err != nil {
				fmt.Fprintf(os.Stderr, "Error removing %s: %v\n", cfg.DataPhotosDir, err)
				os.Exit(1)
			}
		}
	}

	fmt.Printf("Found %d photos to process\n\n", len(paths))

	reader := meta.NewReader()
	defer reader.Close()

	createdCount, errorCount := 0, 0
	for _, rel := range paths {
		doc := meta.Document{
			Path:     rel,
			Metadata: reader.Read(filepath.Join(cfg.PhotosDir, filepath.FromSlash(rel))),
		}

		yamlPath := filepath.Join(cfg.DataPhotosDir, filepath.FromSlash(rel))
		yamlPath = strings.TrimSuffix(yamlPath, filepath.Ext(yamlPath)) + ".yaml"

		if *dryRun {
			fmt.Printf("Create: %s\n", yamlPath)
			createdCount++
			continue
		}

		data, err := doc.Marshal()
		if err != nil {
			fmt.Printf("Error serializing %s: %v\n", rel, err)
			errorCount++
			continue
		}
		if err := os.MkdirAll(filepath.Dir(yamlPath), 0755); err != nil {
			fmt.Printf("Error creating %s: %v\n", filepath.Dir(yamlPath), err)
			errorCount++
			continue
		}
		if err := os.WriteFile(yamlPath, data, 0644); err != nil {
			fmt.Printf("Error writing %s: %v\n", yamlPath, err)
			errorCount++
			continue
		}
		fmt.Printf("Created: %s\n", yamlPath)
		createdCount++
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Summary:")
	fmt.Printf("  Created: %d\n", createdCount)
	fmt.Printf("  Errors:  %d\n", errorCount)
	fmt.Println(strings.Repeat("=", 60))
	if *dryRun {
		fmt.Println("\nThis was a dry run. Run without --dry-run to actually create files.")
	}
	if errorCount > 0 {
		os.Exit(1)
	}
}

// dumpOne prints a single photo's metadata document to stdout.
func dumpOne(photoPath string) error {
	if _, err := os.Stat(photoPath); err != nil {
		return err
	}

	reader := meta.NewReader()
	defer reader.Close()

	doc := meta.Document{
		Path:     filepath.Base(photoPath),
		Metadata: reader.Read(photoPath),
	}
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
