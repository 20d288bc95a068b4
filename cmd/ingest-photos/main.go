// ingest-photos moves exported photos into the photo library.
//
// Usage:
//
//	ingest-photos            # Move photos from photos/exports/
//	ingest-photos --dry-run  # Show destinations without moving
//
// Each photo in photos/exports/ is moved to photos/<year>/<state>/<city>/
// based on its embedded metadata. Photos without a capture date land in
// unknown-year/, photos without location metadata in unknown-location/.
// An existing file at the destination is replaced.
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
	dryRun := flag.Bool("dry-run", false, "Show what would happen without moving files")
	rootDir := flag.String("root", "", "Project root directory (default: current directory)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Load(*rootDir)

	if _, err := os.Stat(cfg.ExportsDir); os.IsNotExist(err) {
		fmt.Printf("Exports directory not found: %s\n", cfg.ExportsDir)
		fmt.Println("Creating it now...")
		if err := os.MkdirAll(cfg.ExportsDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating exports directory: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("\nPlace photos in this directory and run again.")
		return
	}

	photos, err := library.ListImages(cfg.ExportsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading exports: %v\n", err)
		os.Exit(1)
	}
	if len(photos) == 0 {
		fmt.Println("No photos found in exports/")
		return
	}

	banner := "INGESTING PHOTOS"
	if *dryRun {
		banner = "DRY RUN - No files will be moved"
	}
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println(banner)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Found %d photo(s) in exports/\n\n", len(photos))

	reader := meta.NewReader()
	defer reader.Close()

	ing := &library.Ingestor{
		PhotosDir: cfg.PhotosDir,
		Read:      reader.Read,
		DryRun:    *dryRun,
	}

	succeeded, failed, replaced := 0, 0, 0
	for _, name := range photos {
		res, err := ing.Ingest(filepath.Join(cfg.ExportsDir, name))
		if err != nil {
			fmt.Printf("✗ %s\n  %v\n", name, err)
			failed++
			continue
		}

		action := "Moved to"
		if *dryRun {
			action = "Would move to"
		}
		if res.Replaced {
			action = "Replaced"
			if *dryRun {
				action = "Would replace"
			}
			replaced++
		}
		fmt.Printf("✓ %s\n  %s: %s\n", name, action, res.RelDest)
		succeeded++
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Summary: %d succeeded, %d failed\n", succeeded, failed)
	if replaced > 0 {
		fmt.Printf("  (%d photo(s) replaced existing files)\n", replaced)
	}
	if *dryRun {
		fmt.Println("\nThis was a dry run. Run without --dry-run to move files.")
	}
	fmt.Println(strings.Repeat("=", 60))

	if failed > 0 {
		os.Exit(1)
	}
}
