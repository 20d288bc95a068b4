// add-from-exports builds a collection from a Lightroom export batch.
//
// Usage:
//
//	add-from-exports <collection-name>
//
// For each photo in photos/exports/: if its ingest destination already
// exists in the library, the destination path is added to the collection
// and the export copy is deleted; otherwise the photo is ingested first,
// then added. This lets arbitrary collections be exported from Lightroom
// without duplicating files already in the library.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/iamjoshua/photography/internal/collection"
	"github.com/iamjoshua/photography/internal/config"
	"github.com/iamjoshua/photography/internal/library"
	"github.com/iamjoshua/photography/internal/meta"
)

func main() {
	rootDir := flag.String("root", "", "Project root directory (default: current directory)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <collection-name>\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	name := flag.Arg(0)

	cfg := config.Load(*rootDir)
	store := collection.NewStore(cfg.CollectionsDir)

	if _, err := os.Stat(cfg.ExportsDir); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: exports directory not found: %s\n", cfg.ExportsDir)
		os.Exit(1)
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

	c, created, err := store.LoadOrCreate(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading collection '%s': %v\n", name, err)
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Adding photos to collection '%s'\n", name)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Found %d photo(s) in exports/\n\n", len(photos))

	reader := meta.NewReader()
	defer reader.Close()

	ing := &library.Ingestor{PhotosDir: cfg.PhotosDir, Read: reader.Read}
	hadPhotos := len(c.Photos) > 0

	alreadyExisted, ingested, added, alreadyInCollection, failed := 0, 0, 0, 0, 0
	for _, photo := range photos {
		exportPath := filepath.Join(cfg.ExportsDir, photo)
		fmt.Printf("Processing %s...\n", photo)

		plan := ing.Plan(exportPath)

		if plan.Replaced {
			// Already ingested: point the collection at the library copy
			// and drop the redundant export.
			if addEntry(c, plan.RelDest) {
				fmt.Printf("  ✓ Already ingested at %s\n    Added to collection\n", plan.RelDest)
				added++
				alreadyExisted++
			} else {
				fmt.Printf("  → Already in collection at %s\n", plan.RelDest)
				alreadyInCollection++
			}
			if err := os.Remove(exportPath); err != nil {
				log.Printf("Warning: could not delete from exports: %v", err)
			} else {
				fmt.Println("    Deleted from exports/")
			}
			continue
		}

		res, err := ing.Ingest(exportPath)
		if err != nil {
			fmt.Printf("  ✗ %v\n", err)
			failed++
			continue
		}
		fmt.Printf("  ✓ Moved to: %s\n", res.RelDest)
		ingested++

		if addEntry(c, res.RelDest) {
			fmt.Println("    Added to collection")
			added++
		} else {
			fmt.Println("    Already in collection")
			alreadyInCollection++
		}
	}

	if !hadPhotos && len(c.Photos) > 0 {
		c.CoverPath = c.Photos[0].Path
	}

	if added > 0 {
		if err := store.Save(name, c); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving collection: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Summary:")
	fmt.Printf("  Already existed: %d (deleted from exports)\n", alreadyExisted)
	fmt.Printf("  Newly ingested: %d\n", ingested)
	fmt.Printf("  Added to collection: %d\n", added)
	fmt.Printf("  Already in collection: %d\n", alreadyInCollection)
	if failed > 0 {
		fmt.Printf("  Errors: %d\n", failed)
	}
	if added > 0 {
		if created {
			fmt.Println("\nCreated new collection")
		}
		fmt.Printf("\nCollection updated: %s\n", store.Path(name))
		fmt.Printf("Total photos in collection: %d\n", len(c.Photos))
	} else if alreadyInCollection > 0 {
		fmt.Println("\nNo new photos added (all already in collection)")
	}
	fmt.Println(strings.Repeat("=", 60))

	if failed > 0 {
		os.Exit(1)
	}
}

// addEntry appends the photo to the collection unless already present.
func addEntry(c *collection.Collection, relPath string) bool {
	if c.Has(relPath) {
		return false
	}
	c.Photos = append(c.Photos, collection.PhotoEntry{Path: relPath})
	return true
}
