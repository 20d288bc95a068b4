// add-photos reconciles a collection with its photo directory.
//
// Usage:
//
//	add-photos <collection-name>
//
// The candidate set is every image directly inside photos/<name>/. New
// files are appended to the collection, entries whose file is gone are
// removed, and the cover is recomputed if its entry was removed.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iamjoshua/photography/internal/collection"
	"github.com/iamjoshua/photography/internal/config"
	"github.com/iamjoshua/photography/internal/library"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "Report changes without writing")
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
	photoDir := filepath.Join(cfg.PhotosDir, name)

	files, err := library.ListImages(photoDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", photoDir, err)
		os.Exit(1)
	}

	if len(files) == 0 {
		if _, err := os.Stat(store.Path(name)); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: no image files found in %s and no existing collection to update\n", photoDir)
			os.Exit(1)
		}
	}

	c, res, err := store.Reconcile(name, files, *dryRun)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating collection '%s': %v\n", name, err)
		os.Exit(1)
	}

	if res.Added > 0 || res.Removed > 0 || res.CoverUpdated {
		if res.Added > 0 {
			fmt.Printf("Added %d new photo(s)\n", res.Added)
		}
		if res.Removed > 0 {
			fmt.Printf("Removed %d photo(s) that no longer exist\n", res.Removed)
		}
		if res.CoverUpdated {
			if c.CoverPath != "" {
				fmt.Printf("Updated cover_path to: %s\n", c.CoverPath)
			} else {
				fmt.Println("Cleared cover_path (no photos remaining)")
			}
		}
		fmt.Printf("Total photos in collection: %d\n", res.Total)
		if *dryRun {
			fmt.Println("[DRY RUN] Nothing written")
		}
	} else {
		fmt.Printf("No changes needed. Collection is in sync with %d photos.\n", res.Total)
	}

	fmt.Printf("Collection file: %s\n", store.Path(name))
}
