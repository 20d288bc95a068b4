// add-to-collection adds explicit photos to a manual collection.
//
// Usage:
//
//	add-to-collection <collection-name> <photo-path> [photo-path...]
//
// Paths must resolve to existing files under the photo library root.
// The collection is created on first use. Photos already present are
// skipped, and a run that adds nothing leaves the file untouched.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iamjoshua/photography/internal/collection"
	"github.com/iamjoshua/photography/internal/config"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "Validate and report without writing")
	rootDir := flag.String("root", "", "Project root directory (default: current directory)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <collection-name> <photo-path> [photo-path...]\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	name := flag.Arg(0)
	candidates := flag.Args()[1:]

	cfg := config.Load(*rootDir)
	store := collection.NewStore(cfg.CollectionsDir)

	_, res, err := store.Add(name, cfg.PhotosDir, candidates, *dryRun)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating collection '%s': %v\n", name, err)
		os.Exit(1)
	}

	fmt.Printf("=== Collection '%s' Update Summary ===\n", name)

	if res.Created && len(res.Added) > 0 {
		fmt.Println("\nCreated new collection")
	}
	if len(res.Added) > 0 {
		fmt.Printf("\nAdded %d photo(s):\n", len(res.Added))
		for _, p := range res.Added {
			fmt.Printf("  + %s\n", p)
		}
	}
	if len(res.Skipped) > 0 {
		fmt.Printf("\nSkipped %d photo(s) (already in collection):\n", len(res.Skipped))
		for _, p := range res.Skipped {
			fmt.Printf("  - %s\n", p)
		}
	}
	if len(res.Errors) > 0 {
		fmt.Printf("\nErrors (%d):\n", len(res.Errors))
		for _, e := range res.Errors {
			fmt.Printf("  ! %s - %s\n", e.Path, e.Reason)
		}
	}

	fmt.Printf("\nTotal photos in collection: %d\n", res.Total)
	fmt.Printf("Collection file: %s\n", store.Path(name))
	if *dryRun {
		fmt.Println("[DRY RUN] Nothing written")
	}

	// A run where every candidate failed validation is a hard failure.
	if len(res.Added) == 0 && len(res.Skipped) == 0 && len(res.Errors) > 0 {
		os.Exit(1)
	}
}
