// sync-collection rebuilds filtered collections from photo metadata.
//
// Usage:
//
//	sync-collection <name>        # Sync one collection
//	sync-collection --all         # Sync every filtered collection
//	sync-collection --dry-run ... # Full scan and match, no writes
//
// A filtered collection's photo list is fully derived from its filters;
// every run replaces the list with the current matches. Manual
// collections (no filters key) are skipped.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iamjoshua/photography/internal/collection"
	"github.com/iamjoshua/photography/internal/config"
	"github.com/iamjoshua/photography/internal/library"
	"github.com/iamjoshua/photography/internal/meta"
)

func main() {
	all := flag.Bool("all", false, "Sync every filtered collection")
	dryRun := flag.Bool("dry-run", false, "Scan and match without writing")
	rootDir := flag.String("root", "", "Project root directory (default: current directory)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <collection-name>\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if !*all && flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.Load(*rootDir)
	store := collection.NewStore(cfg.CollectionsDir)

	if _, err := os.Stat(cfg.PhotosDir); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: photos directory not found at %s\n", cfg.PhotosDir)
		os.Exit(1)
	}

	fmt.Println("Scanning photo library...")
	photos, err := scanLibrary(cfg.PhotosDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning photos: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Found %d photo(s)\n\n", len(photos))

	if *all {
		syncAll(store, photos, *dryRun)
		return
	}

	name := flag.Arg(0)
	fmt.Printf("=== Syncing Collection '%s' ===\n\n", name)
	if ok := syncOne(store, name, photos, *dryRun); !ok {
		os.Exit(1)
	}
}

// scanLibrary reads metadata for every image in the library.
func scanLibrary(photosDir string) ([]collection.PhotoRecord, error) {
	paths, err := library.Walk(photosDir)
	if err != nil {
		return nil, err
	}

	reader := meta.NewReader()
	defer reader.Close()

	records := make([]collection.PhotoRecord, 0, len(paths))
	for _, rel := range paths {
		records = append(records, collection.PhotoRecord{
			Path: rel,
			Meta: reader.Read(filepath.Join(photosDir, filepath.FromSlash(rel))),
		})
	}
	return records, nil
}

// syncOne syncs a single collection and prints the result.
// Returns false on a hard failure (missing or unwritable collection).
func syncOne(store *collection.Store, name string, photos []collection.PhotoRecord, dryRun bool) bool {
	_, res, err := store.Sync(name, photos, dryRun)
	if errors.Is(err, collection.ErrNotFiltered) {
		fmt.Printf("Skipping '%s' (manual collection, no filters)\n", name)
		return true
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error syncing '%s': %v\n", name, err)
		return false
	}

	fmt.Printf("Synced '%s'\n", name)
	fmt.Printf("  Before: %d photos\n", res.Before)
	fmt.Printf("  After:  %d photos\n", res.After)
	fmt.Printf("  Change: %+d\n", res.After-res.Before)
	if dryRun {
		fmt.Println("  [DRY RUN] Nothing written")
	}
	return true
}

// syncAll syncs every filtered collection in the store.
func syncAll(store *collection.Store, photos []collection.PhotoRecord, dryRun bool) {
	names, err := store.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing collections: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Syncing All Filtered Collections ===")
	fmt.Println()

	synced, skipped := 0, 0
	failed := false
	for _, name := range names {
		_, res, err := store.Sync(name, photos, dryRun)
		switch {
		case errors.Is(err, collection.ErrNotFiltered):
			fmt.Printf("Skipping '%s' (manual collection, no filters)\n", name)
			skipped++
		case err != nil:
			fmt.Fprintf(os.Stderr, "Error syncing '%s': %v\n", name, err)
			failed = true
		default:
			fmt.Printf("Synced '%s': %d -> %d photos\n", name, res.Before, res.After)
			synced++
		}
	}

	fmt.Println()
	fmt.Println("=== Summary ===")
	fmt.Printf("Synced:  %d collections\n", synced)
	fmt.Printf("Skipped: %d collections (manual)\n", skipped)
	if dryRun {
		fmt.Println("[DRY RUN] Nothing written")
	}
	if failed {
		os.Exit(1)
	}
}
