// create-collection creates a new collection document.
//
// Usage:
//
//	# Manual collection (curated with add-to-collection / add-photos)
//	create-collection my-favorites --title "My Favorites"
//
//	# Filtered collection (populated by sync-collection)
//	create-collection street --keywords "street,urban" --location Seattle --rating 4+
//	create-collection year-2025 --date 2025
//
// Refuses to overwrite an existing collection; edit the YAML directly to
// change filters, then re-run sync-collection.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iamjoshua/photography/internal/collection"
	"github.com/iamjoshua/photography/internal/config"
)

func main() {
	title := flag.String("title", "", "Display title (default: derived from the collection name)")
	description := flag.String("description", "", "Collection description")
	keywords := flag.String("keywords", "", "Comma-separated keyword filter (photo needs any one)")
	location := flag.String("location", "", "Location filter (matches city, state, country, or sublocation)")
	rating := flag.String("rating", "", `Rating filter ("4+" for at least 4 stars, "5" for exactly 5)`)
	date := flag.String("date", "", `Date filter ("2025", "2025-06", or "2025-06-15")`)
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

	if _, err := os.Stat(store.Path(name)); err == nil {
		fmt.Fprintf(os.Stderr, "Error: collection already exists at %s\n", store.Path(name))
		fmt.Fprintln(os.Stderr, "To update filters, edit the YAML file directly and run sync-collection")
		os.Exit(1)
	}

	c := collection.New(name)
	if *title != "" {
		c.Title = *title
	}
	c.Description = *description

	filters := &collection.FilterSpec{
		Location: *location,
		Rating:   *rating,
		Date:     *date,
	}
	for _, kw := range strings.Split(*keywords, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			filters.Keywords = append(filters.Keywords, kw)
		}
	}
	if !filters.IsZero() {
		c.Filters = filters
	}

	if err := store.Save(name, c); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving collection: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Collection Created ===")
	fmt.Printf("\nCollection: %s\n", name)
	fmt.Printf("Title: %s\n", c.Title)
	if c.Description != "" {
		fmt.Printf("Description: %s\n", c.Description)
	}

	if c.Filtered() {
		fmt.Println("\nFilters:")
		if len(c.Filters.Keywords) > 0 {
			fmt.Printf("  keywords: %s\n", strings.Join(c.Filters.Keywords, ", "))
		}
		if c.Filters.Location != "" {
			fmt.Printf("  location: %s\n", c.Filters.Location)
		}
		if c.Filters.Rating != "" {
			fmt.Printf("  rating: %s\n", c.Filters.Rating)
		}
		if c.Filters.Date != "" {
			fmt.Printf("  date: %s\n", c.Filters.Date)
		}
		fmt.Printf("\nThis is a filtered collection. Run 'sync-collection %s' to populate it.\n", name)
	} else {
		fmt.Printf("\nThis is a manual collection. Use 'add-to-collection %s <photo-paths>' to add photos.\n", name)
	}

	fmt.Printf("\nCollection file: %s\n", store.Path(name))
}
