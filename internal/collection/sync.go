package collection

import (
	"fmt"
	"sort"
)

// SyncResult summarizes one Sync run.
type SyncResult struct {
	Before int // Photo count before the rebuild
	After  int // Photo count after the rebuild
}

// Sync rebuilds a filtered collection's photo list from a full library
// scan and persists the result.
//
// This is a replace, not a merge: a filtered collection is a derived
// view, so photos that stopped matching are dropped along with their
// captions. Captions and alt text on photos that still match are kept.
// Matching paths are sorted so repeat runs with unchanged metadata are
// idempotent down to list order.
//
// Returns ErrNotFound for a missing collection and ErrNotFiltered for a
// manual one; manual collections are never touched by Sync.
func (s *Store) Sync(name string, photos []PhotoRecord, dryRun bool) (*Collection, SyncResult, error) {
	c, err := s.Load(name)
	if err != nil {
		return nil, SyncResult{}, err
	}
	if !c.Filtered() {
		return nil, SyncResult{}, fmt.Errorf("%w: %s", ErrNotFiltered, name)
	}

	var matching []string
	for _, p := range photos {
		if c.Filters.Matches(p.Meta) {
			matching = append(matching, p.Path)
		}
	}
	sort.Strings(matching)

	res := SyncResult{Before: len(c.Photos), After: len(matching)}

	prior := c.entryIndex()
	entries := make([]PhotoEntry, 0, len(matching))
	for _, path := range matching {
		if old, ok := prior[path]; ok {
			entries = append(entries, old)
		} else {
			entries = append(entries, PhotoEntry{Path: path})
		}
	}
	c.Photos = entries

	// Cover follows the first entry; an empty match set leaves the last
	// known cover in place.
	if len(entries) > 0 {
		c.CoverPath = entries[0].Path
	}

	if dryRun {
		return c, res, nil
	}
	if err := s.Save(name, c); err != nil {
		return nil, res, err
	}
	return c, res, nil
}
