package collection

import "path"

// ReconcileResult reports what one Reconcile run changed.
type ReconcileResult struct {
	Added        int  // New directory files appended
	Removed      int  // Entries whose file vanished from the directory
	CoverUpdated bool // Cover was recomputed (its entry was removed)
	Total        int  // Photo count after the run
}

// Reconcile brings a collection in line with the directory
// photos/<name>/: files present in the directory but not in the
// collection are appended (sorted by filename), and entries whose file
// is gone are removed — the one operation besides a filtered Sync that
// deletes entries. Caption and alt text on surviving entries are kept.
//
// files is the directory listing, base filenames only. If the removed
// entry was the cover, the cover moves to the first remaining photo, or
// is cleared when none remain. The document is written only when
// something changed.
func (s *Store) Reconcile(name string, files []string, dryRun bool) (*Collection, ReconcileResult, error) {
	c, created, err := s.LoadOrCreate(name)
	if err != nil {
		return nil, ReconcileResult{}, err
	}

	current := make(map[string]bool, len(files))
	for _, f := range files {
		current[path.Join(name, f)] = true
	}

	var res ReconcileResult
	coverRemoved := c.CoverPath != "" && !current[c.CoverPath]

	kept := c.Photos[:0]
	for _, p := range c.Photos {
		if current[p.Path] {
			kept = append(kept, p)
		} else {
			res.Removed++
		}
	}
	c.Photos = kept

	existing := make(map[string]bool, len(c.Photos))
	for _, p := range c.Photos {
		existing[p.Path] = true
	}
	for _, f := range files {
		photoPath := path.Join(name, f)
		if !existing[photoPath] {
			c.Photos = append(c.Photos, PhotoEntry{Path: photoPath})
			res.Added++
		}
	}

	if coverRemoved || (c.CoverPath == "" && len(c.Photos) > 0) {
		if len(c.Photos) > 0 {
			c.CoverPath = c.Photos[0].Path
		} else {
			c.CoverPath = ""
		}
		res.CoverUpdated = true
	}
	res.Total = len(c.Photos)

	changed := res.Added > 0 || res.Removed > 0 || res.CoverUpdated || created
	if !changed || dryRun {
		return c, res, nil
	}
	if err := s.Save(name, c); err != nil {
		return nil, res, err
	}
	return c, res, nil
}
