package collection

import (
	"os"
	"path/filepath"
	"strings"
)

// AddResult reports the per-path outcome of one Add run.
type AddResult struct {
	Added   []string   // Library-relative paths appended this run
	Skipped []string   // Paths already present in the collection
	Errors  []AddError // Rejected candidates with reason codes
	Created bool       // Collection file did not exist before this run
	Total   int        // Photo count after the run
}

// Add appends photos to a manual collection, creating the collection on
// first use with a title derived from its name.
//
// Each candidate path (absolute, or relative to the working directory)
// must resolve to an existing file under photosRoot; failures are
// reported per path, never aborting the batch. Duplicates are skipped.
// Cover is set to the first photo only when the collection had none
// before this call. The file is written only when at least one photo was
// actually added, so a run of skips and errors leaves the document (and
// its mtime) untouched.
func (s *Store) Add(name, photosRoot string, candidates []string, dryRun bool) (*Collection, AddResult, error) {
	c, created, err := s.LoadOrCreate(name)
	if err != nil {
		return nil, AddResult{}, err
	}

	res := AddResult{Created: created}
	hadPhotos := len(c.Photos) > 0

	for _, candidate := range candidates {
		rel, ok := relativeToRoot(candidate, photosRoot)
		if !ok {
			res.Errors = append(res.Errors, AddError{Path: candidate, Reason: ReasonOutsideRoot})
			continue
		}
		if info, err := os.Stat(filepath.Join(photosRoot, rel)); err != nil || info.IsDir() {
			res.Errors = append(res.Errors, AddError{Path: rel, Reason: ReasonNotFound})
			continue
		}
		if c.Has(rel) {
			res.Skipped = append(res.Skipped, rel)
			continue
		}
		c.Photos = append(c.Photos, PhotoEntry{Path: rel})
		res.Added = append(res.Added, rel)
	}

	if !hadPhotos && len(c.Photos) > 0 {
		c.CoverPath = c.Photos[0].Path
	}
	res.Total = len(c.Photos)

	if len(res.Added) == 0 || dryRun {
		return c, res, nil
	}
	if err := s.Save(name, c); err != nil {
		return nil, res, err
	}
	return c, res, nil
}

// relativeToRoot resolves a candidate path to a clean path relative to
// the photo root. Paths that escape the root are rejected.
func relativeToRoot(path, root string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absRoot, abs)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
