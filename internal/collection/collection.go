// Package collection maintains the YAML collection documents that drive
// the photography site.
//
// A collection is either *filtered* (its photo list is derived from a
// FilterSpec by Sync and overwritten on every run) or *manual* (curated by
// Add/Reconcile). The two share one on-disk shape; the presence of the
// filters key is what distinguishes them.
package collection

import (
	"strings"

	"github.com/iamjoshua/photography/internal/meta"
)

// PhotoEntry is one photo in a collection. Path is relative to the photo
// library root and is the entry's identity; caption and alt are
// user-editable and must survive any operation that keeps the photo.
type PhotoEntry struct {
	Path    string `yaml:"path"`
	Caption string `yaml:"caption"`
	Alt     string `yaml:"alt"`
}

// Collection is one collection document. Field order here is the
// serialized field order; keep it stable so document diffs stay small.
type Collection struct {
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	CoverPath   string       `yaml:"cover_path"`
	Filters     *FilterSpec  `yaml:"filters,omitempty"`
	Photos      []PhotoEntry `yaml:"photos"`
}

// New returns an empty manual collection with a title derived from name.
func New(name string) *Collection {
	return &Collection{
		Title:  TitleFromName(name),
		Photos: []PhotoEntry{},
	}
}

// Filtered reports whether this collection's photo list is derived from
// filters (owned by Sync) rather than curated by hand.
func (c *Collection) Filtered() bool {
	return c.Filters != nil
}

// Has reports whether the collection already contains the photo path.
func (c *Collection) Has(path string) bool {
	for _, p := range c.Photos {
		if p.Path == path {
			return true
		}
	}
	return false
}

// entryIndex maps path to entry for caption/alt lookups.
func (c *Collection) entryIndex() map[string]PhotoEntry {
	idx := make(map[string]PhotoEntry, len(c.Photos))
	for _, p := range c.Photos {
		idx[p.Path] = p
	}
	return idx
}

// TitleFromName derives a display title from a collection name:
// hyphen/underscore-separated words, each capitalized.
// "street-photography" -> "Street Photography".
func TitleFromName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// PhotoRecord pairs a library-relative photo path with its metadata.
// Sync consumes a full scan expressed as these.
type PhotoRecord struct {
	Path string
	Meta meta.Metadata
}
