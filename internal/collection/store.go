package collection

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store loads and saves collection documents in a single directory,
// one <name>.yaml per collection.
//
// Saves are atomic: the document is written to a temp file in the same
// directory and renamed over the target, so an interrupted write can
// never leave a truncated collection behind.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir (normally data/collections).
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the file path for the named collection.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".yaml")
}

// Load reads the named collection. Returns ErrNotFound if the file does
// not exist and ErrInvalid if it exists but cannot be parsed.
func (s *Store) Load(name string) (*Collection, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}

	var c Collection
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
	}
	if c.Title == "" && c.Photos == nil && c.Filters == nil {
		// An empty or unrelated document is not a collection.
		return nil, fmt.Errorf("%w: %s", ErrInvalid, name)
	}
	if c.Photos == nil {
		c.Photos = []PhotoEntry{}
	}
	return &c, nil
}

// LoadOrCreate reads the named collection, or returns a fresh manual
// collection (and created=true) when none exists yet.
func (s *Store) LoadOrCreate(name string) (c *Collection, created bool, err error) {
	c, err = s.Load(name)
	if errors.Is(err, ErrNotFound) {
		return New(name), true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return c, false, nil
}

// Save writes the collection atomically, creating the store directory on
// first use.
func (s *Store) Save(name string, c *Collection) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := marshal(c)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.Path(name))
}

// List returns the names of all collections in the store, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// marshal serializes a collection with 2-space indentation, matching the
// documents already checked into the site.
func marshal(c *Collection) ([]byte, error) {
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}
