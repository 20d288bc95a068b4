package collection

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStoreLoadMissing(t *testing.T) {
	s := NewStore(t.TempDir())
	_, err := s.Load("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "collections"))

	c := &Collection{
		Title:       "Street Photography",
		Description: "Shots from the street",
		CoverPath:   "2025/washington/seattle/a.jpg",
		Filters: &FilterSpec{
			Keywords: []string{"street", "urban"},
			Rating:   "4+",
		},
		Photos: []PhotoEntry{
			{Path: "2025/washington/seattle/a.jpg", Caption: "Market", Alt: "A market stall"},
			{Path: "2025/washington/seattle/b.jpg"},
		},
	}
	if err := s.Save("street", c); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load("street")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Title != c.Title || got.Description != c.Description || got.CoverPath != c.CoverPath {
		t.Errorf("header fields did not round-trip: %+v", got)
	}
	if got.Filters == nil || got.Filters.Rating != "4+" || len(got.Filters.Keywords) != 2 {
		t.Errorf("filters did not round-trip: %+v", got.Filters)
	}
	if len(got.Photos) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(got.Photos))
	}
	if got.Photos[0].Caption != "Market" || got.Photos[0].Alt != "A market stall" {
		t.Errorf("caption/alt did not round-trip: %+v", got.Photos[0])
	}
}

func TestStoreStableSerialization(t *testing.T) {
	s := NewStore(t.TempDir())
	c := &Collection{
		Title:     "Portfolio",
		CoverPath: "a.jpg",
		Photos:    []PhotoEntry{{Path: "a.jpg"}},
	}

	if err := s.Save("portfolio", c); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	first, _ := os.ReadFile(s.Path("portfolio"))

	loaded, err := s.Load("portfolio")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := s.Save("portfolio", loaded); err != nil {
		t.Fatalf("re-Save failed: %v", err)
	}
	second, _ := os.ReadFile(s.Path("portfolio"))

	if !bytes.Equal(first, second) {
		t.Errorf("load/save round trip changed the document:\n%s\nvs\n%s", first, second)
	}
}

func TestStoreFieldOrder(t *testing.T) {
	s := NewStore(t.TempDir())
	c := &Collection{
		Title:   "My Favorites",
		Filters: &FilterSpec{Date: "2025"},
		Photos:  []PhotoEntry{{Path: "a.jpg", Caption: "x"}},
	}
	if err := s.Save("fav", c); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, _ := os.ReadFile(s.Path("fav"))
	doc := string(data)
	order := []string{"title:", "description:", "cover_path:", "filters:", "photos:"}
	last := -1
	for _, key := range order {
		i := strings.Index(doc, key)
		if i < 0 {
			t.Fatalf("key %q missing from document:\n%s", key, doc)
		}
		if i < last {
			t.Errorf("key %q out of order in document:\n%s", key, doc)
		}
		last = i
	}
}

func TestStoreManualCollectionOmitsFilters(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Save("manual", New("manual")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, _ := os.ReadFile(s.Path("manual"))
	if strings.Contains(string(data), "filters:") {
		t.Errorf("manual collection must not serialize a filters key:\n%s", data)
	}
}

func TestStoreSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	if err := s.Save("c", New("c")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestStoreList(t *testing.T) {
	s := NewStore(t.TempDir())

	names, err := s.List()
	if err != nil || len(names) != 0 {
		t.Fatalf("empty store List = %v, %v", names, err)
	}

	for _, name := range []string{"zebra", "alpha", "mid"} {
		if err := s.Save(name, New(name)); err != nil {
			t.Fatalf("Save %s failed: %v", name, err)
		}
	}
	names, err = s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"alpha", "mid", "zebra"}
	if len(names) != len(want) {
		t.Fatalf("List = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestTitleFromName(t *testing.T) {
	tests := []struct{ name, want string }{
		{"street-photography", "Street Photography"},
		{"my_favorites", "My Favorites"},
		{"portfolio", "Portfolio"},
		{"year-2025", "Year 2025"},
	}
	for _, tt := range tests {
		if got := TitleFromName(tt.name); got != tt.want {
			t.Errorf("TitleFromName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
