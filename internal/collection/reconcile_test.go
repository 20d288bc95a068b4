package collection

import (
	"os"
	"testing"
)

func TestReconcileAddsAndRemoves(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Save("travel", &Collection{
		Title:     "Travel",
		CoverPath: "travel/a.jpg",
		Photos: []PhotoEntry{
			{Path: "travel/a.jpg", Caption: "keep me"},
			{Path: "travel/b.jpg"},
		},
	}); err != nil {
		t.Fatal(err)
	}

	// b.jpg vanished from the directory, c.jpg is new.
	c, res, err := s.Reconcile("travel", []string{"a.jpg", "c.jpg"}, false)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if res.Added != 1 || res.Removed != 1 || res.Total != 2 {
		t.Errorf("result = %+v", res)
	}
	if c.Photos[0].Path != "travel/a.jpg" || c.Photos[1].Path != "travel/c.jpg" {
		t.Errorf("photos = %+v", c.Photos)
	}
	if c.Photos[0].Caption != "keep me" {
		t.Errorf("surviving entry lost its caption: %+v", c.Photos[0])
	}
}

func TestReconcileRecomputesCoverWhenCoverRemoved(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Save("travel", &Collection{
		Title:     "Travel",
		CoverPath: "travel/b.jpg",
		Photos: []PhotoEntry{
			{Path: "travel/a.jpg"},
			{Path: "travel/b.jpg"},
		},
	}); err != nil {
		t.Fatal(err)
	}

	c, res, err := s.Reconcile("travel", []string{"a.jpg"}, false)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if !res.CoverUpdated {
		t.Error("expected cover update when the cover entry is removed")
	}
	if c.CoverPath != "travel/a.jpg" {
		t.Errorf("cover = %q, want travel/a.jpg", c.CoverPath)
	}
	if len(c.Photos) != 1 || c.Photos[0].Path != "travel/a.jpg" {
		t.Errorf("photos = %+v", c.Photos)
	}
}

func TestReconcileClearsCoverWhenEmpty(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Save("travel", &Collection{
		Title:     "Travel",
		CoverPath: "travel/a.jpg",
		Photos:    []PhotoEntry{{Path: "travel/a.jpg"}},
	}); err != nil {
		t.Fatal(err)
	}

	c, res, err := s.Reconcile("travel", nil, false)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if res.Removed != 1 || !res.CoverUpdated {
		t.Errorf("result = %+v", res)
	}
	if c.CoverPath != "" {
		t.Errorf("cover should be cleared when no photos remain, got %q", c.CoverPath)
	}
}

func TestReconcileNoopDoesNotWrite(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Save("travel", &Collection{
		Title:     "Travel",
		CoverPath: "travel/a.jpg",
		Photos:    []PhotoEntry{{Path: "travel/a.jpg"}},
	}); err != nil {
		t.Fatal(err)
	}
	before, _ := os.Stat(s.Path("travel"))

	_, res, err := s.Reconcile("travel", []string{"a.jpg"}, false)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if res.Added != 0 || res.Removed != 0 || res.CoverUpdated {
		t.Errorf("expected a no-op, got %+v", res)
	}

	after, _ := os.Stat(s.Path("travel"))
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("no-op Reconcile must not rewrite the collection file")
	}
}

func TestReconcileCreatesCollection(t *testing.T) {
	s := NewStore(t.TempDir())

	c, res, err := s.Reconcile("new-place", []string{"a.jpg", "b.jpg"}, false)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if res.Added != 2 {
		t.Errorf("result = %+v", res)
	}
	if c.Title != "New Place" {
		t.Errorf("title = %q", c.Title)
	}
	if c.CoverPath != "new-place/a.jpg" {
		t.Errorf("cover = %q", c.CoverPath)
	}
	if _, err := s.Load("new-place"); err != nil {
		t.Fatalf("collection not persisted: %v", err)
	}
}
