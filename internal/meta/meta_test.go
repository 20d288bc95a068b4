package meta

import (
	"strings"
	"testing"
)

func TestParseCaptureDate(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		date string // ISO day, when ok
	}{
		{"2025:10:18 22:33:24", true, "2025-10-18"},
		{"2025-10-18 22:33:24", true, "2025-10-18"},
		{"2025-10-18T22:33:24", true, "2025-10-18"},
		{"2025:10:18 22:33:24+02:00", true, "2025-10-18"},
		{"2025:10:18", true, "2025-10-18"},
		{"2025-10-18", true, "2025-10-18"},
		{"", false, ""},
		{"not a date", false, ""},
		{"2025", false, ""},
	}
	for _, tt := range tests {
		got, ok := ParseCaptureDate(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseCaptureDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got.Format("2006-01-02") != tt.date {
			t.Errorf("ParseCaptureDate(%q) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.date)
		}
	}
}

func TestHasKeyword(t *testing.T) {
	m := Metadata{Keywords: []string{"street", "night"}}
	if !m.HasKeyword("Street") {
		t.Error("keyword lookup should be case-insensitive")
	}
	if !m.HasKeyword(" night ") {
		t.Error("keyword lookup should trim whitespace")
	}
	if m.HasKeyword("urban") {
		t.Error("absent keyword should not match")
	}
}

func TestLocationFields(t *testing.T) {
	loc := Location{City: "Seattle", Country: "USA"}
	got := loc.Fields()
	if len(got) != 2 || got[0] != "Seattle" || got[1] != "USA" {
		t.Errorf("Fields() = %v", got)
	}
	if !(Location{}).IsZero() {
		t.Error("empty location should be zero")
	}
	if loc.IsZero() {
		t.Error("populated location should not be zero")
	}
}

func TestCleanKeywords(t *testing.T) {
	got := cleanKeywords([]string{"Street", " Night ", "", "128,64,32", "ISO3200"})
	want := []string{"street", "night"}
	if len(got) != len(want) {
		t.Fatalf("cleanKeywords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cleanKeywords[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseFocalLength(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"50.0 mm", 50.0},
		{"35 mm", 35},
		{"85.5", 85.5},
		{"", 0},
		{"wide", 0},
	}
	for _, tt := range tests {
		if got := parseFocalLength(tt.in); got != tt.want {
			t.Errorf("parseFocalLength(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDocumentMarshal(t *testing.T) {
	doc := Document{
		Path: "2025/washington/seattle/a.jpg",
		Metadata: Metadata{
			Keywords: []string{"street"},
			Location: Location{City: "Seattle", State: "Washington"},
			Rating:   4,
			Date:     "2025:10:18 22:33:24",
		},
	}
	data, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	out := string(data)

	if !strings.HasPrefix(out, "path: 2025/washington/seattle/a.jpg\n") {
		t.Errorf("document should lead with the path:\n%s", out)
	}
	for _, key := range []string{"keywords:", "city: Seattle", "rating: 4"} {
		if !strings.Contains(out, key) {
			t.Errorf("document missing %q:\n%s", key, out)
		}
	}
	// Absent fields stay out of the document.
	for _, key := range []string{"camera_make", "iso", "lens_model"} {
		if strings.Contains(out, key) {
			t.Errorf("zero field %q should be omitted:\n%s", key, out)
		}
	}
}
