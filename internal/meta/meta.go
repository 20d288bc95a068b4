// Package meta reads embedded photo metadata (EXIF, XMP, IPTC) from
// Lightroom-exported images.
//
// All reads are best-effort: a missing or corrupt file yields a Metadata
// with empty fields rather than an error, so batch operations never abort
// on a single bad photo.
package meta

import (
	"strings"
	"time"
)

// Location holds structured location metadata, most specific field first.
type Location struct {
	Sublocation string `yaml:"sublocation,omitempty"` // Venue or sublocation (Iptc4xmpCore:Location)
	City        string `yaml:"city,omitempty"`
	State       string `yaml:"state,omitempty"`
	Country     string `yaml:"country,omitempty"`
}

// IsZero reports whether no location field is set.
func (l Location) IsZero() bool {
	return l.Sublocation == "" && l.City == "" && l.State == "" && l.Country == ""
}

// Fields returns the non-empty location fields, most specific first.
func (l Location) Fields() []string {
	var out []string
	for _, f := range []string{l.Sublocation, l.City, l.State, l.Country} {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Metadata holds everything we extract from a single photo.
// Keywords are lowercased. Date keeps the raw EXIF form
// ("2006:01:02 15:04:05"); use CaptureTime for a parsed value.
type Metadata struct {
	Keywords     []string `yaml:"keywords,omitempty"`
	Location     Location `yaml:"location,omitempty"`
	Rating       int      `yaml:"rating,omitempty"`
	Date         string   `yaml:"date,omitempty"`
	CameraMake   string   `yaml:"camera_make,omitempty"`
	CameraModel  string   `yaml:"camera_model,omitempty"`
	LensModel    string   `yaml:"lens_model,omitempty"`
	FocalLength  float64  `yaml:"focal_length,omitempty"`
	Aperture     float64  `yaml:"aperture,omitempty"`
	ShutterSpeed string   `yaml:"shutter_speed,omitempty"`
	ISO          int      `yaml:"iso,omitempty"`
}

// CaptureTime parses the capture date, if one was found.
func (m Metadata) CaptureTime() (time.Time, bool) {
	return ParseCaptureDate(m.Date)
}

// HasKeyword reports whether the photo carries the keyword,
// case-insensitively.
func (m Metadata) HasKeyword(kw string) bool {
	kw = strings.ToLower(strings.TrimSpace(kw))
	for _, have := range m.Keywords {
		if strings.ToLower(have) == kw {
			return true
		}
	}
	return false
}

// dateLayouts are the capture-date forms seen in the wild, tried in order.
// EXIF uses colon-separated dates; XMP tooling sometimes emits ISO forms.
var dateLayouts = []string{
	"2006:01:02 15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006:01:02",
	"2006-01-02",
}

// ParseCaptureDate parses a capture-date string in any supported layout.
// Timezone suffixes are ignored; only the calendar day matters to callers.
func ParseCaptureDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	// Strip a trailing offset like "+02:00" or "Z".
	if len(s) > 19 {
		s = s[:19]
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// cleanKeywords lowercases keywords and drops entries that look like
// numeric values (color labels, coordinates) rather than real tags.
func cleanKeywords(raw []string) []string {
	var out []string
	for _, kw := range raw {
		kw = strings.TrimSpace(kw)
		if kw == "" || strings.ContainsAny(kw, "0123456789,") {
			continue
		}
		out = append(out, strings.ToLower(kw))
	}
	return out
}
