package library

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iamjoshua/photography/internal/meta"
)

// Fallback directory names when a photo carries no usable metadata.
const (
	unknownYear     = "unknown-year"
	unknownLocation = "unknown-location"
)

// Ingestor moves exported photos into photos/<year>/<state>/<city>/,
// deriving the destination from embedded metadata.
type Ingestor struct {
	PhotosDir string                     // Library root the destinations live under
	Read      func(string) meta.Metadata // Metadata source, normally (*meta.Reader).Read
	DryRun    bool                       // Plan only, never touch the filesystem
}

// IngestResult describes where one photo went (or would go).
type IngestResult struct {
	Source   string // Absolute source path
	Dest     string // Absolute destination path
	RelDest  string // Destination relative to the library root
	Replaced bool   // Destination already existed and was (or would be) replaced
}

// Plan computes a photo's destination without moving anything.
// add-from-exports uses this to detect already-ingested photos.
func (ing *Ingestor) Plan(photoPath string) IngestResult {
	m := ing.Read(photoPath)

	dir := ing.PhotosDir
	dir = filepath.Join(dir, captureYear(m))
	for _, part := range locationParts(m.Location) {
		dir = filepath.Join(dir, part)
	}

	dest := filepath.Join(dir, filepath.Base(photoPath))
	rel, _ := filepath.Rel(ing.PhotosDir, dest)

	res := IngestResult{Source: photoPath, Dest: dest, RelDest: filepath.ToSlash(rel)}
	if _, err := os.Stat(dest); err == nil {
		res.Replaced = true
	}
	return res
}

// Ingest moves one photo to its canonical destination, replacing any
// existing file there. In dry-run mode the full pipeline runs but no
// file is touched.
func (ing *Ingestor) Ingest(photoPath string) (IngestResult, error) {
	res := ing.Plan(photoPath)
	if ing.DryRun {
		return res, nil
	}

	if err := os.MkdirAll(filepath.Dir(res.Dest), 0755); err != nil {
		return res, fmt.Errorf("creating %s: %w", filepath.Dir(res.Dest), err)
	}
	if err := moveFile(res.Source, res.Dest); err != nil {
		return res, fmt.Errorf("moving %s: %w", filepath.Base(photoPath), err)
	}
	return res, nil
}

// captureYear extracts the 4-digit capture year, or unknownYear.
func captureYear(m meta.Metadata) string {
	if t, ok := m.CaptureTime(); ok {
		return t.Format("2006")
	}
	return unknownYear
}

// locationParts builds the state/city directory components from a
// photo's location, sanitized for the filesystem. A photo with no usable
// location lands in unknownLocation.
func locationParts(loc meta.Location) []string {
	var parts []string
	if s := Slug(loc.State); s != "" {
		parts = append(parts, s)
	}
	if s := Slug(loc.City); s != "" {
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return []string{unknownLocation}
	}
	return parts
}

// Slug converts a location name to a filesystem-safe directory name:
// lowercase, alphanumerics kept, runs of anything else collapsed to a
// single hyphen. "New York" -> "new-york".
func Slug(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}
	parts := strings.FieldsFunc(b.String(), func(r rune) bool { return r == '-' })
	return strings.Join(parts, "-")
}

// moveFile renames src to dst, falling back to copy+remove when the
// rename crosses filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
