// Package library knows the photo directory tree: which files are
// photos, how to enumerate them, and how freshly exported photos are
// ingested into their canonical year/location directories.
package library

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// imageExts contains the image extensions the site publishes.
// Lightroom exports JPGs; the rest are tolerated for hand-placed files.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// exportsDirName is the drop-zone subdirectory; scans of the library
// skip it because its contents are not yet ingested.
const exportsDirName = "exports"

// IsImage returns true if the filename has a supported image extension.
func IsImage(name string) bool {
	return imageExts[strings.ToLower(filepath.Ext(name))]
}

// ListImages returns the image filenames directly inside dir, sorted.
// A missing directory yields an empty list.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var images []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if IsImage(e.Name()) {
			images = append(images, e.Name())
		}
	}
	sort.Strings(images)
	return images, nil
}

// Walk returns the library-relative (slash-separated) paths of every
// image under photosDir, sorted. Hidden entries and the exports
// directory are skipped.
func Walk(photosDir string) ([]string, error) {
	var paths []string

	err := filepath.Walk(photosDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip unreadable entries, keep walking
		}
		name := info.Name()
		if info.IsDir() {
			if p != photosDir && (strings.HasPrefix(name, ".") || name == exportsDirName) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || !IsImage(name) {
			return nil
		}
		rel, err := filepath.Rel(photosDir, p)
		if err != nil {
			return nil
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}
