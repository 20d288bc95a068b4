// Package config resolves the directory layout of a photography project.
//
// The layout is fixed relative to the project root:
//
//	photos/            photo library (collection paths are relative to this)
//	photos/exports/    Lightroom export drop zone, consumed by ingest
//	data/collections/  collection YAML documents
//	data/photos/       generated per-photo metadata YAML
//
// The root comes from, in order: an explicit --root flag, the
// PHOTOGRAPHY_ROOT environment variable, the current directory. A .env
// file in the working directory is loaded first when present.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Root           string // Project root
	PhotosDir      string // Photo library root
	ExportsDir     string // Lightroom exports drop zone
	CollectionsDir string // Collection YAML documents
	DataPhotosDir  string // Generated photo metadata YAML
}

// Load resolves the project layout. root overrides the environment when
// non-empty (typically from a --root flag).
func Load(root string) *Config {
	// Best effort; a missing .env is the normal case.
	_ = godotenv.Load()

	if root == "" {
		root = os.Getenv("PHOTOGRAPHY_ROOT")
	}
	if root == "" {
		root, _ = os.Getwd()
	}

	photos := getEnv("PHOTOS_DIR", filepath.Join(root, "photos"))

	return &Config{
		Root:           root,
		PhotosDir:      photos,
		ExportsDir:     filepath.Join(photos, "exports"),
		CollectionsDir: getEnv("COLLECTIONS_DIR", filepath.Join(root, "data", "collections")),
		DataPhotosDir:  getEnv("DATA_PHOTOS_DIR", filepath.Join(root, "data", "photos")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
