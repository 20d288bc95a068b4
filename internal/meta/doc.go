package meta

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk YAML form of one photo's metadata, stored at
// data/photos/<path>.yaml mirroring the photo's place in the library.
//
// The schema is fixed: adding a metadata field means adding it here
// explicitly. Unknown keys in existing documents are dropped on
// regeneration.
type Document struct {
	Path     string `yaml:"path"` // Relative to the photo library root
	Metadata `yaml:",inline"`
}

// Marshal serializes the document with 2-space indentation.
func (d Document) Marshal() ([]byte, error) {
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}
