package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Manifest lists the downloadable photos per zone.
type Manifest struct {
	Zones []ZonePhotos `json:"zones"`
}

// ZonePhotos is one zone's photo list.
type ZonePhotos struct {
	Zone   string      `json:"zone"`
	Images []PhotoMeta `json:"images"`
}

// PhotoMeta describes one photo: its local file name, where it is
// fetched from, and a caption.
type PhotoMeta struct {
	File    string `json:"file"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// ParseManifest decodes a photo manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}
	return ParseManifest(data)
}

// ForZone returns the photo list of one zone, nil when absent.
func (m *Manifest) ForZone(zone string) []PhotoMeta {
	if m == nil {
		return nil
	}
	for _, z := range m.Zones {
		if z.Zone == zone {
			return z.Images
		}
	}
	return nil
}

// ValidateManifest checks a manifest document against the JSON schema
// shipped under docs/.
func ValidateManifest(schema, doc []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validate manifest: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("validate manifest: %s", strings.Join(msgs, "; "))
	}
	return nil
}
