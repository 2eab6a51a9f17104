package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

const manifestJSON = `{
  "zones": [
    {
      "zone": "DE",
      "images": [
        {"file": "brandenburg.jpg", "url": "https://img.example.com/de/1.jpg", "caption": "Substation near Brandenburg"},
        {"file": "windpark.jpg", "url": "https://img.example.com/de/2.jpg"}
      ]
    },
    {"zone": "FR", "images": []}
  ]
}`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(manifestJSON))
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}

	de := m.ForZone("DE")
	if len(de) != 2 {
		t.Fatalf("ForZone(DE) = %d images, want 2", len(de))
	}
	if de[0].File != "brandenburg.jpg" || de[0].Caption == "" {
		t.Errorf("first image = %+v", de[0])
	}
	if len(m.ForZone("FR")) != 0 {
		t.Errorf("FR should have no images")
	}
	if m.ForZone("XX") != nil {
		t.Errorf("unknown zone should be nil")
	}

	var nilM *Manifest
	if nilM.ForZone("DE") != nil {
		t.Errorf("nil manifest lookup should be nil")
	}
}

func TestManifestConformsToSchema(t *testing.T) {
	schema, err := os.ReadFile(filepath.Join("..", "..", "docs", "manifest.schema.json"))
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}

	if err := ValidateManifest(schema, []byte(manifestJSON)); err != nil {
		t.Errorf("valid manifest rejected: %v", err)
	}

	bad := `{"zones": [{"zone": "DE", "images": [{"url": "https://x"}]}]}`
	if err := ValidateManifest(schema, []byte(bad)); err == nil {
		t.Errorf("image without a file name must not validate")
	}
}
