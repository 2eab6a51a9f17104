// Package dataset reads the mirrored data directory: zone outlines as
// GeoJSON, per-zone energy metrics as CSV, and the photo manifest with
// its image files.
package dataset

import "path/filepath"

// File names inside a data directory.
const (
	ZonesFile    = "zones.geojson"
	MetricsFile  = "metrics.csv"
	ManifestFile = "manifest.json"
	ImagesDir    = "images"
)

// Layout resolves paths inside one data directory.
type Layout struct {
	Root string
}

// ZonesPath returns the zone outline file path.
func (l Layout) ZonesPath() string { return filepath.Join(l.Root, ZonesFile) }

// MetricsPath returns the metrics CSV path.
func (l Layout) MetricsPath() string { return filepath.Join(l.Root, MetricsFile) }

// ManifestPath returns the photo manifest path.
func (l Layout) ManifestPath() string { return filepath.Join(l.Root, ManifestFile) }

// ImageDir returns the directory holding one zone's photos.
func (l Layout) ImageDir(zone string) string {
	return filepath.Join(l.Root, ImagesDir, zone)
}

// ImagePath returns the path of one photo file.
func (l Layout) ImagePath(zone, file string) string {
	return filepath.Join(l.Root, ImagesDir, zone, file)
}
