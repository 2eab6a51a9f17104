package dataset

import (
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/RoroDev2023/RizzTheGrid/internal/core"
)

// ParseZones decodes a GeoJSON FeatureCollection into regions. The id
// comes from the feature property "zone" (falling back to "id"), the
// display name from "name". Features without an id or without polygon
// geometry are skipped.
func ParseZones(data []byte) (*core.RegionSet, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse zones: %w", err)
	}

	var regions []core.Region
	for _, f := range fc.Features {
		id := f.Properties.MustString("zone", "")
		if id == "" {
			id = f.Properties.MustString("id", "")
		}
		if id == "" {
			continue
		}

		var mp orb.MultiPolygon
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			mp = orb.MultiPolygon{g}
		case orb.MultiPolygon:
			mp = g
		default:
			continue
		}

		regions = append(regions, core.Region{
			ID:       id,
			Name:     f.Properties.MustString("name", ""),
			Geometry: mp,
		})
	}
	if len(regions) == 0 {
		return nil, errors.New("parse zones: no usable zone features")
	}
	return core.NewRegionSet(regions), nil
}

// LoadZones reads and parses a zone outline file.
func LoadZones(path string) (*core.RegionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load zones: %w", err)
	}
	return ParseZones(data)
}
