// Package core defines domain models for RizzTheGrid.
package core

import "github.com/paulmach/orb"

// RegionID identifies a bidding zone.
type RegionID = string

// Region is one bidding zone: an id, a display name and its outline.
// Geometry is lon/lat and immutable once loaded.
type Region struct {
	ID       RegionID
	Name     string
	Geometry orb.MultiPolygon
}

// HasGeometry reports whether the region carries a usable outline.
func (r Region) HasGeometry() bool {
	for _, poly := range r.Geometry {
		if len(poly) > 0 && len(poly[0]) >= 3 {
			return true
		}
	}
	return false
}

// RegionSet is an immutable collection of regions with id lookup.
type RegionSet struct {
	Regions []Region
	index   map[RegionID]int
}

// NewRegionSet builds a set from a slice. Later duplicates win.
func NewRegionSet(regions []Region) *RegionSet {
	s := &RegionSet{
		Regions: regions,
		index:   make(map[RegionID]int, len(regions)),
	}
	for i, r := range regions {
		s.index[r.ID] = i
	}
	return s
}

// ByID returns the region with the given id.
func (s *RegionSet) ByID(id RegionID) (Region, bool) {
	if s == nil {
		return Region{}, false
	}
	i, ok := s.index[id]
	if !ok {
		return Region{}, false
	}
	return s.Regions[i], true
}

// Len returns the number of regions.
func (s *RegionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Regions)
}
