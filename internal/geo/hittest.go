package geo

import "github.com/RoroDev2023/RizzTheGrid/internal/core"

// RegionAt returns the region whose projected outline contains pt.
// Regions are probed in reverse fit order, so where outlines overlap
// the one painted last wins, matching what the user sees. The bounding
// box acts as a cheap prefilter before the exact ray cast.
func (p *Projection) RegionAt(pt Point) (core.RegionID, bool) {
	for i := len(p.order) - 1; i >= 0; i-- {
		id := p.order[i]
		if !p.bounds[id].Contains(pt) {
			continue
		}
		if pointInRings(pt, p.rings[id]) {
			return id, true
		}
	}
	return "", false
}

// pointInRings ray-casts pt against every ring of a region under the
// even-odd rule. Crossing into a hole flips the parity back out.
func pointInRings(pt Point, rings [][]Point) bool {
	inside := false
	for _, ring := range rings {
		n := len(ring)
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			xi, yi := ring[i].X, ring[i].Y
			xj, yj := ring[j].X, ring[j].Y
			if (yi > pt.Y) != (yj > pt.Y) &&
				pt.X < (xj-xi)*(pt.Y-yi)/(yj-yi+1e-12)+xi {
				inside = !inside
			}
		}
	}
	return inside
}
