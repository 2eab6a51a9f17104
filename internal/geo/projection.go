// Package geo fits region geometry onto a pixel container and answers
// pixel-space bounding-box queries against the fitted projection.
package geo

import (
	"math"

	"github.com/RoroDev2023/RizzTheGrid/internal/core"
)

// Fallback container used when the real one has collapsed to zero.
const (
	fallbackWidth  = 800
	fallbackHeight = 600
)

// minSpan guards against degenerate geographic extents.
const minSpan = 1e-6

// Point is a position in projected pixel space.
type Point struct {
	X, Y float64
}

// Projection maps lon/lat geometry into pixel space for one exact
// (regions, width, height) triple. It must be rebuilt whenever the
// container resizes or the region set changes; a stale projection draws
// distorted, it does not error.
type Projection struct {
	width, height float64
	padding       float64

	scale   float64
	offsetX float64
	offsetY float64
	cosLat  float64

	minLon, minLat float64
	maxLon, maxLat float64

	rings  map[core.RegionID][][]Point
	bounds map[core.RegionID]Rect
	order  []core.RegionID
	scene  Rect
}

// Fit builds a projection that centers the union of all region outlines
// inside [padding, width-padding] x [padding, height-padding]. Equal
// inputs always produce an equal projection. A non-positive container
// size is replaced by a fallback size instead of collapsing the math.
func Fit(regions []core.Region, width, height, padding float64) *Projection {
	if width <= 0 || height <= 0 {
		width, height = fallbackWidth, fallbackHeight
	}

	p := &Projection{
		width:   width,
		height:  height,
		padding: padding,
		rings:   make(map[core.RegionID][][]Point),
		bounds:  make(map[core.RegionID]Rect),
	}

	p.minLon, p.minLat = math.Inf(1), math.Inf(1)
	p.maxLon, p.maxLat = math.Inf(-1), math.Inf(-1)
	for _, r := range regions {
		for _, poly := range r.Geometry {
			for _, ring := range poly {
				for _, pt := range ring {
					if pt[0] < p.minLon {
						p.minLon = pt[0]
					}
					if pt[0] > p.maxLon {
						p.maxLon = pt[0]
					}
					if pt[1] < p.minLat {
						p.minLat = pt[1]
					}
					if pt[1] > p.maxLat {
						p.maxLat = pt[1]
					}
				}
			}
		}
	}
	if p.minLon > p.maxLon { // no geometry at all
		p.minLon, p.minLat, p.maxLon, p.maxLat = 0, 0, 1, 1
	}

	// Equirectangular with horizontal correction at the mid latitude.
	midLat := (p.minLat + p.maxLat) / 2
	p.cosLat = math.Cos(midLat * math.Pi / 180)
	if p.cosLat < 0.01 {
		p.cosLat = 0.01
	}

	worldW := (p.maxLon - p.minLon) * p.cosLat
	worldH := p.maxLat - p.minLat
	if worldW < minSpan {
		worldW = minSpan
	}
	if worldH < minSpan {
		worldH = minSpan
	}

	availW := width - 2*padding
	availH := height - 2*padding
	if availW < 1 {
		availW = 1
	}
	if availH < 1 {
		availH = 1
	}

	p.scale = availW / worldW
	if s := availH / worldH; s < p.scale {
		p.scale = s
	}
	p.offsetX = padding + (availW-worldW*p.scale)/2
	p.offsetY = padding + (availH-worldH*p.scale)/2

	p.scene = emptyRect()
	for _, r := range regions {
		rings := p.projectRegion(r)
		if rings == nil {
			continue
		}
		b := emptyRect()
		for _, ring := range rings {
			for _, pt := range ring {
				b = b.expand(pt)
				p.scene = p.scene.expand(pt)
			}
		}
		if _, seen := p.rings[r.ID]; !seen {
			p.order = append(p.order, r.ID)
		}
		p.rings[r.ID] = rings
		p.bounds[r.ID] = b.floorSize(1)
	}
	if p.scene.MinX > p.scene.MaxX {
		p.scene = Rect{MinX: padding, MinY: padding, MaxX: padding + 1, MaxY: padding + 1}
	}
	return p
}

// projectRegion maps every usable ring of a region. Rings with fewer
// than three points are skipped; a region with no usable ring yields nil.
func (p *Projection) projectRegion(r core.Region) [][]Point {
	var out [][]Point
	for _, poly := range r.Geometry {
		for _, ring := range poly {
			if len(ring) < 3 {
				continue
			}
			pts := make([]Point, len(ring))
			for i, pt := range ring {
				pts[i] = p.Project(pt[0], pt[1])
			}
			out = append(out, pts)
		}
	}
	return out
}

// Project maps a lon/lat coordinate into pixel space. North is up.
func (p *Projection) Project(lon, lat float64) Point {
	return Point{
		X: p.offsetX + (lon-p.minLon)*p.cosLat*p.scale,
		Y: p.offsetY + (p.maxLat-lat)*p.scale,
	}
}

// Rings returns a region's projected outline rings, or nil when the id
// is unknown or its geometry was missing/degenerate. Callers skip nil
// regions for the frame; it is not an error.
func (p *Projection) Rings(id core.RegionID) [][]Point {
	return p.rings[id]
}

// Size returns the container size the projection was fit to.
func (p *Projection) Size() (w, h float64) {
	return p.width, p.height
}

// GeoBounds returns the geographic extent the fit covered.
func (p *Projection) GeoBounds() (minLon, minLat, maxLon, maxLat float64) {
	return p.minLon, p.minLat, p.maxLon, p.maxLat
}
