package geo

import "math"

// Rect is an axis-aligned box in projected pixel space.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// W returns the box width.
func (r Rect) W() float64 { return r.MaxX - r.MinX }

// H returns the box height.
func (r Rect) H() float64 { return r.MaxY - r.MinY }

// Center returns the box midpoint.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Contains reports whether pt lies inside the box (edges included).
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.MinX && pt.X <= r.MaxX && pt.Y >= r.MinY && pt.Y <= r.MaxY
}

func emptyRect() Rect {
	return Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

func (r Rect) expand(pt Point) Rect {
	if pt.X < r.MinX {
		r.MinX = pt.X
	}
	if pt.X > r.MaxX {
		r.MaxX = pt.X
	}
	if pt.Y < r.MinY {
		r.MinY = pt.Y
	}
	if pt.Y > r.MaxY {
		r.MaxY = pt.Y
	}
	return r
}

// floorSize widens a box to at least min on each axis, keeping the
// center fixed. Downstream zoom math divides by these spans.
func (r Rect) floorSize(min float64) Rect {
	if w := r.W(); w < min {
		cx := (r.MinX + r.MaxX) / 2
		r.MinX = cx - min/2
		r.MaxX = cx + min/2
	}
	if h := r.H(); h < min {
		cy := (r.MinY + r.MaxY) / 2
		r.MinY = cy - min/2
		r.MaxY = cy + min/2
	}
	return r
}

// Bounds returns the pixel bounding box of one projected region, with
// width and height floored at one pixel. ok is false when the id is not
// part of the projected set; the caller keeps its current viewport then.
func (p *Projection) Bounds(id string) (Rect, bool) {
	b, ok := p.bounds[id]
	return b, ok
}

// SceneBounds returns the box around every projected region, used as
// the whole-scene target when nothing is selected.
func (p *Projection) SceneBounds() Rect {
	return p.scene
}
