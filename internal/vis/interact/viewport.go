// Package interact owns the map viewport: the live pan/zoom transform,
// the animation that frames a selected zone, and the gesture state
// machine that separates drag-to-pan from click-to-select.
package interact

import (
	"math"
	"time"

	"github.com/RoroDev2023/RizzTheGrid/internal/geo"
)

// Viewport tuning. Baseline is the whole-scene zoom and the global
// minimum; Dampening shrinks an exact fit so a framed zone keeps
// breathing room inside Margin.
const (
	Baseline  = 1.15
	Dampening = 0.9
	Margin    = 40.0
	Duration  = 350 * time.Millisecond
)

// Transform is the live viewport state. A projected point lands on
// screen at Zoom*(point+Pan), so Pan is kept in projected units.
type Transform struct {
	Zoom float64
	Pan  geo.Point
}

// Apply maps a projected point to screen space.
func (t Transform) Apply(pt geo.Point) geo.Point {
	return geo.Point{X: (pt.X + t.Pan.X) * t.Zoom, Y: (pt.Y + t.Pan.Y) * t.Zoom}
}

// Invert maps a screen position back to projected space.
func (t Transform) Invert(pt geo.Point) geo.Point {
	return geo.Point{X: pt.X/t.Zoom - t.Pan.X, Y: pt.Y/t.Zoom - t.Pan.Y}
}

// animation is the one in-flight interpolation task. Whoever holds a
// stale pointer to a cancelled task can no longer advance the viewport.
type animation struct {
	from, to  Transform
	start     time.Time
	duration  time.Duration
	cancelled bool
}

// Controller drives the viewport. All methods run on the UI thread;
// there are no concurrent writers.
type Controller struct {
	live       Transform
	defaultCap float64
	caps       map[string]float64
	anim       *animation
}

// NewController creates a controller at baseline zoom. caps lists
// per-zone zoom ceilings for shapes that would otherwise over-magnify;
// every other zone gets defaultCap.
func NewController(defaultCap float64, caps map[string]float64) *Controller {
	if defaultCap < Baseline {
		defaultCap = Baseline
	}
	return &Controller{
		live:       Transform{Zoom: Baseline},
		defaultCap: defaultCap,
		caps:       caps,
	}
}

// Live returns the current transform.
func (c *Controller) Live() Transform {
	return c.live
}

// Animating reports whether an interpolation is in flight.
func (c *Controller) Animating() bool {
	return c.anim != nil && !c.anim.cancelled
}

// CapFor returns the zoom ceiling for a zone. A configured ceiling
// below the baseline collapses the clamp range to the baseline itself.
func (c *Controller) CapFor(id string) float64 {
	if v, ok := c.caps[id]; ok {
		if v < Baseline {
			return Baseline
		}
		return v
	}
	return c.defaultCap
}

// Retarget aims the viewport at a selection and starts the transition.
// Legal in any state: an in-flight animation is cancelled before its
// replacement is created, so no frame advances toward two targets. An
// empty or unknown id targets the whole-scene baseline.
func (c *Controller) Retarget(proj *geo.Projection, id string, now time.Time) {
	if c.anim != nil {
		c.anim.cancelled = true
	}
	c.anim = &animation{
		from:     c.live,
		to:       c.targetFor(proj, id),
		start:    now,
		duration: Duration,
	}
}

// Tick advances the animation to now and reports whether another frame
// is needed. With no live task this is a no-op.
func (c *Controller) Tick(now time.Time) bool {
	a := c.anim
	if a == nil || a.cancelled {
		return false
	}
	t := float64(now.Sub(a.start)) / float64(a.duration)
	if t < 0 {
		t = 0
	}
	if t >= 1 || math.IsNaN(t) {
		// Settle exactly on the target, also when the clock misbehaves.
		c.live = a.to
		c.anim = nil
		return false
	}
	c.live = Transform{
		Zoom: a.from.Zoom + (a.to.Zoom-a.from.Zoom)*t,
		Pan: geo.Point{
			X: a.from.Pan.X + (a.to.Pan.X-a.from.Pan.X)*t,
			Y: a.from.Pan.Y + (a.to.Pan.Y-a.from.Pan.Y)*t,
		},
	}
	return true
}

// PanBy shifts the viewport by a screen-space delta. Ignored while an
// animation is in flight; user panning only settles between
// transitions. The division keeps drag speed constant on screen
// regardless of zoom.
func (c *Controller) PanBy(dx, dy float64) {
	if c.Animating() {
		return
	}
	c.live.Pan.X += dx / c.live.Zoom
	c.live.Pan.Y += dy / c.live.Zoom
}

// Stop cancels any in-flight animation without moving the transform.
// Called when the window goes away so nothing advances disposed state.
func (c *Controller) Stop() {
	if c.anim != nil {
		c.anim.cancelled = true
		c.anim = nil
	}
}

// Reset snaps straight to the whole-scene baseline, no animation. Used
// for the first fit of a fresh projection.
func (c *Controller) Reset(proj *geo.Projection) {
	c.Stop()
	c.live = c.targetFor(proj, "")
}

// targetFor computes the settled transform for a selection. A selected
// zone is framed at min((W-2*Margin)/bw, (H-2*Margin)/bh)*Dampening,
// clamped to [Baseline, CapFor(id)], with its box center on the
// viewport center. No selection, or an id without bounds, centers the
// whole scene at baseline zoom.
func (c *Controller) targetFor(proj *geo.Projection, id string) Transform {
	w, h := proj.Size()
	box := proj.SceneBounds()
	zoom := Baseline
	if id != "" {
		if b, ok := proj.Bounds(id); ok {
			z := (w - 2*Margin) / b.W()
			if zy := (h - 2*Margin) / b.H(); zy < z {
				z = zy
			}
			z *= Dampening
			if z < Baseline {
				z = Baseline
			}
			if v := c.CapFor(id); z > v {
				z = v
			}
			zoom = z
			box = b
		}
	}
	center := box.Center()
	return Transform{
		Zoom: zoom,
		Pan:  geo.Point{X: w/(2*zoom) - center.X, Y: h/(2*zoom) - center.Y},
	}
}
