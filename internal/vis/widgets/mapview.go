// Package widgets provides Gio UI widgets for the map explorer.
package widgets

import (
	"image"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"

	"github.com/RoroDev2023/RizzTheGrid/internal/core"
	"github.com/RoroDev2023/RizzTheGrid/internal/geo"
	"github.com/RoroDev2023/RizzTheGrid/internal/vis/draw"
	"github.com/RoroDev2023/RizzTheGrid/internal/vis/interact"
	"github.com/RoroDev2023/RizzTheGrid/internal/vis/state"
)

// FitPadding keeps the fitted scene off the canvas edge, in px.
const FitPadding = 24

// GraticuleStep is the lon/lat grid spacing in degrees.
const GraticuleStep = 10

// MapView is the main map area: it draws the scene and turns pointer
// input into pan, hover and selection.
type MapView struct {
	state      *state.State
	controller *interact.Controller
	tracker    interact.Tracker

	proj         *geo.Projection
	lastW, lastH int

	// OnSelect runs after a click moved the selection, with the new
	// selected id (empty for none). The app hooks gallery loading and
	// mix seeding here.
	OnSelect func(id string)
}

// NewMapView creates the map widget.
func NewMapView(st *state.State, ctrl *interact.Controller) *MapView {
	return &MapView{state: st, controller: ctrl}
}

// Projection returns the current fit, nil before the first frame.
func (w *MapView) Projection() *geo.Projection {
	return w.proj
}

// Refit drops the cached projection. The next frame refits from the
// current region set and snaps back to the baseline view; the app
// calls this after the dataset changes under the map.
func (w *MapView) Refit() {
	w.proj = nil
}

// Layout renders the map and consumes its pointer events.
func (w *MapView) Layout(gtx layout.Context) layout.Dimensions {
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	w.ensureProjection(gtx)
	w.handlePointerEvents(gtx)

	draw.DrawBackground(gtx)
	tr := w.controller.Live()
	draw.DrawGraticule(gtx, w.proj, tr, GraticuleStep, draw.ColorGraticule)
	draw.DrawZones(gtx, w.proj, w.state.Regions, w.state.Profiles, tr,
		w.state.Selection.HoverID, w.state.Selection.SelectedID)
	if id := w.state.Selection.SelectedID; id != "" {
		if b, ok := w.proj.Bounds(id); ok {
			draw.DrawSelectionMarker(gtx, b.Center(), tr, draw.ColorSelectedEdge)
		}
	}
	return layout.Dimensions{Size: bounds}
}

// ensureProjection refits when the canvas size changes. The fit is a
// pure function of (regions, size), so an unchanged frame reuses it.
func (w *MapView) ensureProjection(gtx layout.Context) {
	b := gtx.Constraints.Max
	if w.proj != nil && b.X == w.lastW && b.Y == w.lastH {
		return
	}
	w.lastW, w.lastH = b.X, b.Y
	first := w.proj == nil

	var regions []core.Region
	if w.state.Regions != nil {
		regions = w.state.Regions.Regions
	}
	w.proj = geo.Fit(regions, float64(b.X), float64(b.Y), FitPadding)

	if first {
		w.controller.Reset(w.proj)
		return
	}
	// Re-frame whatever is selected inside the resized container.
	w.controller.Retarget(w.proj, w.state.Selection.SelectedID, gtx.Now)
}

func (w *MapView) handlePointerEvents(gtx layout.Context) {
	// Register for pointer events
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, w)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: w,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Move | pointer.Cancel,
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			w.handlePointerEvent(gtx, pe)
		}
	}
}

func (w *MapView) handlePointerEvent(gtx layout.Context, ev pointer.Event) {
	switch ev.Kind {
	case pointer.Press:
		if ev.Buttons.Contain(pointer.ButtonPrimary) {
			w.tracker.Down(ev.Position)
		}

	case pointer.Drag:
		if delta, pan := w.tracker.Move(ev.Position); pan {
			w.controller.PanBy(float64(delta.X), float64(delta.Y))
		}

	case pointer.Release:
		if w.tracker.Up() {
			w.handleClick(gtx, ev.Position)
		}

	case pointer.Cancel:
		// Lost the pointer stream mid-gesture: no click, no pan tail.
		w.tracker.Up()

	case pointer.Move:
		w.updateHover(ev.Position)
	}
}

// handleClick toggles the selection under the release point and aims
// the viewport at the result. Water clicks clear the selection, which
// retargets the whole-scene baseline.
func (w *MapView) handleClick(gtx layout.Context, pos f32.Point) {
	id := w.regionAt(pos)
	selected := w.state.Selection.Toggle(id)
	w.controller.Retarget(w.proj, selected, gtx.Now)
	if w.OnSelect != nil {
		w.OnSelect(selected)
	}
}

func (w *MapView) updateHover(pos f32.Point) {
	w.state.Selection.SetHover(w.regionAt(pos))
}

// regionAt resolves a screen position to a zone id through the inverse
// viewport transform, empty when the point is water.
func (w *MapView) regionAt(pos f32.Point) string {
	if w.proj == nil {
		return ""
	}
	pt := w.controller.Live().Invert(geo.Point{X: float64(pos.X), Y: float64(pos.Y)})
	id, ok := w.proj.RegionAt(pt)
	if !ok {
		return ""
	}
	return id
}
