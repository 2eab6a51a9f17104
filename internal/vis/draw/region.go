// Package draw provides rendering functions for the map scene.
package draw

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/RoroDev2023/RizzTheGrid/internal/core"
	"github.com/RoroDev2023/RizzTheGrid/internal/geo"
	"github.com/RoroDev2023/RizzTheGrid/internal/vis/interact"
)

// Map palette.
var (
	ColorWater        = color.NRGBA{R: 16, G: 24, B: 32, A: 255}
	ColorZoneNoData   = color.NRGBA{R: 72, G: 80, B: 88, A: 255}
	ColorZoneClean    = color.NRGBA{R: 70, G: 160, B: 100, A: 255}
	ColorZoneDirty    = color.NRGBA{R: 150, G: 105, B: 70, A: 255}
	ColorZoneBorder   = color.NRGBA{R: 28, G: 36, B: 44, A: 255}
	ColorSelectedEdge = color.NRGBA{R: 255, G: 200, B: 80, A: 255}
)

// dirtyIntensity is the gCO2eq/kWh rendered as fully dirty on the ramp.
const dirtyIntensity = 800.0

// ZoneFill maps a zone's carbon intensity onto the clean-to-dirty ramp.
// Zones without metrics render neutral.
func ZoneFill(p core.EnergyProfile, ok bool) color.NRGBA {
	if !ok {
		return ColorZoneNoData
	}
	t := p.Intensity / dirtyIntensity
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lerpColor(ColorZoneClean, ColorZoneDirty, t)
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}

// lighten raises a color toward white for hover feedback.
func lighten(c color.NRGBA, by uint8) color.NRGBA {
	add := func(v uint8) uint8 {
		if v > 255-by {
			return 255
		}
		return v + by
	}
	return color.NRGBA{R: add(c.R), G: add(c.G), B: add(c.B), A: c.A}
}

// DrawBackground fills the canvas with water.
func DrawBackground(gtx layout.Context) {
	b := gtx.Constraints.Max
	paint.FillShape(gtx.Ops, ColorWater, clip.Rect(image.Rect(0, 0, b.X, b.Y)).Op())
}

// DrawZones renders every zone fill plus borders. The selected zone's
// accent border is drawn last so neighbors never overpaint it.
func DrawZones(gtx layout.Context, proj *geo.Projection, regions *core.RegionSet,
	profiles map[core.RegionID]core.EnergyProfile, tr interact.Transform, hoverID, selectedID string) {
	if proj == nil || regions == nil {
		return
	}
	for i := range regions.Regions {
		r := &regions.Regions[i]
		rings := proj.Rings(r.ID)
		if rings == nil {
			continue
		}
		p, ok := profiles[r.ID]
		col := ZoneFill(p, ok)
		if r.ID == hoverID && r.ID != selectedID {
			col = lighten(col, 28)
		}
		fillRings(gtx, rings, tr, col)
		strokeRings(gtx, rings, tr, ColorZoneBorder, 1)
	}
	if selectedID != "" {
		if rings := proj.Rings(selectedID); rings != nil {
			strokeRings(gtx, rings, tr, ColorSelectedEdge, 2)
		}
	}
}

func toScreen(tr interact.Transform, p geo.Point) f32.Point {
	s := tr.Apply(p)
	return f32.Pt(float32(s.X), float32(s.Y))
}

// fillRings fills all rings of one zone as a single outline. GeoJSON
// winds holes opposite to the exterior, so they survive the non-zero
// fill rule.
func fillRings(gtx layout.Context, rings [][]geo.Point, tr interact.Transform, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	for _, ring := range rings {
		path.MoveTo(toScreen(tr, ring[0]))
		for _, pt := range ring[1:] {
			path.LineTo(toScreen(tr, pt))
		}
		path.Close()
	}
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func strokeRings(gtx layout.Context, rings [][]geo.Point, tr interact.Transform, col color.NRGBA, width float32) {
	var path clip.Path
	path.Begin(gtx.Ops)
	for _, ring := range rings {
		path.MoveTo(toScreen(tr, ring[0]))
		for _, pt := range ring[1:] {
			path.LineTo(toScreen(tr, pt))
		}
		path.Close()
	}
	paint.FillShape(gtx.Ops, col, clip.Stroke{Path: path.End(), Width: width}.Op())
}
