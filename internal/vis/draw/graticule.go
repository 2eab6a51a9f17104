package draw

import (
	"image"
	"image/color"
	"math"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/RoroDev2023/RizzTheGrid/internal/geo"
	"github.com/RoroDev2023/RizzTheGrid/internal/vis/interact"
)

// ColorGraticule is the faint lon/lat line color.
var ColorGraticule = color.NRGBA{R: 44, G: 56, B: 68, A: 130}

// DrawGraticule draws lon/lat lines every step degrees. Under the
// equirectangular fit graticule lines stay axis-aligned through pan
// and zoom, so they render as 1px screen rects.
func DrawGraticule(gtx layout.Context, proj *geo.Projection, tr interact.Transform, step float64, col color.NRGBA) {
	if proj == nil || step <= 0 {
		return
	}
	bounds := gtx.Constraints.Max
	minLon, minLat, maxLon, maxLat := proj.GeoBounds()

	for lon := math.Ceil(minLon/step) * step; lon <= maxLon; lon += step {
		s := tr.Apply(proj.Project(lon, maxLat))
		x := int(s.X)
		if x >= 0 && x <= bounds.X {
			paint.FillShape(gtx.Ops, col, clip.Rect(image.Rect(x, 0, x+1, bounds.Y)).Op())
		}
	}
	for lat := math.Ceil(minLat/step) * step; lat <= maxLat; lat += step {
		s := tr.Apply(proj.Project(minLon, lat))
		y := int(s.Y)
		if y >= 0 && y <= bounds.Y {
			paint.FillShape(gtx.Ops, col, clip.Rect(image.Rect(0, y, bounds.X, y+1)).Op())
		}
	}
}
