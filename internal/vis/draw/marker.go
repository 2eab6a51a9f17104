package draw

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/RoroDev2023/RizzTheGrid/internal/geo"
	"github.com/RoroDev2023/RizzTheGrid/internal/vis/interact"
)

// DrawSelectionMarker rings the center of the framed zone box.
func DrawSelectionMarker(gtx layout.Context, center geo.Point, tr interact.Transform, col color.NRGBA) {
	s := toScreen(tr, center)
	drawFilledCircle(gtx, s.X, s.Y, 3, col)
	DrawCircleOutline(gtx, s.X, s.Y, 9, col, 1.5)
}

func drawFilledCircle(gtx layout.Context, cx, cy, radius float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.Move(f32.Pt(cx+radius, cy))

	segments := 12
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		x := cx + radius*float32(math.Cos(angle))
		y := cy + radius*float32(math.Sin(angle))
		path.Line(f32.Pt(x-path.Pos().X, y-path.Pos().Y))
	}
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

// DrawCircleOutline draws a circle outline.
func DrawCircleOutline(gtx layout.Context, centerX, centerY float32, radius float32, col color.NRGBA, strokeWidth float32) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.Move(f32.Pt(centerX+radius, centerY))

	segments := 24
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		x := centerX + radius*float32(math.Cos(angle))
		y := centerY + radius*float32(math.Sin(angle))
		path.Line(f32.Pt(x-path.Pos().X, y-path.Pos().Y))
	}
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Stroke{Path: path.End(), Width: strokeWidth}.Op())
}
