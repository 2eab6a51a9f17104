package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/RoroDev2023/RizzTheGrid/internal/vis/state"
)

// Toolbar is the top control strip.
type Toolbar struct {
	state *state.State

	fitAllBtn widget.Clickable
	syncBtn   widget.Clickable

	// OnFitAll clears the selection and re-frames the whole scene.
	OnFitAll func()
	// OnSync refreshes the local dataset mirror.
	OnSync func()
}

// NewToolbar creates a new toolbar.
func NewToolbar(st *state.State) *Toolbar {
	return &Toolbar{state: st}
}

// Layout renders the toolbar.
func (t *Toolbar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	height := 48

	rect := image.Rect(0, 0, gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 40, G: 43, B: 48, A: 255}, clip.Rect(rect).Op())

	t.handleClicks(gtx)

	return layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10), Top: unit.Dp(8), Bottom: unit.Dp(8)}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					lbl := material.Label(th, 15, "RizzTheGrid")
					lbl.Color = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
					return lbl.Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return t.textButton(gtx, th, &t.fitAllBtn, "Fit all")
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return t.textButton(gtx, th, &t.syncBtn, "Sync data")
				}),
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return layout.Dimensions{}
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return t.layoutHoverName(gtx, th)
				}),
			)
		})
}

// layoutHoverName shows the zone under the cursor, advisory only.
func (t *Toolbar) layoutHoverName(gtx layout.Context, th *material.Theme) layout.Dimensions {
	id := t.state.Selection.HoverID
	if id == "" {
		return layout.Dimensions{}
	}
	name := id
	if p, ok := t.state.Profiles[id]; ok && p.Name != "" {
		name = p.Name
	}
	lbl := material.Label(th, 13, name)
	lbl.Color = color.NRGBA{R: 180, G: 190, B: 200, A: 255}
	return lbl.Layout(gtx)
}

func (t *Toolbar) textButton(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string) layout.Dimensions {
	bg := color.NRGBA{R: 55, G: 58, B: 65, A: 255}
	if btn.Hovered() {
		bg.R = minU8(bg.R+15, 255)
		bg.G = minU8(bg.G+15, 255)
		bg.B = minU8(bg.B+15, 255)
	}

	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = image.Point{X: 80, Y: 28}
				rect := image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
				paint.FillShape(gtx.Ops, bg, clip.Rect(rect).Op())
				return layout.Dimensions{Size: gtx.Constraints.Min}
			},
			func(gtx layout.Context) layout.Dimensions {
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					label := material.Label(th, 12, text)
					label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
					return label.Layout(gtx)
				})
			},
		)
	})
}

func (t *Toolbar) handleClicks(gtx layout.Context) {
	for t.fitAllBtn.Clicked(gtx) {
		if t.OnFitAll != nil {
			t.OnFitAll()
		}
	}
	for t.syncBtn.Clicked(gtx) {
		if t.OnSync != nil {
			t.OnSync()
		}
	}
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}
