package widgets

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/RoroDev2023/RizzTheGrid/internal/vis/state"
)

// StripHeight is the thumbnail strip height in dp.
const StripHeight = 112

// Gallery shows the selected zone's photo strip and, on top of the
// whole window, the lightbox overlay.
type Gallery struct {
	state *state.State

	thumbs      []widget.Clickable
	prevBtn     widget.Clickable
	nextBtn     widget.Clickable
	closeBtn    widget.Clickable
	describeBtn widget.Clickable

	// Texture uploads are cached per zone; photos are immutable once
	// loaded, so the zone id is a sufficient cache key.
	cachedZone string
	thumbOps   []paint.ImageOp
	imgOps     []paint.ImageOp

	// OnDescribe asks the app to summarize the lightbox photo.
	OnDescribe func(index int)
}

// NewGallery creates the photo widgets.
func NewGallery(st *state.State) *Gallery {
	return &Gallery{state: st}
}

func (g *Gallery) ensureCache() {
	photos := g.state.Gallery.Photos
	if g.cachedZone == g.state.Gallery.Zone && len(g.thumbOps) == len(photos) {
		return
	}
	g.cachedZone = g.state.Gallery.Zone
	g.thumbOps = make([]paint.ImageOp, len(photos))
	g.imgOps = make([]paint.ImageOp, len(photos))
	for i, ph := range photos {
		g.thumbOps[i] = paint.NewImageOp(ph.Thumb)
		g.imgOps[i] = paint.NewImageOp(ph.Img)
	}
	if len(g.thumbs) < len(photos) {
		g.thumbs = append(g.thumbs, make([]widget.Clickable, len(photos)-len(g.thumbs))...)
	}
}

// LayoutStrip renders the bottom thumbnail strip; it collapses to zero
// height when the selection has no photos.
func (g *Gallery) LayoutStrip(gtx layout.Context, th *material.Theme) layout.Dimensions {
	g.ensureCache()
	photos := g.state.Gallery.Photos
	if len(photos) == 0 {
		return layout.Dimensions{}
	}

	height := gtx.Dp(StripHeight)
	rect := image.Rect(0, 0, gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 28, G: 31, B: 35, A: 255}, clip.Rect(rect).Op())

	for i := range photos {
		for g.thumbs[i].Clicked(gtx) {
			g.state.Gallery.Open(i)
		}
	}

	gtx.Constraints.Max.Y = height
	children := make([]layout.FlexChild, 0, len(photos))
	for i := range photos {
		i := i
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return g.thumbs[i].Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return widget.Image{Src: g.thumbOps[i], Fit: widget.Contain}.Layout(gtx)
				})
			})
		}))
	}
	layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
	return layout.Dimensions{Size: image.Point{X: gtx.Constraints.Max.X, Y: height}}
}

// LayoutLightbox renders the modal overlay when a photo is open. It
// swallows the whole window so the map underneath gets no events.
func (g *Gallery) LayoutLightbox(gtx layout.Context, th *material.Theme) layout.Dimensions {
	g.ensureCache()
	gal := &g.state.Gallery
	ph, open := gal.Current()
	if !open {
		return layout.Dimensions{}
	}

	bounds := gtx.Constraints.Max
	paint.FillShape(gtx.Ops, color.NRGBA{A: 200},
		clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Op())

	// An input area over the full window occludes the map's handlers.
	// The overlay buttons register later, so they stay clickable.
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, g)
	for {
		_, ok := gtx.Event(pointer.Filter{
			Target: g,
			Kinds:  pointer.Press | pointer.Release | pointer.Drag | pointer.Move | pointer.Scroll,
		})
		if !ok {
			break
		}
	}

	g.handleLightboxClicks(gtx)

	return layout.UniformInset(unit.Dp(24)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return widget.Image{Src: g.imgOps[gal.Lightbox], Fit: widget.Contain}.Layout(gtx)
				})
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				caption := ph.Caption
				if caption == "" {
					caption = gal.Zone
				}
				lbl := material.Label(th, 13, caption)
				lbl.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
				return lbl.Layout(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				text := gal.Summary
				if gal.Busy {
					text = "Describing..."
				}
				if text == "" {
					return layout.Dimensions{}
				}
				lbl := material.Label(th, 12, text)
				lbl.Color = color.NRGBA{R: 170, G: 180, B: 190, A: 255}
				return lbl.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return g.layoutLightboxButtons(gtx, th)
			}),
		)
	})
}

func (g *Gallery) handleLightboxClicks(gtx layout.Context) {
	gal := &g.state.Gallery
	for g.prevBtn.Clicked(gtx) {
		gal.Step(-1)
	}
	for g.nextBtn.Clicked(gtx) {
		gal.Step(1)
	}
	for g.closeBtn.Clicked(gtx) {
		gal.Close()
	}
	for g.describeBtn.Clicked(gtx) {
		if !gal.Busy && g.OnDescribe != nil {
			g.OnDescribe(gal.Lightbox)
		}
	}
}

func (g *Gallery) layoutLightboxButtons(gtx layout.Context, th *material.Theme) layout.Dimensions {
	btn := func(b *widget.Clickable, label string) layout.FlexChild {
		return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx,
				func(gtx layout.Context) layout.Dimensions {
					return material.Button(th, b, label).Layout(gtx)
				})
		})
	}
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		btn(&g.prevBtn, "<"),
		btn(&g.nextBtn, ">"),
		btn(&g.describeBtn, "Describe"),
		btn(&g.closeBtn, "Close"),
	)
}
