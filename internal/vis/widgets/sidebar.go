package widgets

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/RoroDev2023/RizzTheGrid/internal/core"
	"github.com/RoroDev2023/RizzTheGrid/internal/vis/state"
)

// SidebarWidth is the fixed panel width in dp.
const SidebarWidth = 320

// Sidebar shows the selected zone's metrics and the what-if mix
// sliders with their blended result.
type Sidebar struct {
	state *state.State

	sliders   []widget.Float // indexed like core.AllSources()
	reseedBtn widget.Clickable
	exportBtn widget.Clickable

	// seededZone tracks which zone's shares the sliders were last
	// loaded from, so user edits are not overwritten every frame.
	seededZone string

	// OnExport runs when the user asks for the PDF report.
	OnExport func()
}

// NewSidebar creates the side panel.
func NewSidebar(st *state.State) *Sidebar {
	return &Sidebar{
		state:   st,
		sliders: make([]widget.Float, len(core.AllSources())),
	}
}

// Layout renders the panel.
func (s *Sidebar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	bounds := gtx.Constraints.Max
	rect := image.Rect(0, 0, bounds.X, bounds.Y)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 35, G: 38, B: 42, A: 255}, clip.Rect(rect).Op())

	s.syncSliders()
	s.handleClicks(gtx)

	layout.Inset{Top: unit.Dp(12), Bottom: unit.Dp(12), Left: unit.Dp(14), Right: unit.Dp(14)}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return s.layoutHeader(gtx, th)
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return s.layoutMetrics(gtx, th)
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return s.layoutMix(gtx, th)
				}),
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return layout.Dimensions{Size: gtx.Constraints.Min}
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return s.layoutButtons(gtx, th)
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if s.state.Status == "" {
						return layout.Dimensions{}
					}
					lbl := material.Label(th, 11, s.state.Status)
					lbl.Color = color.NRGBA{R: 150, G: 160, B: 170, A: 255}
					return lbl.Layout(gtx)
				}),
			)
		})
	return layout.Dimensions{Size: bounds}
}

// syncSliders keeps slider positions and mix weights coherent: a zone
// change pushes shares into the sliders, otherwise the sliders are the
// source of truth for the weights.
func (s *Sidebar) syncSliders() {
	if s.state.MixZone != s.seededZone {
		for i, src := range core.AllSources() {
			s.sliders[i].Value = float32(s.state.Mix.Weights[src])
		}
		s.seededZone = s.state.MixZone
		return
	}
	for i, src := range core.AllSources() {
		s.state.Mix.Weights[src] = float64(s.sliders[i].Value)
	}
}

func (s *Sidebar) handleClicks(gtx layout.Context) {
	for s.reseedBtn.Clicked(gtx) {
		s.state.MixZone = ""
		s.seededZone = ""
		s.state.SeedMix(s.state.Selection.SelectedID)
	}
	for s.exportBtn.Clicked(gtx) {
		if s.OnExport != nil {
			s.OnExport()
		}
	}
}

func (s *Sidebar) layoutHeader(gtx layout.Context, th *material.Theme) layout.Dimensions {
	title := "No zone selected"
	if p, ok := s.state.SelectedProfile(); ok {
		title = fmt.Sprintf("%s (%s)", p.Name, p.ZoneID)
	} else if id := s.state.Selection.SelectedID; id != "" {
		title = id
	}
	lbl := material.Label(th, 16, title)
	lbl.Color = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	return lbl.Layout(gtx)
}

func (s *Sidebar) layoutMetrics(gtx layout.Context, th *material.Theme) layout.Dimensions {
	p, ok := s.state.SelectedProfile()
	if !ok {
		lbl := material.Label(th, 12, "Click a zone to see its metrics.")
		lbl.Color = color.NRGBA{R: 150, G: 160, B: 170, A: 255}
		return lbl.Layout(gtx)
	}
	rows := []struct {
		label, value string
	}{
		{"Year", fmt.Sprintf("%d", p.Year)},
		{"Demand", fmt.Sprintf("%.1f TWh", p.DemandTWh)},
		{"Intensity", fmt.Sprintf("%.0f gCO2eq/kWh", p.Intensity)},
		{"Renewables", fmt.Sprintf("%.1f %%", p.RenewableShare()*100)},
	}
	children := make([]layout.FlexChild, 0, len(rows))
	for _, row := range rows {
		row := row
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return s.metricRow(gtx, th, row.label, row.value)
		}))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func (s *Sidebar) metricRow(gtx layout.Context, th *material.Theme, label, value string) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			lbl := material.Label(th, 12, label)
			lbl.Color = color.NRGBA{R: 150, G: 160, B: 170, A: 255}
			return lbl.Layout(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			lbl := material.Label(th, 12, value)
			lbl.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
			return lbl.Layout(gtx)
		}),
	)
}

func (s *Sidebar) layoutMix(gtx layout.Context, th *material.Theme) layout.Dimensions {
	children := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			lbl := material.Label(th, 14, "What-if mix")
			lbl.Color = color.NRGBA{R: 210, G: 210, B: 210, A: 255}
			return lbl.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
	}
	for i, src := range core.AllSources() {
		i, src := i, src
		children = append(children,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return s.metricRow(gtx, th, src.String(),
					fmt.Sprintf("%.0f %%", s.sliders[i].Value*100))
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.Slider(th, &s.sliders[i]).Layout(gtx)
			}),
		)
	}
	res := s.state.MixResult()
	children = append(children,
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return s.metricRow(gtx, th, "Blended intensity",
				fmt.Sprintf("%.0f gCO2eq/kWh", res.Intensity))
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return s.metricRow(gtx, th, "Blended renewables",
				fmt.Sprintf("%.1f %%", res.RenewableShare*100))
		}),
	)
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func (s *Sidebar) layoutButtons(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.Button(th, &s.reseedBtn, "Reseed").Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.Button(th, &s.exportBtn, "Export PDF").Layout(gtx)
		}),
	)
}
