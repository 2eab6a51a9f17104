// Package vis implements the Gio-based application shell for the map
// explorer: it owns the shared state, the frame loop and the wiring
// between widgets, background tasks and the dataset on disk.
package vis

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"maps"
	"path/filepath"
	"time"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/RoroDev2023/RizzTheGrid/internal/config"
	"github.com/RoroDev2023/RizzTheGrid/internal/core"
	"github.com/RoroDev2023/RizzTheGrid/internal/dataset"
	"github.com/RoroDev2023/RizzTheGrid/internal/export"
	"github.com/RoroDev2023/RizzTheGrid/internal/fetch"
	applog "github.com/RoroDev2023/RizzTheGrid/internal/log"
	"github.com/RoroDev2023/RizzTheGrid/internal/vis/interact"
	"github.com/RoroDev2023/RizzTheGrid/internal/vis/state"
	"github.com/RoroDev2023/RizzTheGrid/internal/vis/tasks"
	"github.com/RoroDev2023/RizzTheGrid/internal/vis/widgets"
)

// App is the main explorer application.
type App struct {
	cfg    config.Config
	data   dataset.Layout
	client *fetch.Client
	log    *slog.Logger

	state      *state.State
	theme      *material.Theme
	controller *interact.Controller
	runner     *tasks.Runner

	mapView *widgets.MapView
	sidebar *widgets.Sidebar
	gallery *widgets.Gallery
	toolbar *widgets.Toolbar

	syncing bool
}

// NewApp builds the application from a config and loads whatever
// dataset is already on disk. A missing dataset is not an error: the
// app starts empty and offers the sync action.
func NewApp(cfg config.Config) *App {
	st := state.NewState(core.NewRegionSet(nil), nil)
	a := &App{
		cfg:        cfg,
		data:       dataset.Layout{Root: cfg.DataDir},
		client:     fetch.NewClient(cfg),
		log:        applog.WithComponent("app"),
		state:      st,
		theme:      material.NewTheme(),
		controller: interact.NewController(cfg.Viewport.DefaultCap, cfg.Viewport.ZoomCaps),
	}
	a.mapView = widgets.NewMapView(st, a.controller)
	a.sidebar = widgets.NewSidebar(st)
	a.gallery = widgets.NewGallery(st)
	a.toolbar = widgets.NewToolbar(st)

	a.mapView.OnSelect = a.onSelect
	a.sidebar.OnExport = a.onExport
	a.gallery.OnDescribe = a.onDescribe
	a.toolbar.OnFitAll = a.onFitAll
	a.toolbar.OnSync = a.onSync

	a.loadDataset()
	return a
}

// loadDataset replaces the in-memory dataset with whatever is on disk.
func (a *App) loadDataset() {
	regions, err := dataset.LoadZones(a.data.ZonesPath())
	if err != nil {
		a.log.Warn("zones unavailable", "path", a.data.ZonesPath(), "err", err)
		a.state.Status = fmt.Sprintf("No dataset in %s. Use Sync data to download it.", a.data.Root)
		return
	}
	profiles, err := dataset.LoadMetrics(a.data.MetricsPath())
	if err != nil {
		a.log.Warn("metrics unavailable", "path", a.data.MetricsPath(), "err", err)
		profiles = nil
	}
	a.state.Regions = regions
	a.state.Profiles = profiles
	a.state.Status = fmt.Sprintf("Loaded %d zones.", regions.Len())
	a.log.Info("dataset loaded", "zones", regions.Len(), "profiles", len(profiles))
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	a.runner = tasks.NewRunner(w.Invalidate)
	defer a.runner.Close()

	var ops op.Ops

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(
					key.Filter{Name: key.NameEscape},
					key.Filter{Name: key.NameLeftArrow},
					key.Filter{Name: key.NameRightArrow},
					key.Filter{Name: "F"},
				)
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke, gtx.Now)
				}
			}

			// Deliver finished background work, then advance any
			// in-flight viewport animation before drawing.
			a.runner.Drain()
			a.controller.Tick(gtx.Now)

			a.layout(gtx)
			e.Frame(gtx.Ops)

			if a.controller.Animating() {
				w.Invalidate()
			}
		}
	}
}

func (a *App) handleKeyEvent(e key.Event, now time.Time) {
	switch e.Name {
	case key.NameEscape:
		if a.state.Gallery.Lightbox >= 0 {
			a.state.Gallery.Close()
			return
		}
		a.clearSelection(now)
	case key.NameLeftArrow:
		a.state.Gallery.Step(-1)
	case key.NameRightArrow:
		a.state.Gallery.Step(1)
	case "F":
		a.clearSelection(now)
	}
}

// clearSelection drops the selection and animates back to the
// baseline framing.
func (a *App) clearSelection(now time.Time) {
	a.state.Selection.Clear()
	a.state.Gallery.Clear()
	if proj := a.mapView.Projection(); proj != nil {
		a.controller.Retarget(proj, "", now)
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	dims := layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return a.mapView.Layout(gtx)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					w := gtx.Dp(widgets.SidebarWidth)
					gtx.Constraints.Min.X = w
					gtx.Constraints.Max.X = w
					return a.sidebar.Layout(gtx, a.theme)
				}),
			)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.gallery.LayoutStrip(gtx, a.theme)
		}),
	)

	// The lightbox paints after everything else so it sits on top.
	a.gallery.LayoutLightbox(gtx, a.theme)
	return dims
}

// onSelect runs after a click changed the selection.
func (a *App) onSelect(id string) {
	if id == "" {
		a.state.Gallery.Clear()
		return
	}
	a.state.SeedMix(id)
	a.loadGallery(id)
}

// loadGallery decodes the zone's photos off the frame loop.
func (a *App) loadGallery(id string) {
	a.state.Gallery.Show(id, nil)
	a.runner.Go(func(ctx context.Context) tasks.Apply {
		m, err := dataset.LoadManifest(a.data.ManifestPath())
		if err != nil {
			return func() {
				a.log.Debug("manifest unavailable", "err", err)
			}
		}
		photos := dataset.LoadPhotos(a.data, m, id)
		return func() {
			// The user may have moved on while we were decoding.
			if a.state.Selection.SelectedID != id {
				return
			}
			a.state.Gallery.Show(id, photos)
		}
	})
}

// onDescribe sends the lightbox photo to the describe service.
func (a *App) onDescribe(index int) {
	gal := &a.state.Gallery
	ph, ok := gal.Current()
	if !ok || gal.Lightbox != index || ph.File == "" {
		return
	}
	zone := gal.Zone
	path := a.data.ImagePath(zone, ph.File)
	gal.Busy = true
	a.runner.Go(func(ctx context.Context) tasks.Apply {
		summary, err := a.client.DescribeFile(ctx, path)
		return func() {
			g := &a.state.Gallery
			if g.Zone != zone || g.Lightbox != index {
				return
			}
			g.Busy = false
			switch {
			case errors.Is(err, fetch.ErrNoDescribeKey):
				g.Summary = "No describe key configured. Run gridfetch set-key."
			case err != nil:
				g.Summary = "Describe failed: " + err.Error()
				a.log.Error("describe failed", "zone", zone, "file", ph.File, "err", err)
			default:
				g.Summary = summary
			}
		}
	})
}

// onExport writes the selected zone's report next to the dataset.
func (a *App) onExport() {
	p, ok := a.state.SelectedProfile()
	if !ok {
		a.state.Status = "Select a zone with metrics to export its report."
		return
	}
	rep := export.ZoneReport{
		Profile: p,
		// Snapshot the weights: the user can keep dragging sliders
		// while the writer runs.
		Mix:       core.Mix{Weights: maps.Clone(a.state.Mix.Weights)},
		Result:    a.state.MixResult(),
		Generated: time.Now(),
	}
	out := filepath.Join(a.data.Root, "reports", p.ZoneID+".pdf")
	a.runner.Go(func(ctx context.Context) tasks.Apply {
		err := export.ExportZoneReport(out, rep)
		return func() {
			if err != nil {
				a.state.Status = "Export failed: " + err.Error()
				a.log.Error("report export failed", "zone", p.ZoneID, "err", err)
				return
			}
			a.state.Status = "Report written to " + out
		}
	})
}

// onFitAll clears the selection and re-frames the whole scene.
func (a *App) onFitAll() {
	a.clearSelection(time.Now())
}

// onSync refreshes the dataset mirror and reloads it.
func (a *App) onSync() {
	if a.syncing {
		return
	}
	a.syncing = true
	a.state.Status = "Syncing dataset..."
	a.runner.Go(func(ctx context.Context) tasks.Apply {
		err := a.client.SyncAll(ctx)
		return func() {
			a.syncing = false
			if err != nil {
				a.state.Status = "Sync failed: " + err.Error()
				a.log.Error("dataset sync failed", "err", err)
				return
			}
			a.state.Selection.Clear()
			a.state.Gallery.Clear()
			a.loadDataset()
			a.mapView.Refit()
		}
	})
}
