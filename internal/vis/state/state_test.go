package state

import (
	"testing"

	"github.com/RoroDev2023/RizzTheGrid/internal/core"
	"github.com/RoroDev2023/RizzTheGrid/internal/dataset"
)

func testState() *State {
	profiles := map[core.RegionID]core.EnergyProfile{
		"DE": {
			ZoneID: "DE", Name: "Germany", Year: 2024,
			Shares:    map[core.Source]float64{core.Coal: 0.3, core.Wind: 0.3, core.Gas: 0.4},
			DemandTWh: 480, Intensity: 380,
		},
		"FR": {
			ZoneID: "FR", Name: "France", Year: 2024,
			Shares:    map[core.Source]float64{core.Nuclear: 0.7, core.Hydro: 0.1, core.Gas: 0.2},
			DemandTWh: 440, Intensity: 56,
		},
	}
	return NewState(core.NewRegionSet(nil), profiles)
}

func TestSelectedProfile(t *testing.T) {
	s := testState()
	if _, ok := s.SelectedProfile(); ok {
		t.Error("no selection should mean no profile")
	}
	s.Selection.Toggle("FR")
	p, ok := s.SelectedProfile()
	if !ok || p.Name != "France" {
		t.Errorf("SelectedProfile = %+v, %v", p, ok)
	}
	s.Selection.Toggle("XX")
	if _, ok := s.SelectedProfile(); ok {
		t.Error("selected zone without metrics should report no profile")
	}
}

func TestSeedMixOncePerZone(t *testing.T) {
	s := testState()
	s.SeedMix("DE")
	if s.MixZone != "DE" {
		t.Fatalf("MixZone = %q, want DE", s.MixZone)
	}
	if got := s.Mix.Weights[core.Coal]; got != 0.3 {
		t.Errorf("coal weight = %v, want 0.3", got)
	}

	// User edits survive reseeding with the same zone.
	s.Mix.Weights[core.Coal] = 0.9
	s.SeedMix("DE")
	if got := s.Mix.Weights[core.Coal]; got != 0.9 {
		t.Errorf("coal weight = %v, want user edit kept", got)
	}

	// Moving to another zone reseeds.
	s.SeedMix("FR")
	if got := s.Mix.Weights[core.Nuclear]; got != 0.7 {
		t.Errorf("nuclear weight = %v, want 0.7", got)
	}
	if got := s.Mix.Weights[core.Coal]; got != 0 {
		t.Errorf("coal weight = %v, want reset", got)
	}
}

func TestSeedMixUnknownZoneIsNoop(t *testing.T) {
	s := testState()
	s.SeedMix("XX")
	if s.MixZone != "" {
		t.Errorf("MixZone = %q, want empty", s.MixZone)
	}
}

func TestGalleryLightbox(t *testing.T) {
	var g GalleryState
	photos := []dataset.Photo{{Caption: "a"}, {Caption: "b"}, {Caption: "c"}}
	g.Show("DE", photos)
	if _, open := g.Current(); open {
		t.Error("lightbox should start closed")
	}

	g.Open(5)
	if g.Lightbox != -1 {
		t.Error("out-of-range open should be ignored")
	}

	g.Open(1)
	if p, open := g.Current(); !open || p.Caption != "b" {
		t.Errorf("Current = %+v, %v", p, open)
	}

	g.Summary = "some text"
	g.Busy = true
	g.Step(1)
	if g.Lightbox != 2 || g.Summary != "" || g.Busy {
		t.Errorf("Step(1): lightbox=%d summary=%q busy=%v", g.Lightbox, g.Summary, g.Busy)
	}
	g.Step(1)
	if g.Lightbox != 2 {
		t.Error("Step past the end should clamp")
	}
	g.Step(-5)
	if g.Lightbox != 0 {
		t.Error("Step past the start should clamp")
	}

	g.Close()
	if g.Lightbox != -1 {
		t.Error("Close should reset the lightbox")
	}
	g.Step(1)
	if g.Lightbox != -1 {
		t.Error("Step on a closed lightbox should do nothing")
	}
}

func TestGalleryShowResetsOverlay(t *testing.T) {
	var g GalleryState
	g.Show("DE", []dataset.Photo{{Caption: "a"}})
	g.Open(0)
	g.Summary = "old"
	g.Busy = true
	g.Show("FR", nil)
	if g.Zone != "FR" || g.Lightbox != -1 || g.Summary != "" || g.Busy {
		t.Errorf("Show left stale overlay state: %+v", g)
	}
}
