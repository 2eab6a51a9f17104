// Package state manages the visualization state.
package state

import (
	"github.com/RoroDev2023/RizzTheGrid/internal/core"
)

// State holds all visualization state: the loaded dataset, the
// selection, the what-if mix and the photo gallery.
type State struct {
	Regions  *core.RegionSet
	Profiles map[core.RegionID]core.EnergyProfile

	Selection Selection
	Mix       core.Mix
	MixZone   string // zone the sliders were last seeded from
	Gallery   GalleryState
	Status    string // transient status line
}

// NewState creates the visualization state for a loaded dataset.
func NewState(regions *core.RegionSet, profiles map[core.RegionID]core.EnergyProfile) *State {
	return &State{
		Regions:  regions,
		Profiles: profiles,
		Mix:      core.NewMix(),
		Gallery:  GalleryState{Lightbox: -1},
	}
}

// SelectedProfile returns the metrics of the selected zone.
func (s *State) SelectedProfile() (core.EnergyProfile, bool) {
	id := s.Selection.SelectedID
	if id == "" {
		return core.EnergyProfile{}, false
	}
	p, ok := s.Profiles[id]
	return p, ok
}

// SeedMix loads the sliders from a zone's recorded shares when the
// selection moves to a zone the sliders were not seeded from yet.
// Reselecting the same zone keeps the user's edits.
func (s *State) SeedMix(zone string) {
	if zone == "" || zone == s.MixZone {
		return
	}
	if p, ok := s.Profiles[zone]; ok {
		s.Mix = core.MixFromProfile(p)
		s.MixZone = zone
	}
}

// MixResult blends the current slider values.
func (s *State) MixResult() core.MixResult {
	return core.BlendMix(s.Mix)
}
