package geo

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/RoroDev2023/RizzTheGrid/internal/core"
)

func TestRegionAtKnownScene(t *testing.T) {
	p := Fit(equatorRegions(), 1000, 1000, 100)

	tests := []struct {
		name   string
		pt     Point
		wantID string
		hit    bool
	}{
		{"inside SW", Point{X: 300, Y: 700}, "SW", true},
		{"inside NE", Point{X: 700, Y: 300}, "NE", true},
		{"empty SE quadrant", Point{X: 700, Y: 700}, "", false},
		{"outside scene", Point{X: 50, Y: 50}, "", false},
	}
	for _, tt := range tests {
		id, ok := p.RegionAt(tt.pt)
		if ok != tt.hit || string(id) != tt.wantID {
			t.Errorf("%s: RegionAt(%v) = %q,%v, want %q,%v",
				tt.name, tt.pt, id, ok, tt.wantID, tt.hit)
		}
	}
}

func TestRegionAtRespectsHoles(t *testing.T) {
	// A 10x10 degree donut centered on the equator: outer ring with a
	// 2x2 degree hole. Scale is 80, so the hole spans (420,420)-(580,580).
	donut := core.Region{ID: "DONUT", Geometry: orb.MultiPolygon{{
		orb.Ring{{0, -5}, {10, -5}, {10, 5}, {0, 5}, {0, -5}},
		orb.Ring{{4, -1}, {6, -1}, {6, 1}, {4, 1}, {4, -1}},
	}}}
	p := Fit([]core.Region{donut}, 1000, 1000, 100)

	if id, ok := p.RegionAt(Point{X: 200, Y: 500}); !ok || id != "DONUT" {
		t.Errorf("donut body miss: %q,%v", id, ok)
	}
	if _, ok := p.RegionAt(Point{X: 500, Y: 500}); ok {
		t.Error("point inside the hole must not hit")
	}
}

func TestRegionAtOverlapLastWins(t *testing.T) {
	// ENCLAVE sits entirely inside HOST and is fitted (and painted)
	// later, so it wins where they overlap.
	host := core.Region{ID: "HOST", Geometry: sq(0, -10, 20, 10)}
	enclave := core.Region{ID: "ENCLAVE", Geometry: sq(8, -2, 12, 2)}
	p := Fit([]core.Region{host, enclave}, 1000, 1000, 100)

	if id, _ := p.RegionAt(Point{X: 500, Y: 500}); id != "ENCLAVE" {
		t.Errorf("overlap center = %q, want ENCLAVE", id)
	}
	if id, _ := p.RegionAt(Point{X: 150, Y: 500}); id != "HOST" {
		t.Errorf("host-only point = %q, want HOST", id)
	}
}

func TestRegionAtSkipsMissingGeometry(t *testing.T) {
	regions := append(equatorRegions(), core.Region{ID: "GHOST"})
	p := Fit(regions, 1000, 1000, 100)
	if id, ok := p.RegionAt(Point{X: 300, Y: 700}); !ok || id != "SW" {
		t.Errorf("RegionAt with ghost region = %q,%v", id, ok)
	}
}
