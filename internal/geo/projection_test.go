package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/RoroDev2023/RizzTheGrid/internal/core"
)

func sq(minLon, minLat, maxLon, maxLat float64) orb.MultiPolygon {
	return orb.MultiPolygon{{orb.Ring{
		{minLon, minLat}, {maxLon, minLat}, {maxLon, maxLat}, {minLon, maxLat}, {minLon, minLat},
	}}}
}

// Two squares whose union spans lon 0..20, lat -10..10. The mid latitude
// is the equator, so the horizontal correction factor is exactly 1 and
// all fitted pixel values below are exact.
func equatorRegions() []core.Region {
	return []core.Region{
		{ID: "SW", Name: "Southwest", Geometry: sq(0, -10, 10, 0)},
		{ID: "NE", Name: "Northeast", Geometry: sq(10, 0, 20, 10)},
	}
}

func rectEq(a, b Rect) bool {
	const eps = 1e-9
	return math.Abs(a.MinX-b.MinX) < eps && math.Abs(a.MinY-b.MinY) < eps &&
		math.Abs(a.MaxX-b.MaxX) < eps && math.Abs(a.MaxY-b.MaxY) < eps
}

func TestFitKnownScene(t *testing.T) {
	// 1000x1000 container, 100 px padding: 800 px for a 20x20 degree
	// world means scale 40 and offsets 100.
	p := Fit(equatorRegions(), 1000, 1000, 100)

	if w, h := p.Size(); w != 1000 || h != 1000 {
		t.Fatalf("Size() = %v,%v", w, h)
	}
	if got := p.Project(0, 10); math.Abs(got.X-100) > 1e-9 || math.Abs(got.Y-100) > 1e-9 {
		t.Errorf("Project(0,10) = %v, want (100,100)", got)
	}
	if got := p.Project(20, -10); math.Abs(got.X-900) > 1e-9 || math.Abs(got.Y-900) > 1e-9 {
		t.Errorf("Project(20,-10) = %v, want (900,900)", got)
	}

	tests := []struct {
		id   string
		want Rect
	}{
		{"SW", Rect{MinX: 100, MinY: 500, MaxX: 500, MaxY: 900}},
		{"NE", Rect{MinX: 500, MinY: 100, MaxX: 900, MaxY: 500}},
	}
	for _, tt := range tests {
		b, ok := p.Bounds(tt.id)
		if !ok {
			t.Fatalf("Bounds(%s) not found", tt.id)
		}
		if !rectEq(b, tt.want) {
			t.Errorf("Bounds(%s) = %+v, want %+v", tt.id, b, tt.want)
		}
	}
	if !rectEq(p.SceneBounds(), Rect{MinX: 100, MinY: 100, MaxX: 900, MaxY: 900}) {
		t.Errorf("SceneBounds() = %+v", p.SceneBounds())
	}
}

func TestFitCentersShortAxis(t *testing.T) {
	// 1000x500 with 50 px padding: the 20x20 world is height-limited
	// (scale 20) and must be centered horizontally.
	p := Fit(equatorRegions(), 1000, 500, 50)
	want := Rect{MinX: 300, MinY: 50, MaxX: 700, MaxY: 450}
	if !rectEq(p.SceneBounds(), want) {
		t.Errorf("SceneBounds() = %+v, want %+v", p.SceneBounds(), want)
	}
}

func TestFitDeterministic(t *testing.T) {
	a := Fit(equatorRegions(), 1234, 777, 24)
	b := Fit(equatorRegions(), 1234, 777, 24)

	ba, _ := a.Bounds("SW")
	bb, _ := b.Bounds("SW")
	if ba != bb {
		t.Errorf("bounds differ across identical fits: %+v vs %+v", ba, bb)
	}
	ra, rb := a.Rings("NE"), b.Rings("NE")
	if len(ra) != len(rb) {
		t.Fatalf("ring counts differ: %d vs %d", len(ra), len(rb))
	}
	for i := range ra {
		for j := range ra[i] {
			if ra[i][j] != rb[i][j] {
				t.Fatalf("ring point %d/%d differs: %v vs %v", i, j, ra[i][j], rb[i][j])
			}
		}
	}
}

func TestFitZeroContainer(t *testing.T) {
	p := Fit(equatorRegions(), 0, 0, 20)
	w, h := p.Size()
	if w != 800 || h != 600 {
		t.Errorf("fallback Size() = %v,%v, want 800,600", w, h)
	}
	b, ok := p.Bounds("SW")
	if !ok {
		t.Fatalf("Bounds(SW) missing under fallback size")
	}
	if b.W() <= 0 || math.IsNaN(b.W()) || math.IsInf(b.W(), 0) {
		t.Errorf("fallback produced a degenerate box: %+v", b)
	}
}

func TestBoundsUnknownAndMissingGeometry(t *testing.T) {
	regions := append(equatorRegions(), core.Region{ID: "GHOST"})
	p := Fit(regions, 1000, 1000, 100)

	if _, ok := p.Bounds("XX"); ok {
		t.Errorf("Bounds(XX) should not resolve")
	}
	if _, ok := p.Bounds("GHOST"); ok {
		t.Errorf("a region without geometry must not get bounds")
	}
	if p.Rings("GHOST") != nil {
		t.Errorf("Rings(GHOST) should be nil")
	}
}

func TestBoundsFloorsTinyRegions(t *testing.T) {
	regions := append(equatorRegions(), core.Region{
		ID: "DOT",
		Geometry: orb.MultiPolygon{{orb.Ring{
			{15, 5}, {15.001, 5}, {15, 5.001}, {15, 5},
		}}},
	})
	p := Fit(regions, 1000, 1000, 100)

	b, ok := p.Bounds("DOT")
	if !ok {
		t.Fatalf("Bounds(DOT) missing")
	}
	if math.Abs(b.W()-1) > 1e-9 || math.Abs(b.H()-1) > 1e-9 {
		t.Errorf("tiny box must floor to 1x1 px, got %vx%v", b.W(), b.H())
	}
}

func TestFitHighLatitudeAspect(t *testing.T) {
	regions := []core.Region{{ID: "N", Geometry: sq(0, 59, 10, 61)}}
	p := Fit(regions, 1000, 1000, 50)

	scene := p.SceneBounds()
	want := 10 * math.Cos(60*math.Pi/180) / 2 // lon span shrinks with latitude
	if got := scene.W() / scene.H(); math.Abs(got-want) > 1e-9 {
		t.Errorf("scene aspect = %v, want %v", got, want)
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{MinX: 10, MinY: 20, MaxX: 30, MaxY: 60}
	if r.W() != 20 || r.H() != 40 {
		t.Errorf("W/H = %v/%v", r.W(), r.H())
	}
	if c := r.Center(); c.X != 20 || c.Y != 40 {
		t.Errorf("Center() = %v", c)
	}
	if !r.Contains(Point{X: 10, Y: 60}) {
		t.Errorf("edges count as inside")
	}
	if r.Contains(Point{X: 9.99, Y: 40}) {
		t.Errorf("outside point reported inside")
	}
}
