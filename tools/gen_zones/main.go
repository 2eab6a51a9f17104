// Package main generates a synthetic dataset for offline development:
// zone outlines, energy metrics, a photo manifest and placeholder
// photos, in the exact layout the explorer reads.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"math/rand"
	"os"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/RoroDev2023/RizzTheGrid/internal/core"
	"github.com/RoroDev2023/RizzTheGrid/internal/dataset"
)

func main() {
	out := flag.String("out", "data", "Output dataset directory")
	seed := flag.Int64("seed", 42, "Random seed for deterministic generation")
	zones := flag.Int("zones", 12, "Number of zones")
	photos := flag.Int("photos", 2, "Placeholder photos per zone")
	year := flag.Int("year", 2024, "Reporting year for the metrics")
	flag.Parse()

	if *zones < 1 {
		fmt.Fprintln(os.Stderr, "Error: need at least one zone")
		os.Exit(1)
	}
	l := dataset.Layout{Root: *out}
	if err := os.MkdirAll(l.Root, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	specs := makeZones(rng, *zones)

	if err := writeZones(l.ZonesPath(), specs); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing zones: %v\n", err)
		os.Exit(1)
	}
	if err := writeMetrics(l.MetricsPath(), specs, rng, *year); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing metrics: %v\n", err)
		os.Exit(1)
	}
	if err := writeManifestAndPhotos(l, specs, rng, *photos); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing photos: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated: %s (%d zones, %d photos per zone, seed %d)\n",
		l.Root, len(specs), *photos, *seed)
}

// zoneSpec is one synthetic zone before serialization.
type zoneSpec struct {
	ID       string
	Name     string
	Geometry orb.MultiPolygon
}

// makeZones lays the zones out on a lon/lat grid and gives each an
// irregular outline. Every fifth zone gets a hole and every seventh an
// offshore island, so the renderer and hit test see both shapes.
func makeZones(rng *rand.Rand, n int) []zoneSpec {
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	specs := make([]zoneSpec, 0, n)
	for i := 0; i < n; i++ {
		cx := -20.0 + float64(i%cols)*8
		cy := 52.0 - float64(i/cols)*8

		poly := orb.Polygon{blobRing(rng, cx, cy, 2.2, 0.8)}
		if (i+1)%5 == 0 {
			// Holes wind opposite to the exterior, per GeoJSON.
			poly = append(poly, reversed(blobRing(rng, cx, cy, 0.7, 0.2)))
		}
		mp := orb.MultiPolygon{poly}
		if (i+1)%7 == 0 {
			mp = append(mp, orb.Polygon{blobRing(rng, cx+3.2, cy+2.6, 0.5, 0.15)})
		}

		specs = append(specs, zoneSpec{
			ID:       fmt.Sprintf("Z%02d", i+1),
			Name:     fmt.Sprintf("Sector %02d", i+1),
			Geometry: mp,
		})
	}
	return specs
}

// blobRing builds a closed, jittered, counterclockwise ring around a
// center point.
func blobRing(rng *rand.Rand, cx, cy, radius, jitter float64) orb.Ring {
	const verts = 10
	ring := make(orb.Ring, 0, verts+1)
	for k := 0; k < verts; k++ {
		ang := 2 * math.Pi * float64(k) / verts
		r := radius + (rng.Float64()*2-1)*jitter
		ring = append(ring, orb.Point{cx + r*math.Cos(ang), cy + r*math.Sin(ang)})
	}
	ring = append(ring, ring[0])
	return ring
}

func reversed(r orb.Ring) orb.Ring {
	out := make(orb.Ring, len(r))
	for i, pt := range r {
		out[len(r)-1-i] = pt
	}
	return out
}

func writeZones(path string, specs []zoneSpec) error {
	fc := geojson.NewFeatureCollection()
	for _, z := range specs {
		f := geojson.NewFeature(z.Geometry)
		f.Properties["zone"] = z.ID
		f.Properties["name"] = z.Name
		fc.Append(f)
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// writeMetrics invents a generation mix per zone and derives the
// carbon intensity from it, so the numbers stay mutually consistent.
func writeMetrics(path string, specs []zoneSpec, rng *rand.Rand, year int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"zone", "name", "year",
		"coal", "gas", "nuclear", "hydro", "wind", "solar", "biomass",
		"demand_twh", "intensity",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, z := range specs {
		shares := randomShares(rng)
		p := core.EnergyProfile{ZoneID: z.ID, Shares: shares}
		blended := core.BlendMix(core.MixFromProfile(p))

		row := []string{z.ID, z.Name, strconv.Itoa(year)}
		for _, s := range core.AllSources() {
			row = append(row, strconv.FormatFloat(shares[s], 'f', 4, 64))
		}
		row = append(row,
			strconv.FormatFloat(20+rng.Float64()*480, 'f', 1, 64),
			strconv.FormatFloat(blended.Intensity, 'f', 1, 64),
		)
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// randomShares draws a generation mix that sums to one.
func randomShares(rng *rand.Rand) map[core.Source]float64 {
	shares := make(map[core.Source]float64, len(core.AllSources()))
	var total float64
	for _, s := range core.AllSources() {
		v := rng.Float64()
		shares[s] = v
		total += v
	}
	for s := range shares {
		shares[s] /= total
	}
	return shares
}

func writeManifestAndPhotos(l dataset.Layout, specs []zoneSpec, rng *rand.Rand, perZone int) error {
	var m dataset.Manifest
	for _, z := range specs {
		if err := os.MkdirAll(l.ImageDir(z.ID), 0755); err != nil {
			return err
		}
		zp := dataset.ZonePhotos{Zone: z.ID}
		for i := 0; i < perZone; i++ {
			name := fmt.Sprintf("photo%d.png", i+1)
			if err := writePhoto(l.ImagePath(z.ID, name), rng); err != nil {
				return err
			}
			zp.Images = append(zp.Images, dataset.PhotoMeta{
				File:    name,
				URL:     fmt.Sprintf("https://data.rizzthegrid.dev/photos/%s/%s", z.ID, name),
				Caption: fmt.Sprintf("%s site %d", z.Name, i+1),
			})
		}
		m.Zones = append(m.Zones, zp)
	}

	data, err := json.MarshalIndent(&m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(l.ManifestPath(), data, 0644)
}

// writePhoto renders a small two-tone gradient placeholder.
func writePhoto(path string, rng *rand.Rand) error {
	const w, h = 320, 200
	top := color.NRGBA{R: uint8(rng.Intn(200)), G: uint8(rng.Intn(200)), B: uint8(55 + rng.Intn(200)), A: 255}
	bottom := color.NRGBA{R: uint8(55 + rng.Intn(200)), G: uint8(rng.Intn(200)), B: uint8(rng.Intn(200)), A: 255}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := float64(y) / (h - 1)
		c := color.NRGBA{
			R: uint8(float64(top.R) + t*(float64(bottom.R)-float64(top.R))),
			G: uint8(float64(top.G) + t*(float64(bottom.G)-float64(top.G))),
			B: uint8(float64(top.B) + t*(float64(bottom.B)-float64(top.B))),
			A: 255,
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
