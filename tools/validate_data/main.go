// Package main validates a dataset directory: it parses the three
// dataset files, checks the manifest against its JSON schema and
// cross-references zone ids and photo files.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/RoroDev2023/RizzTheGrid/internal/core"
	"github.com/RoroDev2023/RizzTheGrid/internal/dataset"
)

var problems int

func fail(format string, args ...any) {
	problems++
	fmt.Printf("FAIL: "+format+"\n", args...)
}

func warn(format string, args ...any) {
	fmt.Printf("warn: "+format+"\n", args...)
}

func main() {
	dir := flag.String("data", "data", "Dataset directory to validate")
	schemaPath := flag.String("schema", "docs/manifest.schema.json", "Manifest JSON schema")
	flag.Parse()

	l := dataset.Layout{Root: *dir}
	fmt.Printf("Validating %s\n\n", l.Root)

	regions, err := dataset.LoadZones(l.ZonesPath())
	if err != nil {
		fail("zones: %v", err)
		summary()
		return
	}
	fmt.Printf("zones:    %d outlines\n", regions.Len())
	for _, r := range regions.Regions {
		if !r.HasGeometry() {
			warn("zone %s has a degenerate outline", r.ID)
		}
	}

	checkMetrics(l, regions)
	checkManifest(l, regions, *schemaPath)
	summary()
}

func checkMetrics(l dataset.Layout, regions *core.RegionSet) {
	profiles, err := dataset.LoadMetrics(l.MetricsPath())
	if err != nil {
		fail("metrics: %v", err)
		return
	}
	fmt.Printf("metrics:  %d profiles\n", len(profiles))

	uncovered := 0
	for _, r := range regions.Regions {
		if _, ok := profiles[r.ID]; !ok {
			uncovered++
		}
	}
	if uncovered > 0 {
		warn("%d zones have no metrics row", uncovered)
	}

	for id, p := range profiles {
		if _, ok := regions.ByID(id); !ok {
			fail("metrics row %q has no zone outline", id)
		}
		var sum float64
		for _, v := range p.Shares {
			sum += v
		}
		if math.Abs(sum-1) > 0.02 {
			warn("zone %s shares sum to %.3f", id, sum)
		}
		if p.Intensity < 0 || p.DemandTWh < 0 {
			fail("zone %s has negative metrics", id)
		}
	}
}

func checkManifest(l dataset.Layout, regions *core.RegionSet, schemaPath string) {
	doc, err := os.ReadFile(l.ManifestPath())
	if err != nil {
		warn("manifest: %v (photo gallery will be empty)", err)
		return
	}
	if schema, err := os.ReadFile(schemaPath); err != nil {
		warn("schema %s unreadable, skipping schema check: %v", schemaPath, err)
	} else if err := dataset.ValidateManifest(schema, doc); err != nil {
		fail("%v", err)
	}

	m, err := dataset.ParseManifest(doc)
	if err != nil {
		fail("manifest: %v", err)
		return
	}

	images, missing := 0, 0
	for _, z := range m.Zones {
		if _, ok := regions.ByID(z.Zone); !ok {
			fail("manifest zone %q has no zone outline", z.Zone)
		}
		for _, img := range z.Images {
			images++
			if _, err := os.Stat(l.ImagePath(z.Zone, img.File)); err != nil {
				missing++
			}
		}
	}
	fmt.Printf("manifest: %d zones, %d photos (%d not mirrored yet)\n", len(m.Zones), images, missing)
}

func summary() {
	fmt.Println()
	if problems > 0 {
		fmt.Printf("%d problems found\n", problems)
		os.Exit(1)
	}
	fmt.Println("Dataset OK")
}
