package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/RoroDev2023/RizzTheGrid/internal/core"
)

// metricsColumns is the expected CSV header. The seven share columns
// line up with core.AllSources.
var metricsColumns = []string{
	"zone", "name", "year",
	"coal", "gas", "nuclear", "hydro", "wind", "solar", "biomass",
	"demand_twh", "intensity",
}

// ParseMetrics reads per-zone energy metrics. Exports from national
// archives occasionally arrive in a legacy code page; content that is
// not valid UTF-8 is decoded as Windows-1250 first. Malformed rows are
// dropped, a file without a single good row is an error.
func ParseMetrics(data []byte) (map[core.RegionID]core.EnergyProfile, error) {
	if !utf8.Valid(data) {
		decoded, err := charmap.Windows1250.NewDecoder().String(string(data))
		if err != nil {
			return nil, fmt.Errorf("parse metrics: decode: %w", err)
		}
		data = []byte(decoded)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse metrics: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("parse metrics: empty file")
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	profiles := make(map[core.RegionID]core.EnergyProfile, len(rows)-1)
	for _, row := range rows[1:] {
		p, ok := parseProfileRow(row)
		if !ok {
			continue
		}
		profiles[p.ZoneID] = p
	}
	if len(profiles) == 0 {
		return nil, errors.New("parse metrics: no usable rows")
	}
	return profiles, nil
}

func checkHeader(header []string) error {
	if len(header) != len(metricsColumns) {
		return fmt.Errorf("parse metrics: header has %d columns, want %d", len(header), len(metricsColumns))
	}
	for i, want := range metricsColumns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return fmt.Errorf("parse metrics: column %d is %q, want %q", i, header[i], want)
		}
	}
	return nil
}

func parseProfileRow(row []string) (core.EnergyProfile, bool) {
	if len(row) != len(metricsColumns) || strings.TrimSpace(row[0]) == "" {
		return core.EnergyProfile{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return core.EnergyProfile{}, false
	}

	p := core.EnergyProfile{
		ZoneID: strings.TrimSpace(row[0]),
		Name:   strings.TrimSpace(row[1]),
		Year:   year,
		Shares: make(map[core.Source]float64, len(core.AllSources())),
	}
	for i, s := range core.AllSources() {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[3+i]), 64)
		if err != nil || v < 0 {
			return core.EnergyProfile{}, false
		}
		p.Shares[s] = v
	}
	if p.DemandTWh, err = strconv.ParseFloat(strings.TrimSpace(row[10]), 64); err != nil {
		return core.EnergyProfile{}, false
	}
	if p.Intensity, err = strconv.ParseFloat(strings.TrimSpace(row[11]), 64); err != nil {
		return core.EnergyProfile{}, false
	}
	return p, true
}

// LoadMetrics reads and parses a metrics file.
func LoadMetrics(path string) (map[core.RegionID]core.EnergyProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load metrics: %w", err)
	}
	return ParseMetrics(data)
}
