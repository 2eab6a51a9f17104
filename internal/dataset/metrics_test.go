package dataset

import (
	"math"
	"testing"

	"github.com/RoroDev2023/RizzTheGrid/internal/core"
)

const metricsHeader = "zone,name,year,coal,gas,nuclear,hydro,wind,solar,biomass,demand_twh,intensity\n"

func TestParseMetrics(t *testing.T) {
	csv := metricsHeader +
		"DE,Germany,2024,0.26,0.16,0.01,0.04,0.27,0.12,0.09,466,380\n" +
		"FR,France,2024,0.01,0.06,0.65,0.11,0.08,0.04,0.02,445,56\n" +
		"XX,Broken,notayear,0,0,0,0,0,0,0,0,0\n"

	profiles, err := ParseMetrics([]byte(csv))
	if err != nil {
		t.Fatalf("ParseMetrics: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("got %d profiles, want 2 (malformed row dropped)", len(profiles))
	}

	de := profiles["DE"]
	if de.Name != "Germany" || de.Year != 2024 {
		t.Errorf("DE = %+v", de)
	}
	if math.Abs(de.Shares[core.Wind]-0.27) > 1e-9 {
		t.Errorf("DE wind share = %v, want 0.27", de.Shares[core.Wind])
	}
	if de.DemandTWh != 466 {
		t.Errorf("DE demand = %v", de.DemandTWh)
	}

	fr := profiles["FR"]
	if fr.Intensity != 56 {
		t.Errorf("FR intensity = %v", fr.Intensity)
	}
	if math.Abs(fr.Shares[core.Nuclear]-0.65) > 1e-9 {
		t.Errorf("FR nuclear share = %v", fr.Shares[core.Nuclear])
	}

	if _, ok := profiles["XX"]; ok {
		t.Errorf("malformed row must not produce a profile")
	}
}

func TestParseMetricsLegacyEncoding(t *testing.T) {
	// 0xC8 is Č in Windows-1250 and invalid UTF-8 on its own.
	raw := metricsHeader +
		"CZ,\xC8esko,2023,0.4,0.08,0.36,0.03,0.01,0.03,0.09,61,415\n"

	profiles, err := ParseMetrics([]byte(raw))
	if err != nil {
		t.Fatalf("ParseMetrics: %v", err)
	}
	if got := profiles["CZ"].Name; got != "Česko" {
		t.Errorf("name = %q, want the code-page decoded form", got)
	}
}

func TestParseMetricsErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"empty", ""},
		{"wrong header", "zone,year\nDE,2024\n"},
		{"header only", metricsHeader},
		{"negative share", metricsHeader + "DE,Germany,2024,-0.1,0.2,0.1,0.1,0.2,0.2,0.2,466,380\n"},
	}
	for _, tt := range tests {
		if _, err := ParseMetrics([]byte(tt.csv)); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}
