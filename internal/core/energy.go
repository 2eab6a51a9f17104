package core

// Source classifies generation technologies.
type Source int

const (
	Coal Source = iota
	Gas
	Nuclear
	Hydro
	Wind
	Solar
	Biomass
)

func (s Source) String() string {
	return [...]string{"Coal", "Gas", "Nuclear", "Hydro", "Wind", "Solar", "Biomass"}[s]
}

// AllSources returns every source in display order.
func AllSources() []Source {
	return []Source{Coal, Gas, Nuclear, Hydro, Wind, Solar, Biomass}
}

// EmissionFactor returns the lifecycle intensity in gCO2eq/kWh
// (IPCC AR5 median values).
func EmissionFactor(s Source) float64 {
	switch s {
	case Coal:
		return 820
	case Gas:
		return 490
	case Nuclear:
		return 12
	case Hydro:
		return 24
	case Wind:
		return 11
	case Solar:
		return 45
	case Biomass:
		return 230
	default:
		return 0
	}
}

// IsRenewable reports whether a source counts toward the renewable share.
func IsRenewable(s Source) bool {
	switch s {
	case Hydro, Wind, Solar, Biomass:
		return true
	default:
		return false
	}
}

// EnergyProfile is one zone's metrics row: generation shares per source,
// annual demand and the reported grid intensity. Name is a display
// fallback for zones whose outline carries none.
type EnergyProfile struct {
	ZoneID    RegionID
	Name      string
	Year      int
	Shares    map[Source]float64 // fraction of generation, 0..1
	DemandTWh float64
	Intensity float64 // reported gCO2eq/kWh
}

// RenewableShare returns the renewable fraction of the profile's generation.
func (p EnergyProfile) RenewableShare() float64 {
	var total, ren float64
	for s, v := range p.Shares {
		total += v
		if IsRenewable(s) {
			ren += v
		}
	}
	if total <= 0 {
		return 0
	}
	return ren / total
}
