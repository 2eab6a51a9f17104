package core

// Mix holds the slider values of the what-if calculator, one weight per
// source. Weights need not sum to 1; BlendMix normalizes.
type Mix struct {
	Weights map[Source]float64
}

// NewMix returns a mix with every weight at zero.
func NewMix() Mix {
	w := make(map[Source]float64, len(AllSources()))
	for _, s := range AllSources() {
		w[s] = 0
	}
	return Mix{Weights: w}
}

// MixFromProfile seeds the sliders from a zone's actual generation shares.
func MixFromProfile(p EnergyProfile) Mix {
	m := NewMix()
	for s, v := range p.Shares {
		if v > 0 {
			m.Weights[s] = v
		}
	}
	return m
}

// MixResult is the outcome of blending a mix.
type MixResult struct {
	Intensity      float64 // gCO2eq/kWh of the blended mix
	RenewableShare float64 // 0..1
}

// BlendMix normalizes the weights and folds the per-source emission
// factors into a single intensity. A mix with no positive weight blends
// to the zero result.
func BlendMix(m Mix) MixResult {
	var total float64
	for _, v := range m.Weights {
		if v > 0 {
			total += v
		}
	}
	if total <= 0 {
		return MixResult{}
	}
	var res MixResult
	for s, v := range m.Weights {
		if v <= 0 {
			continue
		}
		frac := v / total
		res.Intensity += frac * EmissionFactor(s)
		if IsRenewable(s) {
			res.RenewableShare += frac
		}
	}
	return res
}
