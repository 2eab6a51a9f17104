package draw

import (
	"testing"

	"github.com/RoroDev2023/RizzTheGrid/internal/core"
)

func TestZoneFillRamp(t *testing.T) {
	if got := ZoneFill(core.EnergyProfile{}, false); got != ColorZoneNoData {
		t.Errorf("no metrics = %v, want neutral", got)
	}
	if got := ZoneFill(core.EnergyProfile{Intensity: 0}, true); got != ColorZoneClean {
		t.Errorf("intensity 0 = %v, want clean end", got)
	}
	if got := ZoneFill(core.EnergyProfile{Intensity: 800}, true); got != ColorZoneDirty {
		t.Errorf("intensity 800 = %v, want dirty end", got)
	}
	// Above the ramp top stays clamped.
	if got := ZoneFill(core.EnergyProfile{Intensity: 2000}, true); got != ColorZoneDirty {
		t.Errorf("intensity 2000 = %v, want dirty end", got)
	}
	mid := ZoneFill(core.EnergyProfile{Intensity: 400}, true)
	if mid == ColorZoneClean || mid == ColorZoneDirty {
		t.Errorf("mid intensity should land between the ramp ends, got %v", mid)
	}
}

func TestLightenClamps(t *testing.T) {
	c := lighten(ColorSelectedEdge, 100)
	if c.R != 255 || c.G != 255 {
		t.Errorf("lighten should clamp at white, got %v", c)
	}
	if c.A != ColorSelectedEdge.A {
		t.Error("lighten must not touch alpha")
	}
}
