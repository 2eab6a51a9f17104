package interact

import (
	"math"

	"gioui.org/f32"
)

// DragThreshold is the Euclidean displacement in px past which a press
// becomes a pan. Without it every drag would also toggle a selection
// on release.
const DragThreshold = 4

// Phase classifies the current gesture.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePressed
	PhaseDragging
)

func (p Phase) String() string {
	return [...]string{"Idle", "Pressed", "Dragging"}[p]
}

// Tracker follows a single pointer stream through
// Idle -> Pressed -> {Dragging | click on release} -> Idle.
// Concurrent multi-pointer gestures are not supported.
type Tracker struct {
	phase Phase
	start f32.Point
	last  f32.Point
}

// Phase returns the current gesture phase.
func (t *Tracker) Phase() Phase {
	return t.phase
}

// Down starts a gesture at p.
func (t *Tracker) Down(p f32.Point) {
	t.phase = PhasePressed
	t.start = p
	t.last = p
}

// Move feeds a pointer position. Once displacement from the press point
// exceeds DragThreshold the gesture is a pan and every move, including
// the one that crossed the threshold, yields the delta to apply. The
// first delta spans from the press point, so sub-threshold motion is
// applied late rather than lost.
func (t *Tracker) Move(p f32.Point) (delta f32.Point, pan bool) {
	if t.phase == PhaseIdle {
		return f32.Point{}, false
	}
	if t.phase == PhasePressed {
		if dist(t.start, p) <= DragThreshold {
			return f32.Point{}, false
		}
		t.phase = PhaseDragging
	}
	delta = p.Sub(t.last)
	t.last = p
	return delta, true
}

// Up ends the gesture and resets to Idle. Only a press that never
// crossed the threshold resolves to a click; releasing a drag stays
// silent so the pan cannot double as a selection toggle.
func (t *Tracker) Up() (click bool) {
	click = t.phase == PhasePressed
	t.phase = PhaseIdle
	t.start = f32.Point{}
	t.last = f32.Point{}
	return click
}

func dist(a, b f32.Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}
