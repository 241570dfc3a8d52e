package signal

// Phase is the stage of a single-finger gesture.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseStart
	PhaseMove
	PhaseEnd
	// PhaseCancel abandons the gesture: a second finger landed.
	PhaseCancel
)

// TouchEvent is one gesture sample in window pixels.
type TouchEvent struct {
	Phase Phase
	X, Y  float64
}

// Touch follows one finger at a time and reports start, move and end
// events. A second finger cancels tracking until every finger lifts.
type Touch struct {
	id      int
	active  bool
	blocked bool
	lastX   float64
	lastY   float64
}

// Sample is a snapshot of the touch points down this frame.
type Sample struct {
	ID   int
	X, Y float64
}

// Update diffs this frame's touches against the tracked finger.
func (t *Touch) Update(down []Sample) []TouchEvent {
	var out []TouchEvent
	if len(down) == 0 {
		if t.active {
			out = append(out, TouchEvent{Phase: PhaseEnd, X: t.lastX, Y: t.lastY})
		}
		t.active = false
		t.blocked = false
		return out
	}
	if len(down) > 1 || t.blocked {
		if t.active {
			out = append(out, TouchEvent{Phase: PhaseCancel, X: t.lastX, Y: t.lastY})
			t.active = false
		}
		t.blocked = true
		return out
	}

	s := down[0]
	if !t.active || s.ID != t.id {
		t.active = true
		t.id = s.ID
		t.lastX, t.lastY = s.X, s.Y
		return append(out, TouchEvent{Phase: PhaseStart, X: s.X, Y: s.Y})
	}
	if s.X != t.lastX || s.Y != t.lastY {
		t.lastX, t.lastY = s.X, s.Y
		out = append(out, TouchEvent{Phase: PhaseMove, X: s.X, Y: s.Y})
	}
	return out
}

func (t *Touch) Active() bool { return t.active }

