package game

import "fmt"

// Handle is the debug view of one running instance.
type Handle interface {
	Name() string
	Snapshot() Snapshot
}

// Snapshot is a copy of an instance's animation state. Fields that do not
// apply to the instance kind are zero.
type Snapshot struct {
	Name   string
	Kind   string
	Active bool

	// sphere
	Raw, Smoothed, Eased float64
	Phase                string

	// wave
	Mode         string
	ActiveCenter float64
	TotalOffset  float64
	Velocity     float64
	Width        float64
	Height       float64
}

func (s Snapshot) String() string {
	state := "idle"
	if s.Active {
		state = "active"
	}
	switch s.Kind {
	case "sphere":
		return fmt.Sprintf("%s [%s %s] raw=%.3f smooth=%.3f phase=%s eased=%.3f",
			s.Name, s.Kind, state, s.Raw, s.Smoothed, s.Phase, s.Eased)
	case "wave":
		return fmt.Sprintf("%s [%s %s] %.0fx%.0f mode=%s center=%.1f offset=%.1f v=%.2f",
			s.Name, s.Kind, state, s.Width, s.Height, s.Mode, s.ActiveCenter, s.TotalOffset, s.Velocity)
	}
	return fmt.Sprintf("%s [%s]", s.Name, state)
}
