package wave

import "fmt"

// Mode selects how the active center and segment positions are driven.
type Mode int

const (
	ModePointer Mode = iota
	ModeInertialSwipe
	ModeStepSwipe
	ModeScrollTrack
)

func (m Mode) String() string {
	switch m {
	case ModePointer:
		return "pointer"
	case ModeInertialSwipe:
		return "inertial-swipe"
	case ModeStepSwipe:
		return "step-swipe"
	case ModeScrollTrack:
		return "scroll-track"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Swipes reports whether the mode moves the segments themselves.
func (m Mode) Swipes() bool {
	return m == ModeInertialSwipe || m == ModeStepSwipe
}

// ModeOptions are the drive-mode flags of one wave configuration.
type ModeOptions struct {
	StepSwipe bool
	// Swipe forces inertial swipe on or off; nil follows the device class.
	Swipe            *bool
	HasTrack         bool
	DesktopScrollBar bool
}

// ResolveMode picks the single active mode for a device class.
func ResolveMode(o ModeOptions, touch bool) Mode {
	swipe := touch
	if o.Swipe != nil {
		swipe = *o.Swipe
	}
	switch {
	case swipe && !o.StepSwipe:
		return ModeInertialSwipe
	case o.StepSwipe:
		return ModeStepSwipe
	case (o.HasTrack && touch) || o.DesktopScrollBar:
		return ModeScrollTrack
	}
	return ModePointer
}

type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseDirection accepts "horizontal", "vertical" or an empty string.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("unknown direction %q", s)
}
