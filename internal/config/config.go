// Package config holds the animation presets and the page description the
// host builds its instances from. Values are immutable snapshots: a resize or
// a reload swaps a whole snapshot, never a field.
package config

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrMissingElement = errors.New("missing element")
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "particle-field - wheel: scroll, Tab: next tab, O: audio, F1: debug, Esc/Q: quit"

	TicksPerSecond   = 60
	MobileBreakpoint = 768
	PageHeight       = 4000
	AudioRingSize    = 8192
	AudioLevelWindow = 2048

	DefaultFOV     = 75
	DefaultCameraZ = 500
)

// Window describes the host window and the virtual page behind it.
type Window struct {
	Width            int     `toml:"width" yaml:"width"`
	Height           int     `toml:"height" yaml:"height"`
	Title            string  `toml:"title" yaml:"title"`
	PageHeight       float64 `toml:"page_height" yaml:"page_height"`
	MobileBreakpoint float64 `toml:"mobile_breakpoint" yaml:"mobile_breakpoint"`
	// Device is "auto", "touch" or "pointer".
	Device string `toml:"device" yaml:"device"`
	TPS    int    `toml:"tps" yaml:"tps"`
}

// Container is a named rectangle, in fractions of the window, standing in
// for a page element.
type Container struct {
	ID string  `toml:"id" yaml:"id"`
	X  float64 `toml:"x" yaml:"x"`
	Y  float64 `toml:"y" yaml:"y"`
	W  float64 `toml:"w" yaml:"w"`
	H  float64 `toml:"h" yaml:"h"`
}

// Track is a scrollable strip laid over a container. Wheel input over the
// container scrolls it instead of the page.
type Track struct {
	ID        string  `toml:"id" yaml:"id"`
	Container string  `toml:"container" yaml:"container"`
	Content   float64 `toml:"content" yaml:"content"`
	Vertical  bool    `toml:"vertical" yaml:"vertical"`
}

type File struct {
	Window     Window           `toml:"window" yaml:"window"`
	Containers []Container      `toml:"containers" yaml:"containers"`
	Tracks     []Track          `toml:"tracks" yaml:"tracks"`
	Spheres    []SphereInstance `toml:"spheres" yaml:"spheres"`
	Waves      []WaveInstance   `toml:"waves" yaml:"waves"`
}

func (f *File) Container(id string) (Container, error) {
	for _, c := range f.Containers {
		if c.ID == id {
			return c, nil
		}
	}
	return Container{}, fmt.Errorf("%w: container %q", ErrMissingElement, id)
}

func (f *File) Track(id string) (Track, error) {
	for _, t := range f.Tracks {
		if t.ID == id {
			return t, nil
		}
	}
	return Track{}, fmt.Errorf("%w: scroll track %q", ErrMissingElement, id)
}

// Tabs lists tab names in first-seen order. Instances without a tab are
// always active and not listed.
func (f *File) Tabs() []string {
	var tabs []string
	seen := map[string]bool{}
	add := func(t string) {
		if t != "" && !seen[t] {
			seen[t] = true
			tabs = append(tabs, t)
		}
	}
	for _, s := range f.Spheres {
		add(s.Tab)
	}
	for _, w := range f.Waves {
		add(w.Tab)
	}
	return tabs
}

// IsMobile reports whether a window width selects the mobile presets.
func (w Window) IsMobile(width float64) bool {
	bp := w.MobileBreakpoint
	if bp == 0 {
		bp = MobileBreakpoint
	}
	return width < bp
}

// Validate checks every instance against both device classes, so a file
// that loads is valid on any window size.
func (f *File) Validate() error {
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, f.Window.Width, f.Window.Height)
	}
	switch f.Window.Device {
	case "", "auto", "touch", "pointer":
	default:
		return fmt.Errorf("%w: device %q", ErrInvalidConfig, f.Window.Device)
	}
	for _, c := range f.Containers {
		if c.W <= 0 || c.H <= 0 {
			return fmt.Errorf("%w: container %q has no area", ErrInvalidConfig, c.ID)
		}
	}
	for _, s := range f.Spheres {
		for _, mobile := range []bool{false, true} {
			if _, err := s.Params(mobile); err != nil {
				return fmt.Errorf("sphere %q: %w", s.Name, err)
			}
		}
	}
	for _, w := range f.Waves {
		for _, touch := range []bool{false, true} {
			if _, err := w.Params(touch, w.HasTrack()); err != nil {
				return fmt.Errorf("wave %q: %w", w.Name, err)
			}
		}
	}
	return nil
}

// ParseColor accepts "#rgb" and "#rrggbb".
func ParseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: colour %q", ErrInvalidConfig, s)
	}
	return c, nil
}
