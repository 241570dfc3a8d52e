package config

import (
	"fmt"

	"github.com/iburimskiy/particle-field/internal/wave"
	"github.com/lucasb-eyer/go-colorful"
)

// Marker is the companion element that follows the wave center.
type Marker struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
	Color  string  `toml:"color" yaml:"color"`
}

// WaveOverride replaces selected fields on touch devices. Zero values keep
// the base setting.
type WaveOverride struct {
	Direction        string  `toml:"direction" yaml:"direction"`
	Lines            int     `toml:"lines" yaml:"lines"`
	InfluenceRatio   float64 `toml:"influence_ratio" yaml:"influence_ratio"`
	ActivePosition   float64 `toml:"active_position" yaml:"active_position"`
	DesktopScrollBar *bool   `toml:"desktop_scroll_bar" yaml:"desktop_scroll_bar"`
	StepSwipe        *bool   `toml:"step_swipe" yaml:"step_swipe"`
}

// WaveInstance is one line field on the page.
type WaveInstance struct {
	Name      string `toml:"name" yaml:"name"`
	Wrapper   string `toml:"wrapper" yaml:"wrapper"`
	Container string `toml:"container" yaml:"container"`
	Tab       string `toml:"tab" yaml:"tab"`

	Direction      string  `toml:"direction" yaml:"direction"`
	Lines          int     `toml:"lines" yaml:"lines"`
	LinesMobile    int     `toml:"lines_mobile" yaml:"lines_mobile"`
	BaseColor      string  `toml:"base_color" yaml:"base_color"`
	ActiveColor    string  `toml:"active_color" yaml:"active_color"`
	BaseRatio      float64 `toml:"base_ratio" yaml:"base_ratio"`
	WaveRatio      float64 `toml:"wave_ratio" yaml:"wave_ratio"`
	Smoothing      float64 `toml:"smoothing" yaml:"smoothing"`
	InfluenceRatio float64 `toml:"influence_ratio" yaml:"influence_ratio"`
	LineThickness  float64 `toml:"line_thickness" yaml:"line_thickness"`
	ActivePosition float64 `toml:"active_position" yaml:"active_position"`
	SwipeVelocity  float64 `toml:"swipe_velocity" yaml:"swipe_velocity"`

	StepSwipe        bool   `toml:"step_swipe" yaml:"step_swipe"`
	Swipe            *bool  `toml:"swipe" yaml:"swipe"`
	ScrollTrack      string `toml:"scroll_track" yaml:"scroll_track"`
	DesktopScrollBar bool   `toml:"desktop_scroll_bar" yaml:"desktop_scroll_bar"`

	Marker        *Marker       `toml:"marker" yaml:"marker"`
	DynamicColors []string      `toml:"dynamic_colors" yaml:"dynamic_colors"`
	Touch         *WaveOverride `toml:"touch" yaml:"touch"`
}

func (w WaveInstance) HasTrack() bool { return w.ScrollTrack != "" }

// Resolve applies the touch override and the documented defaults.
func (w WaveInstance) Resolve(touch bool) WaveInstance {
	if touch {
		if w.LinesMobile > 0 {
			w.Lines = w.LinesMobile
		}
		if o := w.Touch; o != nil {
			if o.Direction != "" {
				w.Direction = o.Direction
			}
			if o.Lines > 0 {
				w.Lines = o.Lines
			}
			if o.InfluenceRatio > 0 {
				w.InfluenceRatio = o.InfluenceRatio
			}
			if o.ActivePosition > 0 {
				w.ActivePosition = o.ActivePosition
			}
			if o.DesktopScrollBar != nil {
				w.DesktopScrollBar = *o.DesktopScrollBar
			}
			if o.StepSwipe != nil {
				w.StepSwipe = *o.StepSwipe
			}
		}
	}
	if w.Lines == 0 {
		w.Lines = 100
	}
	if w.BaseColor == "" {
		w.BaseColor = "#8D8D8D"
	}
	if w.ActiveColor == "" {
		w.ActiveColor = "#ff661a"
	}
	if w.BaseRatio == 0 {
		w.BaseRatio = 0.1
	}
	if w.WaveRatio == 0 {
		w.WaveRatio = 0.4
	}
	if w.Smoothing == 0 {
		w.Smoothing = 0.1
	}
	if w.InfluenceRatio == 0 {
		w.InfluenceRatio = 0.05
	}
	if w.LineThickness == 0 {
		w.LineThickness = 1
	}
	if w.ActivePosition == 0 {
		w.ActivePosition = 0.5
	}
	if w.SwipeVelocity == 0 {
		w.SwipeVelocity = 0.5
	}
	return w
}

// Params resolves the instance for a device class. hasTrack tells whether
// the referenced scroll track exists on the page.
func (w WaveInstance) Params(touch, hasTrack bool) (wave.Params, error) {
	r := w.Resolve(touch)
	dir, err := wave.ParseDirection(r.Direction)
	if err != nil {
		return wave.Params{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	base, err := ParseColor(r.BaseColor)
	if err != nil {
		return wave.Params{}, err
	}
	active, err := ParseColor(r.ActiveColor)
	if err != nil {
		return wave.Params{}, err
	}
	if _, err := r.Palette(); err != nil {
		return wave.Params{}, err
	}
	if r.Marker != nil && r.Marker.Color != "" {
		if _, err := ParseColor(r.Marker.Color); err != nil {
			return wave.Params{}, err
		}
	}
	p := wave.Params{
		Lines:          r.Lines,
		Direction:      dir,
		BaseColor:      base,
		ActiveColor:    active,
		BaseRatio:      r.BaseRatio,
		WaveRatio:      r.WaveRatio,
		Smoothing:      r.Smoothing,
		InfluenceRatio: r.InfluenceRatio,
		LineThickness:  r.LineThickness,
		ActivePosition: r.ActivePosition,
		SwipeVelocity:  r.SwipeVelocity,
		Mode: wave.ResolveMode(wave.ModeOptions{
			StepSwipe:        r.StepSwipe,
			Swipe:            r.Swipe,
			HasTrack:         hasTrack,
			DesktopScrollBar: r.DesktopScrollBar,
		}, touch),
	}
	if err := p.Validate(); err != nil {
		return wave.Params{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return p, nil
}

// Palette parses the active colours cycled at runtime.
func (w WaveInstance) Palette() ([]colorful.Color, error) {
	out := make([]colorful.Color, 0, len(w.DynamicColors))
	for _, s := range w.DynamicColors {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
