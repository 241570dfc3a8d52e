package config

import (
	"fmt"

	"github.com/iburimskiy/particle-field/internal/motion"
	"github.com/iburimskiy/particle-field/internal/sphere"
)

// Sphere is one device-class preset of the particle sphere.
type Sphere struct {
	Dots           int     `toml:"dots" yaml:"dots"`
	GridDots       int     `toml:"grid_dots" yaml:"grid_dots"`
	GridCols       int     `toml:"grid_cols" yaml:"grid_cols"`
	GridRows       int     `toml:"grid_rows" yaml:"grid_rows"`
	Radius         float64 `toml:"radius" yaml:"radius"`
	AnimationSpeed float64 `toml:"animation_speed" yaml:"animation_speed"`
	RotationSpeed  float64 `toml:"rotation_speed" yaml:"rotation_speed"`
	Color          string  `toml:"color" yaml:"color"`
	PaddingXVW     float64 `toml:"padding_x_vw" yaml:"padding_x_vw"`
	PaddingYVW     float64 `toml:"padding_y_vw" yaml:"padding_y_vw"`
	MaxScale       float64 `toml:"max_scale" yaml:"max_scale"`
	Smoothing      float64 `toml:"smoothing" yaml:"smoothing"`
	PointSizeVW    float64 `toml:"point_size_vw" yaml:"point_size_vw"`
	Threshold      float64 `toml:"threshold" yaml:"threshold"`
	ScatterDepth   float64 `toml:"scatter_depth" yaml:"scatter_depth"`
	Easing         string  `toml:"easing" yaml:"easing"`

	// SmoothingLaw is "exponential" (default, per frame) or "spring".
	SmoothingLaw    string  `toml:"smoothing_law" yaml:"smoothing_law"`
	SpringFrequency float64 `toml:"spring_frequency" yaml:"spring_frequency"`
	SpringDamping   float64 `toml:"spring_damping" yaml:"spring_damping"`
}

// SphereInstance places a sphere on the page.
type SphereInstance struct {
	Name      string `toml:"name" yaml:"name"`
	Container string `toml:"container" yaml:"container"`
	Tab       string `toml:"tab" yaml:"tab"`
	// Signal is "scroll" (default) or "audio".
	Signal     string  `toml:"signal" yaml:"signal"`
	TriggerTop float64 `toml:"trigger_top" yaml:"trigger_top"`
	FOV        float64 `toml:"fov" yaml:"fov"`
	CameraZ    float64 `toml:"camera_z" yaml:"camera_z"`
	Desktop    Sphere  `toml:"desktop" yaml:"desktop"`
	Mobile     Sphere  `toml:"mobile" yaml:"mobile"`
}

func (s SphereInstance) Preset(mobile bool) Sphere {
	if mobile {
		return s.Mobile
	}
	return s.Desktop
}

func (s SphereInstance) Camera() (fov, z float64) {
	fov, z = s.FOV, s.CameraZ
	if fov == 0 {
		fov = DefaultFOV
	}
	if z == 0 {
		z = DefaultCameraZ
	}
	return fov, z
}

// Params converts the preset for a device class into engine parameters.
func (s SphereInstance) Params(mobile bool) (sphere.Params, error) {
	c := s.Preset(mobile)
	switch s.Signal {
	case "", "scroll", "audio":
	default:
		return sphere.Params{}, fmt.Errorf("%w: signal %q", ErrInvalidConfig, s.Signal)
	}
	if c.Smoothing <= 0 || c.Smoothing > 1 {
		return sphere.Params{}, fmt.Errorf("%w: smoothing %v outside (0, 1]", ErrInvalidConfig, c.Smoothing)
	}
	switch c.SmoothingLaw {
	case "", "exponential", "spring":
	default:
		return sphere.Params{}, fmt.Errorf("%w: smoothing law %q", ErrInvalidConfig, c.SmoothingLaw)
	}
	if _, err := ParseColor(c.Color); err != nil {
		return sphere.Params{}, err
	}
	ease, err := motion.LookupEasing(c.Easing)
	if err != nil {
		return sphere.Params{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	threshold := c.Threshold
	if threshold == 0 {
		threshold = sphere.DefaultThreshold
	}
	p := sphere.Params{
		Dots: c.Dots,
		Grid: sphere.Grid{
			Count:  c.GridDots,
			Cols:   c.GridCols,
			Rows:   c.GridRows,
			PadXVW: c.PaddingXVW,
			PadYVW: c.PaddingYVW,
		},
		Radius:        c.Radius,
		MaxScale:      c.MaxScale,
		RotationSpeed: c.RotationSpeed,
		Threshold:     threshold,
		ScatterDepth:  c.ScatterDepth,
		Easing:        ease,
	}
	if err := p.Validate(); err != nil {
		return sphere.Params{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return p, nil
}

// Smoother builds the configured smoother starting at initial.
func (c Sphere) Smoother(tps int, initial float64) motion.Smoother {
	if c.SmoothingLaw == "spring" {
		freq, damp := c.SpringFrequency, c.SpringDamping
		if freq == 0 {
			freq = 4
		}
		if damp == 0 {
			damp = 1
		}
		return motion.NewSpring(tps, freq, damp, initial)
	}
	return motion.NewExponential(c.Smoothing, initial)
}
