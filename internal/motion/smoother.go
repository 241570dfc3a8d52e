package motion

import "github.com/charmbracelet/harmonica"

// Smoother turns a raw, possibly jumpy per-frame signal into a smoothed one.
// Step is called exactly once per animation frame.
type Smoother interface {
	Step(raw float64) float64
	Value() float64
	Reset(v float64)
}

// Exponential is a first-order low-pass filter applied once per frame:
//
//	next = prev + (raw - prev) * Alpha
//
// The step is frame-count based, not time based: at a lower frame rate the
// value converges over the same number of frames, not the same duration.
type Exponential struct {
	Alpha float64
	value float64
}

func NewExponential(alpha, initial float64) *Exponential {
	return &Exponential{Alpha: alpha, value: initial}
}

func (e *Exponential) Step(raw float64) float64 {
	e.value = Approach(e.value, raw, e.Alpha)
	return e.value
}

func (e *Exponential) Value() float64 { return e.value }

func (e *Exponential) Reset(v float64) { e.value = v }

// Approach moves cur toward target by the fraction alpha.
func Approach(cur, target, alpha float64) float64 {
	return cur + (target-cur)*alpha
}

// Spring smooths with a damped harmonic oscillator. Unlike Exponential it is
// normalised to the tick rate, so motion feel stays the same if the frame
// rate changes.
type Spring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewSpring builds a spring smoother for the given tick rate. A damping of 1
// is critically damped (no overshoot).
func NewSpring(tps int, frequency, damping, initial float64) *Spring {
	return &Spring{
		spring: harmonica.NewSpring(harmonica.FPS(tps), frequency, damping),
		pos:    initial,
	}
}

func (s *Spring) Step(raw float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, raw)
	return s.pos
}

func (s *Spring) Value() float64 { return s.pos }

func (s *Spring) Reset(v float64) {
	s.pos = v
	s.vel = 0
}
