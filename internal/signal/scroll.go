// Package signal turns raw host input into the normalized samples the
// animation engines consume once per frame.
package signal

import "github.com/iburimskiy/particle-field/internal/motion"

// ScrollProgress maps a page scroll offset to [0,1] relative to a trigger
// element: 0 while the trigger is at or below the top edge, 1 once the page
// has scrolled ViewportHeight*AnimationSpeed past it.
type ScrollProgress struct {
	TriggerTop     float64
	ViewportHeight float64
	AnimationSpeed float64
}

func (s ScrollProgress) Progress(scrollY float64) float64 {
	span := s.ViewportHeight * s.AnimationSpeed
	if span <= 0 {
		if scrollY >= s.TriggerTop {
			return 1
		}
		return 0
	}
	return motion.Clamp01((scrollY - s.TriggerTop) / span)
}

// Track is an external scrollable element whose scroll fraction drives a
// wave center.
type Track struct {
	Content  float64 // scrollable content length, px
	Viewport float64 // visible length, px
	pos      float64
}

func (t *Track) Max() float64 {
	if m := t.Content - t.Viewport; m > 0 {
		return m
	}
	return 0
}

// ScrollBy moves the track and clamps it to its range.
func (t *Track) ScrollBy(d float64) {
	t.pos += d
	if t.pos < 0 {
		t.pos = 0
	}
	if m := t.Max(); t.pos > m {
		t.pos = m
	}
}

func (t *Track) Pos() float64 { return t.pos }

// Fraction is pos/max in [0,1]. A track with nothing to scroll reports 0.
func (t *Track) Fraction() float64 {
	m := t.Max()
	if m == 0 {
		return 0
	}
	return t.pos / m
}
