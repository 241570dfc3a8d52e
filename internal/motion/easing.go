package motion

import (
	"fmt"
	"math"
)

// Easing maps linear progress t in [0,1] onto a curve with f(0)=0 and f(1)=1.
type Easing func(t float64) float64

func EaseLinear(t float64) float64 { return t }

// EaseInOutCubic is slow at both ends, fast in the middle.
//
//	t < 0.5:  4t³
//	t >= 0.5: 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

var easings = map[string]Easing{
	"linear":         EaseLinear,
	"in-out-cubic":   EaseInOutCubic,
	"in-out-quad":    EaseInOutQuad,
	"in-out-sine":    EaseInOutSine,
	"":               EaseInOutCubic,
	"ease-in-out":    EaseInOutCubic,
	"easeInOutCubic": EaseInOutCubic,
}

// LookupEasing returns the easing registered under name. An empty name
// selects the in-out cubic curve.
func LookupEasing(name string) (Easing, error) {
	e, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return e, nil
}

// Lerp interpolates between a and b. t=0 gives a, t=1 gives b.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
