package wave

import (
	"errors"
	"fmt"
	"math"

	"github.com/iburimskiy/particle-field/internal/motion"
	"github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidParams = errors.New("invalid wave parameters")

const (
	// SwipeThreshold is the minimum travel, px, for a step swipe to count.
	SwipeThreshold = 50
	// StepSmoothing is the fixed approach rate of the step-swipe offset.
	StepSmoothing = 0.07
	// StepDivisions splits the field width into swipe steps.
	StepDivisions = 7

	VelocityDecay = 0.95
	VelocityFloor = 0.01
)

type Params struct {
	Lines          int
	Direction      Direction
	Mode           Mode
	BaseColor      colorful.Color
	ActiveColor    colorful.Color
	BaseRatio      float64
	WaveRatio      float64
	Smoothing      float64
	InfluenceRatio float64
	LineThickness  float64
	ActivePosition float64 // fraction of the field where swipe modes pin the wave
	SwipeVelocity  float64
}

func (p Params) Validate() error {
	switch {
	case p.Lines < 2:
		return fmt.Errorf("%w: need at least 2 lines, got %d", ErrInvalidParams, p.Lines)
	case p.InfluenceRatio <= 0:
		return fmt.Errorf("%w: influence ratio must be positive", ErrInvalidParams)
	case p.BaseRatio <= 0:
		return fmt.Errorf("%w: base ratio must be positive", ErrInvalidParams)
	case p.Smoothing <= 0 || p.Smoothing > 1:
		return fmt.Errorf("%w: smoothing %v outside (0, 1]", ErrInvalidParams, p.Smoothing)
	case p.LineThickness < 0:
		return fmt.Errorf("%w: negative line thickness", ErrInvalidParams)
	}
	return nil
}

// Segment is one line of the field.
type Segment struct {
	// InitialPos is relative to the field center. It only changes when a
	// swipe wraps the segment around the belt.
	InitialPos float64
	Pos        float64
	Scale      float64 // multiple of the base size
	Influence  float64
	Color      colorful.Color
}

// Field is a row of evenly spaced lines that bulge and recolor around an
// active center. It is driven by one frame loop and is not safe for
// concurrent use.
type Field struct {
	params        Params
	width, height float64

	totalLength   float64
	spacing       float64
	segmentLength float64
	loopLength    float64

	segments []Segment

	TotalOffset  float64
	TargetOffset float64
	ActiveCenter float64

	pointerTarget  float64
	pointerCurrent float64
	trackFraction  float64

	velocity   float64
	touching   bool
	lastTouch  float64
	startTouch float64
}

// New lays out the segments for a container of the given pixel size.
func New(p Params, width, height float64) (*Field, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: empty container %vx%v", ErrInvalidParams, width, height)
	}
	f := &Field{params: p, width: width, height: height}

	f.totalLength = f.axisLength()
	f.spacing = (f.totalLength - float64(p.Lines)*p.LineThickness) / float64(p.Lines-1)
	if f.spacing < 0 {
		return nil, fmt.Errorf("%w: %d lines of %vpx do not fit %vpx", ErrInvalidParams, p.Lines, p.LineThickness, f.totalLength)
	}
	f.segmentLength = p.LineThickness + f.spacing
	f.loopLength = float64(p.Lines)*f.segmentLength - f.spacing

	f.segments = make([]Segment, p.Lines)
	for i := range f.segments {
		pos := float64(i)*f.segmentLength - f.totalLength/2
		f.segments[i] = Segment{InitialPos: pos, Pos: pos, Scale: 1, Color: p.BaseColor}
	}

	f.pointerTarget = f.totalLength / 2
	f.pointerCurrent = f.pointerTarget
	f.trackFraction = p.ActivePosition
	f.ActiveCenter = f.centerFor()
	return f, nil
}

func (f *Field) axisLength() float64 {
	if f.params.Direction == Vertical {
		return f.height
	}
	return f.width
}

// Influence is the falloff of a segment at distance dist from the center:
// 1 at the center, 0 at reach and beyond. reach must be positive.
func Influence(dist, reach float64) float64 {
	return math.Max(0, 1-math.Abs(dist)/reach)
}

// PointerMove sets the pointer target along the field axis, in pixels from
// the field's start.
func (f *Field) PointerMove(axisPos float64) {
	f.pointerTarget = axisPos
}

// SetTrackFraction maps an external scroll fraction in [0,1] to the center.
func (f *Field) SetTrackFraction(frac float64) {
	f.trackFraction = frac
}

// SetTargetOffset is the public hook for moving a swipe field from outside.
func (f *Field) SetTargetOffset(off float64) {
	f.TargetOffset = off
}

func (f *Field) SetActiveColor(c colorful.Color) {
	f.params.ActiveColor = c
}

// TouchStart begins a single-finger gesture at window coordinates x, y.
func (f *Field) TouchStart(x, y float64) {
	switch f.params.Mode {
	case ModeInertialSwipe:
		f.touching = true
		f.lastTouch = f.swipeAxis(x, y)
		f.velocity = 0
	case ModeStepSwipe:
		f.touching = true
		f.startTouch = x
	}
}

func (f *Field) TouchMove(x, y float64) {
	if f.params.Mode != ModeInertialSwipe || !f.touching {
		return
	}
	cur := f.swipeAxis(x, y)
	delta := cur - f.lastTouch
	if f.params.Direction == Vertical {
		delta = -delta
	}
	d := delta * f.params.SwipeVelocity
	f.TotalOffset += d
	f.velocity = d
	f.lastTouch = cur
}

func (f *Field) TouchEnd(x, y float64) {
	if !f.touching {
		return
	}
	f.touching = false
	if f.params.Mode != ModeStepSwipe {
		return
	}
	delta := x - f.startTouch
	if math.Abs(delta) > SwipeThreshold {
		step := f.width / StepDivisions
		if delta < 0 {
			f.TargetOffset -= step
		} else {
			f.TargetOffset += step
		}
	}
}

// TouchCancel drops the gesture without a step. Inertial motion keeps the
// velocity of the last move.
func (f *Field) TouchCancel() {
	f.touching = false
}

func (f *Field) swipeAxis(x, y float64) float64 {
	if f.params.Direction == Vertical {
		return y
	}
	return x
}

// Velocity is the inertial swipe speed, px per frame.
func (f *Field) Velocity() float64 { return f.velocity }

// Step advances one frame.
func (f *Field) Step() {
	switch f.params.Mode {
	case ModeInertialSwipe:
		if !f.touching {
			f.TotalOffset += f.velocity
			f.velocity *= VelocityDecay
			if math.Abs(f.velocity) < VelocityFloor {
				f.velocity = 0
			}
		}
		f.wrap()
	case ModeStepSwipe:
		f.TotalOffset = motion.Approach(f.TotalOffset, f.TargetOffset, StepSmoothing)
		f.wrap()
	case ModeScrollTrack:
		for i := range f.segments {
			f.segments[i].Pos = f.segments[i].InitialPos + f.TotalOffset
		}
	default:
		f.pointerCurrent = motion.Approach(f.pointerCurrent, f.pointerTarget, f.params.Smoothing)
	}
	f.ActiveCenter = f.centerFor()
	f.update()
}

// wrap keeps every segment on the belt laid out at construction. The belt
// does not follow Resize, so a segment always fits after one shift.
func (f *Field) wrap() {
	half := f.loopLength / 2
	for i := range f.segments {
		s := &f.segments[i]
		for f.loopLength > 0 {
			cur := s.InitialPos + f.TotalOffset
			if cur < -half {
				s.InitialPos += f.loopLength
			} else if cur > half {
				s.InitialPos -= f.loopLength
			} else {
				break
			}
		}
		s.Pos = s.InitialPos + f.TotalOffset
	}
}

func (f *Field) centerFor() float64 {
	switch f.params.Mode {
	case ModeInertialSwipe, ModeStepSwipe:
		return f.axisLength() * f.params.ActivePosition
	case ModeScrollTrack:
		return f.axisLength() * f.trackFraction
	}
	return f.pointerCurrent
}

func (f *Field) update() {
	p := f.params
	reach := f.totalLength * p.InfluenceRatio
	half := f.axisLength() / 2
	for i := range f.segments {
		s := &f.segments[i]
		inf := Influence(s.Pos+half-f.ActiveCenter, reach)
		target := p.BaseRatio + (p.WaveRatio-p.BaseRatio)*inf

		s.Influence = inf
		s.Scale = motion.Approach(s.Scale, target/p.BaseRatio, p.Smoothing)
		s.Color = s.Color.BlendRgb(p.BaseColor.BlendRgb(p.ActiveColor, inf), p.Smoothing)
	}
}

// Resize updates the container size. Spacing stays as laid out at
// construction; only the orthographic frame and track center follow.
func (f *Field) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	f.width, f.height = width, height
	f.ActiveCenter = f.centerFor()
}

func (f *Field) Segments() []Segment { return f.segments }

func (f *Field) Params() Params { return f.params }

func (f *Field) Size() (w, h float64) { return f.width, f.height }

func (f *Field) Spacing() float64 { return f.spacing }

func (f *Field) LoopLength() float64 { return f.loopLength }

// Rect is segment i's rectangle in container pixels, origin top-left.
func (f *Field) Rect(i int) (x, y, w, h float64) {
	s := f.segments[i]
	p := f.params
	if p.Direction == Vertical {
		w = p.BaseRatio * f.width * s.Scale
		h = p.LineThickness
		cx := p.BaseRatio * f.width / 2
		cy := f.height/2 - s.Pos
		return cx - w/2, cy - h/2, w, h
	}
	w = p.LineThickness
	h = p.BaseRatio * f.height * s.Scale
	cx := s.Pos + f.width/2
	return cx - w/2, f.height/2 - h/2, w, h
}

// MarkerLeft places a companion element of blockW pixels under the wave,
// clamped inside a wrapper of wrapperW pixels. Vertical fields have no
// marker.
func (f *Field) MarkerLeft(wrapperW, blockW float64) (float64, bool) {
	if f.params.Direction == Vertical {
		return 0, false
	}
	var center float64
	switch f.params.Mode {
	case ModeScrollTrack:
		center = f.width * f.trackFraction
	case ModeInertialSwipe, ModeStepSwipe:
		center = wrapperW * f.params.ActivePosition
	default:
		center = f.pointerCurrent
	}
	left := center - blockW/2
	return math.Max(0, math.Min(wrapperW-blockW, left)), true
}

// Dispose drops the segment buffer.
func (f *Field) Dispose() {
	f.segments = nil
}
