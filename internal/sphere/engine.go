package sphere

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/iburimskiy/particle-field/internal/motion"
)

var ErrInvalidParams = errors.New("invalid sphere parameters")

// DefaultThreshold is the smoothed-signal value where the sphere stops
// rotating and starts morphing into the grid.
const DefaultThreshold = 0.3

// DefaultScatterDepth is the z extent of the scatter volume, world units.
const DefaultScatterDepth = 1000

// Params is the engine's view of one configuration snapshot.
type Params struct {
	Dots          int
	Grid          Grid
	Radius        float64
	MaxScale      float64
	RotationSpeed float64 // degrees per frame at rest
	Threshold     float64
	ScatterDepth  float64
	Easing        motion.Easing
}

func (p Params) Validate() error {
	switch {
	case p.Dots < 1:
		return fmt.Errorf("%w: dots must be >= 1, got %d", ErrInvalidParams, p.Dots)
	case p.Grid.Count < 0 || p.Grid.Count > p.Dots:
		return fmt.Errorf("%w: grid count %d outside [0, %d]", ErrInvalidParams, p.Grid.Count, p.Dots)
	case p.Grid.Cols < 1 || p.Grid.Rows < 1:
		return fmt.Errorf("%w: grid needs at least one row and column", ErrInvalidParams)
	case p.Grid.Count > p.Grid.Cols*p.Grid.Rows:
		return fmt.Errorf("%w: %d grid dots do not fit %dx%d", ErrInvalidParams, p.Grid.Count, p.Grid.Cols, p.Grid.Rows)
	case p.Radius <= 0:
		return fmt.Errorf("%w: radius must be positive", ErrInvalidParams)
	case p.Threshold <= 0 || p.Threshold >= 1:
		return fmt.Errorf("%w: threshold %v outside (0, 1)", ErrInvalidParams, p.Threshold)
	}
	return nil
}

// ProgressState is the per-frame drive state of the blend stage.
type ProgressState struct {
	Raw        float64
	Smoothed   float64
	Transition float64 // progress inside the current phase, linear
	Eased      float64 // morph progress after easing; 0 while rotating

	// StartSnapshot freezes Current when the morph begins. It is nil while
	// the sphere is in the rotate phase.
	StartSnapshot PointSet
	StartScale    float64
	StartRotation float64 // degrees
}

// Engine owns every buffer of one sphere instance. It is not safe for
// concurrent use; a single frame loop drives it.
type Engine struct {
	params   Params
	view     Viewport
	smoother motion.Smoother
	rng      *rand.Rand

	sphere  PointSet
	plane   PointSet
	random  PointSet
	current PointSet
	opacity []float64

	state    ProgressState
	rotation float64 // degrees, kept in (-360, 360)
	objRot   float64 // degrees applied by the renderer this frame
	objScale float64
}

// New builds an engine and all of its layouts. rng feeds the scatter
// layout; pass nil for a time-seeded source.
func New(p Params, view Viewport, smoother motion.Smoother, rng *rand.Rand) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Easing == nil {
		p.Easing = motion.EaseInOutCubic
	}
	if p.ScatterDepth == 0 {
		p.ScatterDepth = DefaultScatterDepth
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	e := &Engine{
		params:   p,
		view:     view,
		smoother: smoother,
		rng:      rng,
		objScale: 1,
	}
	e.state.StartScale = 1
	e.alloc()
	e.relayout()
	return e, nil
}

func (e *Engine) alloc() {
	n := e.params.Dots
	e.sphere = SphereLayout(n, e.params.Radius)
	e.current = e.sphere.Scale(e.state.StartScale)
	e.opacity = make([]float64, n)
	for i := range e.opacity {
		e.opacity[i] = 1
	}
	e.state.StartSnapshot = nil
}

func (e *Engine) relayout() {
	e.plane = GridLayout(e.params.Dots, e.params.Grid, e.view)
	e.random = RandomLayout(e.plane, e.params.Grid.Count, e.view, e.params.ScatterDepth, e.rng)
}

// Resize swaps in a new viewport and configuration snapshot. Grid and scatter
// targets are always regenerated; the sphere and every per-dot buffer are
// rebuilt only when the dot count or radius changed.
func (e *Engine) Resize(p Params, view Viewport) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Easing == nil {
		p.Easing = motion.EaseInOutCubic
	}
	if p.ScatterDepth == 0 {
		p.ScatterDepth = DefaultScatterDepth
	}
	rebuild := p.Dots != e.params.Dots || p.Radius != e.params.Radius
	e.params = p
	e.view = view
	if rebuild {
		e.alloc()
	}
	e.relayout()
	return nil
}

// SetSmoother replaces the smoother, carrying over its current value.
func (e *Engine) SetSmoother(s motion.Smoother) {
	s.Reset(e.smoother.Value())
	e.smoother = s
}

// Step advances one frame with the given raw drive signal in [0,1].
func (e *Engine) Step(raw float64) {
	e.state.Raw = raw
	s := e.smoother.Step(raw)
	e.state.Smoothed = s
	if s <= e.params.Threshold {
		e.stepRotate(s)
	} else {
		e.stepMorph(s)
	}
}

func (e *Engine) stepRotate(s float64) {
	p := s / e.params.Threshold
	e.rotation = math.Mod(e.rotation+e.params.RotationSpeed*(1-math.Sin(p*math.Pi/2)), 360)

	scale := 1 + (e.params.MaxScale-1)*p
	for i, v := range e.sphere {
		e.current[i] = v.Scale(scale)
		e.opacity[i] = 1
	}

	e.state.Transition = p
	e.state.Eased = 0
	e.state.StartSnapshot = nil
	e.state.StartScale = scale
	e.state.StartRotation = e.rotation
	e.objRot = e.rotation
	e.objScale = scale
}

func (e *Engine) stepMorph(s float64) {
	lin := (s - e.params.Threshold) / (1 - e.params.Threshold)
	p := motion.Clamp01(e.params.Easing(lin))

	if e.state.StartSnapshot == nil {
		e.state.StartSnapshot = e.current.Clone()
	}

	k := e.params.Grid.Count
	start := e.state.StartSnapshot
	for i := range e.current {
		if i < k {
			e.current[i] = Lerp(start[i], e.plane[i], p)
			e.opacity[i] = 1
		} else {
			e.current[i] = Lerp(start[i], e.random[i], p)
			e.opacity[i] = 1 - p
		}
	}

	e.state.Transition = lin
	e.state.Eased = p
	// Unwind along the shorter arc to the nearest full turn.
	home := 360 * math.Round(e.state.StartRotation/360)
	e.objRot = math.Mod(motion.Lerp(e.state.StartRotation, home, p), 360)
	e.objScale = motion.Lerp(e.state.StartScale, 1, p)
}

// Positions is the live model-space state, mutated every frame.
func (e *Engine) Positions() PointSet { return e.current }

func (e *Engine) Opacity() []float64 { return e.opacity }

func (e *Engine) SpherePositions() PointSet { return e.sphere }

func (e *Engine) PlanePositions() PointSet { return e.plane }

func (e *Engine) RandomPositions() PointSet { return e.random }

func (e *Engine) State() ProgressState { return e.state }

func (e *Engine) Params() Params { return e.params }

func (e *Engine) Viewport() Viewport { return e.view }

// Transform returns the object rotation about Y in radians and the uniform
// object scale the renderer applies on top of Positions.
func (e *Engine) Transform() (rotY, scale float64) {
	return e.objRot * math.Pi / 180, e.objScale
}

// Rendered returns where dot i ends up after the object transform.
func (e *Engine) Rendered(i int) Vec3 {
	rot, scale := e.Transform()
	return RotateY(e.current[i], rot).Scale(scale)
}

// RotateY rotates v about the Y axis by rad radians.
func RotateY(v Vec3, rad float64) Vec3 {
	sin, cos := math.Sincos(rad)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// Dispose drops every buffer. The engine must not be used afterwards.
func (e *Engine) Dispose() {
	e.sphere, e.plane, e.random, e.current = nil, nil, nil, nil
	e.opacity = nil
	e.state.StartSnapshot = nil
}
