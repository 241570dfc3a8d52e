package game

import (
	"fmt"
	"image"
	"math/rand"
	"slices"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/signal"
	"github.com/iburimskiy/particle-field/internal/sphere"
	"github.com/lucasb-eyer/go-colorful"
)

// nearPlane drops points that reach the camera.
const nearPlane = 0.1

// camera is a perspective camera on the +Z axis looking at the origin,
// rendering into a container rectangle.
type camera struct {
	fov    float32 // vertical, degrees
	z      float32
	rect   signal.Rect
	focal  float32
	aspect float32
}

func newCamera(fovDeg, z float64, rect signal.Rect) camera {
	c := camera{fov: float32(fovDeg), z: float32(z), rect: rect, aspect: 1}
	c.focal = 1 / math32.Tan(c.fov*math32.Pi/360)
	if rect.H > 0 {
		c.aspect = float32(rect.W / rect.H)
	}
	return c
}

// project maps a world point to screen pixels. depth is the distance in
// front of the camera; ok is false for points behind the near plane.
func (c camera) project(v sphere.Vec3) (x, y, depth float32, ok bool) {
	depth = c.z - float32(v.Z)
	if depth <= nearPlane {
		return 0, 0, depth, false
	}
	nx := float32(v.X) * c.focal / (c.aspect * depth)
	ny := float32(v.Y) * c.focal / depth
	cx := float32(c.rect.X + c.rect.W/2)
	cy := float32(c.rect.Y + c.rect.H/2)
	x = cx + nx*float32(c.rect.W)/2
	y = cy - ny*float32(c.rect.H)/2
	return x, y, depth, true
}

// pointRadius is half the point size: the base size scaled by 1.1 and by
// 200 over the depth.
func pointRadius(baseSize, depth float32) float32 {
	return math32.Max(0.5, baseSize*1.1*(200/depth)/2)
}

type projectedPoint struct {
	x, y, r, depth float32
	alpha          float64
}

// SphereView renders one particle sphere inside a container.
type SphereView struct {
	inst config.SphereInstance
	pg   *page
	rng  *rand.Rand

	rect   signal.Rect
	preset config.Sphere
	color  colorful.Color
	engine *sphere.Engine
	active bool

	points []projectedPoint
}

// newSphereView checks the instance against the page. The engine is built
// on first activation.
func newSphereView(inst config.SphereInstance, pg *page, rng *rand.Rand) (*SphereView, error) {
	if _, err := pg.cfg.Container(inst.Container); err != nil {
		return nil, err
	}
	return &SphereView{inst: inst, pg: pg, rng: rng}, nil
}

func (v *SphereView) Name() string { return v.inst.Name }

func (v *SphereView) Tab() string { return v.inst.Tab }

func (v *SphereView) Engine() *sphere.Engine { return v.engine }

func (v *SphereView) viewport() sphere.Viewport {
	fov, z := v.inst.Camera()
	return sphere.Viewport{
		FOV:        fov,
		Distance:   z,
		ContainerW: v.rect.W,
		ContainerH: v.rect.H,
		WindowW:    v.pg.width,
	}
}

// configure reads the container and preset for the current page state.
func (v *SphereView) configure() (sphere.Params, error) {
	c, err := v.pg.cfg.Container(v.inst.Container)
	if err != nil {
		return sphere.Params{}, err
	}
	p, err := v.inst.Params(v.pg.mobile)
	if err != nil {
		return sphere.Params{}, err
	}
	v.rect = v.pg.rect(c)
	v.preset = v.inst.Preset(v.pg.mobile)
	// Params already validated the colour.
	v.color, _ = config.ParseColor(v.preset.Color)
	return p, nil
}

func (v *SphereView) Activate() error {
	if v.engine == nil {
		p, err := v.configure()
		if err != nil {
			return fmt.Errorf("sphere %q: %w", v.inst.Name, err)
		}
		eng, err := sphere.New(p, v.viewport(), v.preset.Smoother(v.pg.tps, 0), v.rng)
		if err != nil {
			return fmt.Errorf("sphere %q: %w", v.inst.Name, err)
		}
		v.engine = eng
		v.points = make([]projectedPoint, 0, p.Dots)
	}
	v.active = true
	return nil
}

func (v *SphereView) Deactivate() { v.active = false }

// Dispose frees the engine. The view can be activated again afterwards.
func (v *SphereView) Dispose() {
	v.active = false
	if v.engine != nil {
		v.engine.Dispose()
		v.engine = nil
	}
	v.points = nil
}

// raw is this frame's drive signal.
func (v *SphereView) raw() float64 {
	if v.inst.Signal == "audio" {
		if tr := v.pg.audio.Current(); tr != nil {
			return tr.Tap.Level(config.AudioLevelWindow)
		}
		return 0
	}
	sp := signal.ScrollProgress{
		TriggerTop:     v.inst.TriggerTop,
		ViewportHeight: v.pg.height,
		AnimationSpeed: v.preset.AnimationSpeed,
	}
	return sp.Progress(v.pg.scrollY)
}

func (v *SphereView) update() {
	if !v.active || v.engine == nil {
		return
	}
	v.engine.Step(v.raw())
}

// resize reapplies the preset for the new window. A change of device class
// swaps the smoother too, keeping its current value.
func (v *SphereView) resize() error {
	if v.engine == nil {
		return nil
	}
	prev := v.preset
	p, err := v.configure()
	if err != nil {
		return err
	}
	if err := v.engine.Resize(p, v.viewport()); err != nil {
		return err
	}
	if prev.Smoothing != v.preset.Smoothing || prev.SmoothingLaw != v.preset.SmoothingLaw {
		v.engine.SetSmoother(v.preset.Smoother(v.pg.tps, 0))
	}
	return nil
}

// project fills v.points back to front.
func (v *SphereView) project() {
	fov, z := v.inst.Camera()
	cam := newCamera(fov, z, v.rect)
	base := float32(v.rect.W * v.preset.PointSizeVW / 100)
	opacity := v.engine.Opacity()

	v.points = v.points[:0]
	for i := range v.engine.Positions() {
		x, y, depth, ok := cam.project(v.engine.Rendered(i))
		if !ok || opacity[i] <= 0 {
			continue
		}
		v.points = append(v.points, projectedPoint{
			x: x, y: y, depth: depth,
			r:     pointRadius(base, depth),
			alpha: opacity[i],
		})
	}
	slices.SortFunc(v.points, func(a, b projectedPoint) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		}
		return 0
	})
}

func (v *SphereView) draw(screen *ebiten.Image) {
	if !v.active || v.engine == nil {
		return
	}
	v.project()
	dst := screen.SubImage(image.Rect(
		int(v.rect.X), int(v.rect.Y),
		int(v.rect.X+v.rect.W), int(v.rect.Y+v.rect.H),
	)).(*ebiten.Image)
	for _, p := range v.points {
		vector.DrawFilledCircle(dst, p.x, p.y, p.r, nrgba(v.color, p.alpha), true)
	}
}

func (v *SphereView) Snapshot() Snapshot {
	s := Snapshot{Name: v.inst.Name, Kind: "sphere", Active: v.active}
	if v.engine == nil {
		return s
	}
	st := v.engine.State()
	s.Raw, s.Smoothed, s.Eased = st.Raw, st.Smoothed, st.Eased
	s.Phase = "rotate"
	if st.Smoothed > v.engine.Params().Threshold {
		s.Phase = "morph"
	}
	return s
}
