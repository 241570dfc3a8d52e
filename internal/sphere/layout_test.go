package sphere

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func desktopView() Viewport {
	return Viewport{FOV: 75, Distance: 500, ContainerW: 1280, ContainerH: 720, WindowW: 1280}
}

func TestSphereLayoutDeterministic(t *testing.T) {
	a := SphereLayout(400, 200)
	b := SphereLayout(400, 200)
	assert.Equal(t, a, b)
	assert.Len(t, a, 400)
}

func TestSphereLayoutOnSurfaceAndSpread(t *testing.T) {
	for _, n := range []int{1, 2, 17, 200, 400} {
		pts := SphereLayout(n, 150)
		assert.Len(t, pts, n)
		for _, p := range pts {
			r := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
			assert.InDelta(t, 150, r, 1e-9)
		}
		for i := range pts {
			for j := i + 1; j < len(pts); j++ {
				d := math.Hypot(math.Hypot(pts[i].X-pts[j].X, pts[i].Y-pts[j].Y), pts[i].Z-pts[j].Z)
				assert.Greater(t, d, 1e-6, "points %d and %d coincide (n=%d)", i, j, n)
			}
		}
	}
}

func TestSphereLayoutEmpty(t *testing.T) {
	assert.Empty(t, SphereLayout(0, 10))
}

func TestViewportVisibleArea(t *testing.T) {
	v := Viewport{FOV: 90, Distance: 100, ContainerW: 200, ContainerH: 100, WindowW: 200}
	assert.InDelta(t, 200, v.VisibleHeight(), 1e-9)
	assert.InDelta(t, 400, v.VisibleWidth(), 1e-9)

	// 10vw of a 200px window is 20px, at 2 world units per px.
	px, py := v.PaddingWorld(10, 5)
	assert.InDelta(t, 40, px, 1e-9)
	assert.InDelta(t, 20, py, 1e-9)
}

func TestGridLayout(t *testing.T) {
	v := desktopView()
	g := Grid{Count: 91, Cols: 13, Rows: 7, PadXVW: 1, PadYVW: 3}
	pts := GridLayout(400, g, v)
	assert.Len(t, pts, 400)

	padX, padY := v.PaddingWorld(1, 3)
	halfW := v.VisibleWidth()/2 - padX
	halfH := v.VisibleHeight()/2 - padY

	assert.InDelta(t, -halfW, pts[0].X, 1e-9)
	assert.InDelta(t, -halfH, pts[0].Y, 1e-9)
	assert.InDelta(t, halfW, pts[12].X, 1e-9)
	assert.InDelta(t, halfH, pts[90].Y, 1e-9)
	assert.InDelta(t, 0, pts[45].X, 1e-9) // middle of the middle row
	assert.InDelta(t, 0, pts[45].Y, 1e-9)

	for i, p := range pts {
		assert.Zero(t, p.Z)
		if i >= 91 {
			assert.Equal(t, Vec3{}, p)
		}
	}
}

func TestGridLayoutSingleColumn(t *testing.T) {
	pts := GridLayout(3, Grid{Count: 3, Cols: 1, Rows: 3}, desktopView())
	for _, p := range pts {
		assert.False(t, math.IsNaN(p.X))
		assert.Zero(t, p.X)
	}
}

func TestRandomLayout(t *testing.T) {
	v := desktopView()
	grid := GridLayout(400, Grid{Count: 91, Cols: 13, Rows: 7}, v)
	pts := RandomLayout(grid, 91, v, 1000, rand.New(rand.NewSource(7)))

	assert.Equal(t, grid[:91], pts[:91])
	w, h := v.VisibleWidth(), v.VisibleHeight()
	for _, p := range pts[91:] {
		assert.LessOrEqual(t, math.Abs(p.X), w/2)
		assert.LessOrEqual(t, math.Abs(p.Y), h/2)
		assert.LessOrEqual(t, math.Abs(p.Z), 500.0)
	}

	again := RandomLayout(grid, 91, v, 1000, rand.New(rand.NewSource(8)))
	assert.NotEqual(t, pts[91:], again[91:])
}
