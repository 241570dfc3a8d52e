package sphere

import (
	"math"
	"math/rand"
)

// Vec3 is a point in world space.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Lerp interpolates between a and b. t=0 gives a, t=1 gives b.
func Lerp(a, b Vec3, t float64) Vec3 {
	u := 1 - t
	return Vec3{a.X*u + b.X*t, a.Y*u + b.Y*t, a.Z*u + b.Z*t}
}

// PointSet is a fixed-length ordered set of points. Index i refers to the
// same logical dot across every set owned by one engine.
type PointSet []Vec3

func (p PointSet) Scale(s float64) PointSet {
	out := make(PointSet, len(p))
	for i, v := range p {
		out[i] = v.Scale(s)
	}
	return out
}

func (p PointSet) Clone() PointSet {
	out := make(PointSet, len(p))
	copy(out, p)
	return out
}

// Viewport describes the perspective camera and the container the dots are
// rendered into. It converts pixel-space settings into world units.
type Viewport struct {
	FOV        float64 // vertical field of view, degrees
	Distance   float64 // camera distance from the origin along z
	ContainerW float64 // px
	ContainerH float64 // px
	WindowW    float64 // px, basis for vw units
}

func (v Viewport) Aspect() float64 {
	if v.ContainerH == 0 {
		return 1
	}
	return v.ContainerW / v.ContainerH
}

// VisibleHeight is the world-space height visible at the origin plane.
func (v Viewport) VisibleHeight() float64 {
	return 2 * v.Distance * math.Tan(v.FOV*math.Pi/180/2)
}

func (v Viewport) VisibleWidth() float64 {
	return v.VisibleHeight() * v.Aspect()
}

// PaddingWorld converts paddings given in vw into world units on each axis.
func (v Viewport) PaddingWorld(padXVW, padYVW float64) (float64, float64) {
	padXPx := v.WindowW * padXVW / 100
	padYPx := v.WindowW * padYVW / 100

	var perPxX, perPxY float64
	if v.ContainerW > 0 {
		perPxX = v.VisibleWidth() / v.ContainerW
	}
	if v.ContainerH > 0 {
		perPxY = v.VisibleHeight() / v.ContainerH
	}
	return padXPx * perPxX, padYPx * perPxY
}

// SphereLayout spreads n points near-uniformly over a sphere of the given
// radius. The distribution is deterministic.
func SphereLayout(n int, radius float64) PointSet {
	out := make(PointSet, n)
	if n == 0 {
		return out
	}
	turns := math.Sqrt(float64(n) * math.Pi)
	for i := range out {
		phi := math.Acos(-1 + 2*float64(i)/float64(n))
		theta := turns * phi
		out[i] = Vec3{
			X: radius * math.Cos(theta) * math.Sin(phi),
			Y: radius * math.Sin(theta) * math.Sin(phi),
			Z: radius * math.Cos(phi),
		}
	}
	return out
}

// Grid describes the row-major grid the first K dots settle onto.
type Grid struct {
	Count  int // dots on the grid, K
	Cols   int
	Rows   int
	PadXVW float64
	PadYVW float64
}

// GridLayout places the first g.Count of n points on a centred grid that
// fills the visible area minus padding. The rest collapse to the origin.
func GridLayout(n int, g Grid, view Viewport) PointSet {
	out := make(PointSet, n)
	padX, padY := view.PaddingWorld(g.PadXVW, g.PadYVW)

	var spacingX, spacingY float64
	if g.Cols > 1 {
		spacingX = (view.VisibleWidth() - 2*padX) / float64(g.Cols-1)
	}
	if g.Rows > 1 {
		spacingY = (view.VisibleHeight() - 2*padY) / float64(g.Rows-1)
	}
	offsetX := spacingX * float64(g.Cols-1) / 2
	offsetY := spacingY * float64(g.Rows-1) / 2

	for i := 0; i < n && i < g.Count; i++ {
		row := i / g.Cols
		col := i % g.Cols
		out[i] = Vec3{
			X: float64(col)*spacingX - offsetX,
			Y: float64(row)*spacingY - offsetY,
		}
	}
	return out
}

// RandomLayout copies the first k grid points and scatters the rest
// uniformly through the visible volume, depth units deep along z.
func RandomLayout(grid PointSet, k int, view Viewport, depth float64, rng *rand.Rand) PointSet {
	out := make(PointSet, len(grid))
	w, h := view.VisibleWidth(), view.VisibleHeight()
	for i := range out {
		if i < k {
			out[i] = grid[i]
			continue
		}
		out[i] = Vec3{
			X: (rng.Float64() - 0.5) * w,
			Y: (rng.Float64() - 0.5) * h,
			Z: (rng.Float64() - 0.5) * depth,
		}
	}
	return out
}
