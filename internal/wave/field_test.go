package wave

import (
	"math"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Params {
	base, _ := colorful.Hex("#8d8d8d")
	active, _ := colorful.Hex("#ff661a")
	return Params{
		Lines:          10,
		Mode:           ModePointer,
		BaseColor:      base,
		ActiveColor:    active,
		BaseRatio:      0.1,
		WaveRatio:      0.4,
		Smoothing:      0.1,
		InfluenceRatio: 0.2,
		LineThickness:  1,
		ActivePosition: 0.5,
		SwipeVelocity:  0.5,
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"one line", func(p *Params) { p.Lines = 1 }},
		{"zero influence", func(p *Params) { p.InfluenceRatio = 0 }},
		{"zero base ratio", func(p *Params) { p.BaseRatio = 0 }},
		{"zero smoothing", func(p *Params) { p.Smoothing = 0 }},
		{"smoothing above one", func(p *Params) { p.Smoothing = 1.5 }},
		{"negative thickness", func(p *Params) { p.LineThickness = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			tt.mutate(&p)
			_, err := New(p, 100, 50)
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}

	_, err := New(testParams(), 0, 50)
	assert.ErrorIs(t, err, ErrInvalidParams)

	crowded := testParams()
	crowded.LineThickness = 20
	_, err = New(crowded, 100, 50)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestLayout(t *testing.T) {
	f, err := New(testParams(), 100, 50)
	require.NoError(t, err)

	assert.InDelta(t, 10, f.Spacing(), 1e-12)
	assert.InDelta(t, 100, f.LoopLength(), 1e-12)
	segs := f.Segments()
	require.Len(t, segs, 10)
	for i, s := range segs {
		assert.InDelta(t, float64(i)*11-50, s.InitialPos, 1e-12)
	}
}

func TestInfluenceFalloff(t *testing.T) {
	reach := 20.0
	assert.Equal(t, 1.0, Influence(0, reach))
	assert.Equal(t, 0.0, Influence(reach, reach))
	assert.Equal(t, 0.0, Influence(-reach*3, reach))

	prev := 1.0
	for d := 0.5; d < reach; d += 0.5 {
		v := Influence(d, reach)
		assert.Less(t, v, prev)
		assert.Equal(t, v, Influence(-d, reach))
		prev = v
	}
}

func TestCenterScenario(t *testing.T) {
	p := testParams()
	p.Lines = 11
	p.LineThickness = 0
	f, err := New(p, 100, 50)
	require.NoError(t, err)

	f.Step()
	assert.Equal(t, 50.0, f.ActiveCenter)
	segs := f.Segments()
	assert.Equal(t, 1.0, segs[5].Influence)
	assert.Equal(t, 0.0, segs[0].Influence)
	assert.Equal(t, 0.0, segs[10].Influence)

	// Scale eases toward waveRatio/baseRatio instead of snapping.
	assert.InDelta(t, 1+(4-1)*0.1, segs[5].Scale, 1e-9)
	for i := 0; i < 300; i++ {
		f.Step()
	}
	assert.InDelta(t, 4, f.Segments()[5].Scale, 1e-6)
	assert.InDelta(t, 1, f.Segments()[0].Scale, 1e-6)

	r, g, b := f.Segments()[5].Color.RGB255()
	assert.Equal(t, [3]uint8{0xff, 0x66, 0x1a}, [3]uint8{r, g, b})
}

func TestPointerModeSmoothing(t *testing.T) {
	f, err := New(testParams(), 100, 50)
	require.NoError(t, err)
	f.PointerMove(0)
	f.Step()
	assert.InDelta(t, 45, f.ActiveCenter, 1e-9)
	f.Step()
	assert.InDelta(t, 40.5, f.ActiveCenter, 1e-9)
}

func TestInertialDecay(t *testing.T) {
	p := testParams()
	p.Mode = ModeInertialSwipe
	f, err := New(p, 100, 50)
	require.NoError(t, err)

	f.TouchStart(10, 0)
	f.TouchMove(30, 0)
	assert.InDelta(t, 10, f.TotalOffset, 1e-12)
	f.TouchEnd(30, 0)

	prev := math.Abs(f.Velocity())
	require.Greater(t, prev, 0.0)
	frames := 0
	for f.Velocity() != 0 {
		f.Step()
		frames++
		v := math.Abs(f.Velocity())
		assert.Less(t, v, prev)
		prev = v
		require.Less(t, frames, 500, "velocity never settled")
	}
	// 10 * 0.95^n < 0.01 needs n = 135.
	assert.Equal(t, 135, frames)
	assert.Greater(t, f.TotalOffset, 10.0)
}

func TestInertialHoldsWhileTouching(t *testing.T) {
	p := testParams()
	p.Mode = ModeInertialSwipe
	f, err := New(p, 100, 50)
	require.NoError(t, err)

	f.TouchStart(10, 0)
	f.TouchMove(20, 0)
	before := f.TotalOffset
	f.Step()
	f.Step()
	assert.Equal(t, before, f.TotalOffset)
}

func TestVerticalSwipeInverted(t *testing.T) {
	p := testParams()
	p.Mode = ModeInertialSwipe
	p.Direction = Vertical
	f, err := New(p, 50, 100)
	require.NoError(t, err)
	f.TouchStart(0, 50)
	f.TouchMove(0, 70)
	assert.InDelta(t, -10, f.TotalOffset, 1e-12)
}

func TestWrapAround(t *testing.T) {
	p := testParams()
	p.Mode = ModeInertialSwipe
	f, err := New(p, 100, 50)
	require.NoError(t, err)

	f.TouchStart(0, 0)
	f.TouchMove(500, 0)
	f.Step()
	for _, s := range f.Segments() {
		assert.GreaterOrEqual(t, s.Pos, -50.0)
		assert.LessOrEqual(t, s.Pos, 50.0)
	}
	// Spacing survives the wrap: positions are distinct mod the loop.
	seen := map[int]bool{}
	for _, s := range f.Segments() {
		seen[int(math.Round(s.Pos))] = true
	}
	assert.Len(t, seen, 10)
}

func TestWrapAfterShrink(t *testing.T) {
	for _, mode := range []Mode{ModeInertialSwipe, ModeStepSwipe} {
		t.Run(mode.String(), func(t *testing.T) {
			p := testParams()
			p.Lines = 100
			p.Mode = mode
			f, err := New(p, 1000, 100)
			require.NoError(t, err)
			f.TotalOffset = 37
			f.SetTargetOffset(-480)
			f.Resize(900, 100)

			done := make(chan struct{})
			go func() {
				defer close(done)
				for i := 0; i < 20; i++ {
					f.Step()
				}
			}()
			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatal("Step did not return after the field shrank")
			}

			half := f.LoopLength() / 2
			for _, s := range f.Segments() {
				assert.GreaterOrEqual(t, s.Pos, -half)
				assert.LessOrEqual(t, s.Pos, half)
			}
		})
	}
}

func TestTouchCancelSkipsStep(t *testing.T) {
	p := testParams()
	p.Mode = ModeStepSwipe
	f, err := New(p, 140, 50)
	require.NoError(t, err)

	f.TouchStart(100, 0)
	f.TouchCancel()
	f.TouchEnd(20, 0)
	assert.Zero(t, f.TargetOffset)
}

func TestStepSwipe(t *testing.T) {
	p := testParams()
	p.Mode = ModeStepSwipe
	f, err := New(p, 140, 50)
	require.NoError(t, err)

	f.TouchStart(100, 0)
	f.TouchEnd(80, 0)
	assert.Zero(t, f.TargetOffset, "swipe under threshold")

	f.TouchStart(100, 0)
	f.TouchEnd(20, 0)
	assert.Equal(t, -20.0, f.TargetOffset)

	f.TouchStart(0, 0)
	f.TouchEnd(60, 0)
	f.TouchStart(0, 0)
	f.TouchEnd(60, 0)
	assert.Equal(t, 20.0, f.TargetOffset)

	f.Step()
	assert.InDelta(t, 20*StepSmoothing, f.TotalOffset, 1e-12)
	assert.Equal(t, 70.0, f.ActiveCenter)

	f.SetTargetOffset(-5)
	assert.Equal(t, -5.0, f.TargetOffset)
}

func TestScrollTrack(t *testing.T) {
	p := testParams()
	p.Mode = ModeScrollTrack
	p.ActivePosition = 0.115
	f, err := New(p, 200, 50)
	require.NoError(t, err)

	f.Step()
	assert.InDelta(t, 23, f.ActiveCenter, 1e-9)

	initial := f.Segments()[3].Pos
	f.SetTrackFraction(0.5)
	f.Step()
	assert.Equal(t, 100.0, f.ActiveCenter)
	assert.Equal(t, initial, f.Segments()[3].Pos)

	f.Resize(400, 50)
	assert.Equal(t, 200.0, f.ActiveCenter)
}

func TestRect(t *testing.T) {
	f, err := New(testParams(), 100, 50)
	require.NoError(t, err)
	x, y, w, h := f.Rect(0)
	assert.InDelta(t, -0.5, x, 1e-12)
	assert.InDelta(t, 22.5, y, 1e-12)
	assert.Equal(t, 1.0, w)
	assert.InDelta(t, 5, h, 1e-12)

	p := testParams()
	p.Direction = Vertical
	v, err := New(p, 50, 100)
	require.NoError(t, err)
	x, y, w, h = v.Rect(0)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 99.5, y, 1e-12)
	assert.InDelta(t, 5, w, 1e-12)
	assert.Equal(t, 1.0, h)
}

func TestMarkerLeft(t *testing.T) {
	f, err := New(testParams(), 100, 50)
	require.NoError(t, err)

	left, ok := f.MarkerLeft(100, 20)
	require.True(t, ok)
	assert.Equal(t, 40.0, left)

	f.PointerMove(0)
	for i := 0; i < 200; i++ {
		f.Step()
	}
	left, _ = f.MarkerLeft(100, 20)
	assert.Equal(t, 0.0, left)

	p := testParams()
	p.Direction = Vertical
	v, err := New(p, 50, 100)
	require.NoError(t, err)
	_, ok = v.MarkerLeft(50, 10)
	assert.False(t, ok)
}

func TestSetActiveColor(t *testing.T) {
	f, err := New(testParams(), 100, 50)
	require.NoError(t, err)
	white, _ := colorful.Hex("#ffffff")
	f.SetActiveColor(white)
	for i := 0; i < 400; i++ {
		f.Step()
	}
	r, g, b := f.Segments()[5].Color.RGB255()
	assert.Greater(t, r, uint8(0x8d))
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}

func TestResolveMode(t *testing.T) {
	yes, no := true, false
	tests := []struct {
		name  string
		opts  ModeOptions
		touch bool
		want  Mode
	}{
		{"desktop default", ModeOptions{}, false, ModePointer},
		{"touch default", ModeOptions{}, true, ModeInertialSwipe},
		{"step beats device swipe", ModeOptions{StepSwipe: true}, true, ModeStepSwipe},
		{"swipe disabled on touch", ModeOptions{Swipe: &no}, true, ModePointer},
		{"track on touch", ModeOptions{Swipe: &no, HasTrack: true}, true, ModeScrollTrack},
		{"track ignored on desktop", ModeOptions{HasTrack: true}, false, ModePointer},
		{"desktop scroll bar", ModeOptions{DesktopScrollBar: true}, false, ModeScrollTrack},
		{"forced swipe on desktop", ModeOptions{Swipe: &yes}, false, ModeInertialSwipe},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveMode(tt.opts, tt.touch))
		})
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("vertical")
	require.NoError(t, err)
	assert.Equal(t, Vertical, d)
	d, err = ParseDirection("")
	require.NoError(t, err)
	assert.Equal(t, Horizontal, d)
	_, err = ParseDirection("diagonal")
	assert.Error(t, err)
}
