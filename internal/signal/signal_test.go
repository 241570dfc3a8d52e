package signal

import (
	"testing"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
)

func TestScrollProgress(t *testing.T) {
	s := ScrollProgress{TriggerTop: 100, ViewportHeight: 800, AnimationSpeed: 0.99}
	assert.Equal(t, 0.0, s.Progress(0))
	assert.Equal(t, 0.0, s.Progress(100))
	assert.InDelta(t, 396.0/792.0, s.Progress(496), 1e-12)
	assert.Equal(t, 1.0, s.Progress(5000))

	flat := ScrollProgress{TriggerTop: 10}
	assert.Equal(t, 0.0, flat.Progress(5))
	assert.Equal(t, 1.0, flat.Progress(10))
}

func TestTrackFraction(t *testing.T) {
	tr := &Track{Content: 1000, Viewport: 200}
	assert.Equal(t, 0.0, tr.Fraction())
	tr.ScrollBy(400)
	assert.Equal(t, 0.5, tr.Fraction())
	tr.ScrollBy(10000)
	assert.Equal(t, 800.0, tr.Pos())
	assert.Equal(t, 1.0, tr.Fraction())
	tr.ScrollBy(-10000)
	assert.Equal(t, 0.0, tr.Pos())

	empty := &Track{Content: 100, Viewport: 200}
	empty.ScrollBy(50)
	assert.Equal(t, 0.0, empty.Fraction())
}

func TestAxisPos(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	assert.Equal(t, 40.0, AxisPos(r, 50, 30, false))
	assert.Equal(t, 40.0, AxisPos(r, 50, 30, true))
	assert.Equal(t, 50.0, AxisPos(r, 0, 20, true))
	assert.True(t, r.Contains(10, 20))
	assert.False(t, r.Contains(111, 20))
}

func TestTouchSingleFinger(t *testing.T) {
	var tr Touch
	ev := tr.Update([]Sample{{ID: 1, X: 10, Y: 5}})
	assert.Equal(t, []TouchEvent{{Phase: PhaseStart, X: 10, Y: 5}}, ev)
	assert.True(t, tr.Active())

	assert.Empty(t, tr.Update([]Sample{{ID: 1, X: 10, Y: 5}}))

	ev = tr.Update([]Sample{{ID: 1, X: 30, Y: 5}})
	assert.Equal(t, []TouchEvent{{Phase: PhaseMove, X: 30, Y: 5}}, ev)
	ev = tr.Update(nil)
	assert.Equal(t, []TouchEvent{{Phase: PhaseEnd, X: 30, Y: 5}}, ev)
	assert.False(t, tr.Active())
}

func TestTouchSecondFingerCancels(t *testing.T) {
	var tr Touch
	tr.Update([]Sample{{ID: 1, X: 0, Y: 0}})
	ev := tr.Update([]Sample{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 50, Y: 50}})
	assert.Equal(t, []TouchEvent{{Phase: PhaseCancel}}, ev)

	tr = Touch{}
	tr.Update([]Sample{{ID: 1, X: 100, Y: 0}})
	tr.Update([]Sample{{ID: 1, X: 20, Y: 0}})
	ev = tr.Update([]Sample{{ID: 1, X: 20, Y: 0}, {ID: 2, X: 90, Y: 0}})
	assert.Equal(t, []TouchEvent{{Phase: PhaseCancel, X: 20, Y: 0}}, ev, "a pinch never reports an end")

	// Lifting one finger does not restart tracking.
	assert.Empty(t, tr.Update([]Sample{{ID: 2, X: 50, Y: 50}}))
	assert.Empty(t, tr.Update(nil))
	ev = tr.Update([]Sample{{ID: 3, X: 1, Y: 1}})
	assert.Equal(t, PhaseStart, ev[0].Phase)
}

func TestAudioTapLevel(t *testing.T) {
	silence := NewAudioTap(beep.Silence(-1), 64)
	buf := make([][2]float64, 64)
	silence.Stream(buf)
	assert.Equal(t, 0.0, silence.Level(64))

	loud := NewAudioTap(constant(0.5), 64)
	loud.Stream(buf)
	assert.InDelta(t, 0.812252, loud.Level(32), 1e-5) // 0.5^0.3
	assert.Equal(t, 0.0, loud.Level(0))
	assert.NoError(t, loud.Err())
}

type constant float64

func (c constant) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{float64(c), float64(c)}
	}
	return len(samples), true
}

func (c constant) Err() error { return nil }
