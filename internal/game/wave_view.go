package game

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/signal"
	"github.com/iburimskiy/particle-field/internal/wave"
	"github.com/lucasb-eyer/go-colorful"
)

// WaveView renders one line field and routes pointer and touch input to it.
type WaveView struct {
	inst config.WaveInstance
	pg   *page

	rect    signal.Rect
	wrapper signal.Rect
	track   *pageTrack
	field   *wave.Field
	active  bool

	palette    []colorful.Color
	paletteIdx int
	marker     *config.Marker
	markerCol  colorful.Color

	regs    []registration
	gesture bool // a touch that started inside the wrapper is in progress
}

func newWaveView(inst config.WaveInstance, pg *page) (*WaveView, error) {
	if _, err := pg.cfg.Container(inst.Container); err != nil {
		return nil, err
	}
	if inst.Wrapper != "" {
		if _, err := pg.cfg.Container(inst.Wrapper); err != nil {
			return nil, err
		}
	}
	return &WaveView{inst: inst, pg: pg}, nil
}

func (v *WaveView) Name() string { return v.inst.Name }

func (v *WaveView) Tab() string { return v.inst.Tab }

func (v *WaveView) Field() *wave.Field { return v.field }

// SetTargetOffset moves a swipe field from outside. It is a no-op until the
// view has been activated once.
func (v *WaveView) SetTargetOffset(off float64) {
	if v.field != nil {
		v.field.SetTargetOffset(off)
	}
}

// place reads the container and wrapper rectangles for the current window.
func (v *WaveView) place() error {
	c, err := v.pg.cfg.Container(v.inst.Container)
	if err != nil {
		return err
	}
	v.rect = v.pg.rect(c)
	v.wrapper = v.rect
	if v.inst.Wrapper != "" {
		w, err := v.pg.cfg.Container(v.inst.Wrapper)
		if err != nil {
			return err
		}
		v.wrapper = v.pg.rect(w)
	}
	return nil
}

func (v *WaveView) build() error {
	if err := v.place(); err != nil {
		return err
	}
	v.track = nil
	if v.inst.HasTrack() {
		if pt, ok := v.pg.tracks[v.inst.ScrollTrack]; ok {
			v.track = pt
		} else {
			slog.Warn("scroll track not found, falling back", "wave", v.inst.Name, "track", v.inst.ScrollTrack)
		}
	}
	p, err := v.inst.Params(v.pg.touch, v.track != nil)
	if err != nil {
		return err
	}
	f, err := wave.New(p, v.rect.W, v.rect.H)
	if err != nil {
		return err
	}
	if v.palette, err = v.inst.Palette(); err != nil {
		return err
	}
	r := v.inst.Resolve(v.pg.touch)
	v.marker = r.Marker
	if v.marker != nil {
		v.markerCol = p.ActiveColor
		if v.marker.Color != "" {
			v.markerCol, _ = config.ParseColor(v.marker.Color)
		}
	}
	v.field = f
	slog.Debug("wave built", "wave", v.inst.Name, "mode", p.Mode, "lines", p.Lines)
	return nil
}

// Activate builds the field on first use and starts listening for input.
func (v *WaveView) Activate() error {
	if v.field == nil {
		if err := v.build(); err != nil {
			return fmt.Errorf("wave %q: %w", v.inst.Name, err)
		}
	}
	if v.active {
		return nil
	}
	v.active = true
	v.regs = append(v.regs,
		v.pg.bus.onPointer(v.pointerMove),
		v.pg.bus.onTouch(v.touch),
	)
	return nil
}

// Deactivate stops input and stepping. The field keeps its state.
func (v *WaveView) Deactivate() {
	v.active = false
	v.gesture = false
	for _, r := range v.regs {
		r.Remove()
	}
	v.regs = nil
}

func (v *WaveView) Dispose() {
	v.Deactivate()
	if v.field != nil {
		v.field.Dispose()
		v.field = nil
	}
}

func (v *WaveView) pointerMove(x, y float64) {
	if v.field.Params().Mode != wave.ModePointer || !v.wrapper.Contains(x, y) {
		return
	}
	vertical := v.field.Params().Direction == wave.Vertical
	v.field.PointerMove(signal.AxisPos(v.wrapper, x, y, vertical))
}

func (v *WaveView) touch(ev signal.TouchEvent) {
	if !v.field.Params().Mode.Swipes() {
		return
	}
	switch ev.Phase {
	case signal.PhaseStart:
		if !v.wrapper.Contains(ev.X, ev.Y) {
			return
		}
		v.gesture = true
		v.field.TouchStart(ev.X, ev.Y)
	case signal.PhaseMove:
		if v.gesture {
			v.field.TouchMove(ev.X, ev.Y)
		}
	case signal.PhaseEnd:
		if v.gesture {
			v.gesture = false
			v.field.TouchEnd(ev.X, ev.Y)
		}
	case signal.PhaseCancel:
		if v.gesture {
			v.gesture = false
			v.field.TouchCancel()
		}
	}
}

// nextColor cycles the active colour through the dynamic palette.
func (v *WaveView) nextColor() {
	if v.field == nil || len(v.palette) == 0 {
		return
	}
	v.paletteIdx = (v.paletteIdx + 1) % len(v.palette)
	v.field.SetActiveColor(v.palette[v.paletteIdx])
}

func (v *WaveView) update() {
	if !v.active || v.field == nil {
		return
	}
	if v.track != nil && v.field.Params().Mode == wave.ModeScrollTrack {
		v.field.SetTrackFraction(v.track.track.Fraction())
	}
	v.field.Step()
}

func (v *WaveView) resize() error {
	if v.field == nil {
		return nil
	}
	if err := v.place(); err != nil {
		return err
	}
	v.field.Resize(v.rect.W, v.rect.H)
	return nil
}

func (v *WaveView) draw(screen *ebiten.Image) {
	if !v.active || v.field == nil {
		return
	}
	dst := screen.SubImage(image.Rect(
		int(v.rect.X), int(v.rect.Y),
		int(v.rect.X+v.rect.W), int(v.rect.Y+v.rect.H),
	)).(*ebiten.Image)
	for i, s := range v.field.Segments() {
		x, y, w, h := v.field.Rect(i)
		vector.DrawFilledRect(dst,
			float32(v.rect.X+x), float32(v.rect.Y+y), float32(w), float32(h),
			nrgba(s.Color, 1), false)
	}
	if v.marker == nil {
		return
	}
	left, ok := v.field.MarkerLeft(v.rect.W, v.marker.Width)
	if !ok {
		return
	}
	top := v.rect.Y + v.rect.H - v.marker.Height
	vector.DrawFilledRect(dst,
		float32(v.rect.X+left), float32(top), float32(v.marker.Width), float32(v.marker.Height),
		nrgba(v.markerCol, 1), false)
}

func (v *WaveView) Snapshot() Snapshot {
	s := Snapshot{Name: v.inst.Name, Kind: "wave", Active: v.active}
	if v.field == nil {
		return s
	}
	s.Mode = v.field.Params().Mode.String()
	s.ActiveCenter = v.field.ActiveCenter
	s.TotalOffset = v.field.TotalOffset
	s.Velocity = v.field.Velocity()
	s.Width, s.Height = v.field.Size()
	return s
}
