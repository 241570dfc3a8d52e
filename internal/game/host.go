// Package game hosts the animation instances in an ebiten window. The host
// owns the page scroll, the scroll tracks and every instance; all of them
// advance inside Update, so input, resize and frame steps never overlap.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/signal"
	"github.com/ncruces/zenity"
)

// wheelStep is the page distance, px, of one wheel notch.
const wheelStep = 40

var background = color.RGBA{R: 12, G: 12, B: 14, A: 255}

type instance interface {
	Handle
	Tab() string
	Activate() error
	Deactivate()
	Dispose()
	update()
	resize() error
	draw(screen *ebiten.Image)
}

type Options struct {
	// Device overrides the configured device class when set.
	Device string
	Debug  bool
	// Reload delivers replacement configurations, usually from config.Watch.
	Reload <-chan *config.File
	Seed   int64
}

// Host implements ebiten.Game.
type Host struct {
	pg        *page
	device    string
	instances []instance
	tabs      []string
	tab       int
	rng       *rand.Rand

	reload   <-chan *config.File
	tracker  signal.Touch
	lastX    float64
	lastY    float64
	layoutW  int
	layoutH  int
	debug    bool
	audioErr error
}

// New builds a host for cfg. Instances that reference missing page elements
// are logged and skipped.
func New(cfg *config.File, opts Options) *Host {
	device := cfg.Window.Device
	if opts.Device != "" {
		device = opts.Device
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	h := &Host{
		device: device,
		reload: opts.Reload,
		debug:  opts.Debug,
		rng:    rand.New(rand.NewSource(seed)),
		pg: &page{
			bus:   &bus{},
			audio: &signal.AudioPlayer{RingSize: config.AudioRingSize},
		},
	}
	h.pg.touch = detectTouch(device)
	h.apply(cfg)
	return h
}

// apply replaces the configuration and rebuilds every instance.
func (h *Host) apply(cfg *config.File) {
	for _, in := range h.instances {
		in.Dispose()
	}
	h.instances = nil

	pg := h.pg
	pg.cfg = cfg
	pg.tps = cfg.Window.TPS
	if pg.width == 0 {
		pg.width = float64(cfg.Window.Width)
		pg.height = float64(cfg.Window.Height)
	}
	pg.mobile = cfg.Window.IsMobile(pg.width)
	pg.tracks = nil
	pg.layoutTracks()
	pg.scrollBy(0)

	for _, s := range cfg.Spheres {
		v, err := newSphereView(s, pg, h.rng)
		if err != nil {
			slog.Error("sphere skipped", "name", s.Name, "err", err)
			continue
		}
		h.instances = append(h.instances, v)
	}
	for _, w := range cfg.Waves {
		v, err := newWaveView(w, pg)
		if err != nil {
			slog.Error("wave skipped", "name", w.Name, "err", err)
			continue
		}
		h.instances = append(h.instances, v)
	}

	h.tabs = cfg.Tabs()
	if h.tab >= len(h.tabs) {
		h.tab = 0
	}
	h.activateTab()
}

func (h *Host) currentTab() string {
	if len(h.tabs) == 0 {
		return ""
	}
	return h.tabs[h.tab]
}

// activateTab activates untabbed instances and the current tab, and
// deactivates the rest. Instances that fail to build are dropped.
func (h *Host) activateTab() {
	cur := h.currentTab()
	kept := h.instances[:0]
	for _, in := range h.instances {
		if in.Tab() != "" && in.Tab() != cur {
			in.Deactivate()
			kept = append(kept, in)
			continue
		}
		if err := in.Activate(); err != nil {
			slog.Error("instance skipped", "name", in.Name(), "err", err)
			in.Dispose()
			continue
		}
		kept = append(kept, in)
	}
	h.instances = kept
}

func (h *Host) nextTab() {
	if len(h.tabs) < 2 {
		return
	}
	h.tab = (h.tab + 1) % len(h.tabs)
	slog.Debug("tab switched", "tab", h.currentTab())
	h.activateTab()
}

// Handles lists the live instances for debugging.
func (h *Host) Handles() []Handle {
	out := make([]Handle, len(h.instances))
	for i, in := range h.instances {
		out[i] = in
	}
	return out
}

// Instance finds a live instance by name.
func (h *Host) Instance(name string) (Handle, bool) {
	for _, in := range h.instances {
		if in.Name() == name {
			return in, true
		}
	}
	return nil, false
}

func (h *Host) resize(w, hgt float64) {
	pg := h.pg
	pg.width, pg.height = w, hgt
	pg.mobile = pg.cfg.Window.IsMobile(w)
	pg.layoutTracks()
	pg.scrollBy(0)
	for _, in := range h.instances {
		if err := in.resize(); err != nil {
			slog.Error("resize failed", "name", in.Name(), "err", err)
		}
	}
}

func (h *Host) Update() error {
	return h.step(h.poll())
}

// poll reads this tick's input from ebiten.
func (h *Host) poll() frameInput {
	var in frameInput
	cx, cy := ebiten.CursorPosition()
	in.cursorX, in.cursorY = float64(cx), float64(cy)
	in.cursorMoved = in.cursorX != h.lastX || in.cursorY != h.lastY
	h.lastX, h.lastY = in.cursorX, in.cursorY
	in.wheelX, in.wheelY = ebiten.Wheel()

	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		in.touches = append(in.touches, signal.Sample{ID: int(id), X: float64(x), Y: float64(y)})
	}

	in.nextTab = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	in.debug = inpututil.IsKeyJustPressed(ebiten.KeyF1)
	in.openAudio = inpututil.IsKeyJustPressed(ebiten.KeyO)
	in.nextColor = inpututil.IsKeyJustPressed(ebiten.KeyC)
	in.pause = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
	return in
}

// step advances one frame from already collected input.
func (h *Host) step(in frameInput) error {
	select {
	case cfg := <-h.reload:
		slog.Info("applying reloaded config")
		h.apply(cfg)
	default:
	}

	if h.layoutW > 0 && h.layoutH > 0 &&
		(float64(h.layoutW) != h.pg.width || float64(h.layoutH) != h.pg.height) {
		h.resize(float64(h.layoutW), float64(h.layoutH))
	}

	if len(in.touches) > 0 && !h.pg.touch && (h.device == "" || h.device == "auto") {
		slog.Info("touch input detected, switching device class")
		h.pg.touch = true
		h.apply(h.pg.cfg)
	}

	if in.quit {
		return ebiten.Termination
	}
	if in.debug {
		h.debug = !h.debug
	}
	if in.nextTab {
		h.nextTab()
	}
	if in.openAudio {
		h.openAudioDialog()
	}
	if in.pause {
		if tr := h.pg.audio.Current(); tr != nil {
			tr.TogglePause()
		}
	}
	if in.nextColor {
		for _, inst := range h.instances {
			if wv, ok := inst.(*WaveView); ok && wv.active {
				wv.nextColor()
			}
		}
	}

	if in.wheelX != 0 || in.wheelY != 0 {
		h.wheel(in.cursorX, in.cursorY, in.wheelX, in.wheelY)
	}
	if in.cursorMoved {
		h.pg.bus.emitPointer(in.cursorX, in.cursorY)
	}
	for _, ev := range h.tracker.Update(in.touches) {
		h.pg.bus.emitTouch(ev)
	}

	for _, inst := range h.instances {
		inst.update()
	}
	return nil
}

// wheel scrolls the track under the cursor, or the page when there is none.
func (h *Host) wheel(x, y, dx, dy float64) {
	if pt := h.pg.trackAt(x, y); pt != nil {
		d := dy
		if !pt.cfg.Vertical && dx != 0 {
			d = dx
		}
		pt.track.ScrollBy(-d * wheelStep)
		return
	}
	h.pg.scrollBy(-dy * wheelStep)
}

// openAudioDialog asks for a track and starts playing it. Failures are
// reported on screen and the host carries on without audio.
func (h *Host) openAudioDialog() {
	path, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return
		}
		h.assetFailed(path, err)
		return
	}
	h.openAudio(path)
}

func (h *Host) openAudio(path string) {
	tr, err := h.pg.audio.Open(path)
	if err != nil {
		h.assetFailed(path, err)
		return
	}
	h.audioErr = nil
	slog.Info("audio track opened", "path", path, "duration", tr.Duration())
}

func (h *Host) assetFailed(path string, err error) {
	h.audioErr = fmt.Errorf("%w: %s: %w", ErrAssetLoad, path, err)
	slog.Error("audio track unavailable", "err", h.audioErr)
}

func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for _, in := range h.instances {
		in.draw(screen)
	}
	ebitenutil.DebugPrintAt(screen, h.status(), 12, 12)
	if h.debug {
		h.drawDebug(screen)
	}
}

func (h *Host) status() string {
	var b strings.Builder
	if tab := h.currentTab(); tab != "" {
		fmt.Fprintf(&b, "Tab: %s", tab)
	}
	if tr := h.pg.audio.Current(); tr != nil {
		state := "Playing"
		if tr.Paused() {
			state = "Paused"
		}
		fmt.Fprintf(&b, " | %s %s / %s", state, formatDuration(tr.Position()), formatDuration(tr.Duration()))
	}
	if h.audioErr != nil {
		b.WriteString(" | Error: " + h.audioErr.Error())
	}
	return b.String()
}

func (h *Host) drawDebug(screen *ebiten.Image) {
	y := 32
	line := func(s string) {
		ebitenutil.DebugPrintAt(screen, s, 12, y)
		y += 16
	}
	line(fmt.Sprintf("TPS %.1f FPS %.1f  %vx%v  scroll %.0f/%.0f  touch=%v mobile=%v",
		ebiten.ActualTPS(), ebiten.ActualFPS(), h.pg.width, h.pg.height,
		h.pg.scrollY, h.pg.maxScroll(), h.pg.touch, h.pg.mobile))
	for _, hd := range h.Handles() {
		line(hd.Snapshot().String())
	}
}

// Layout tracks the outside size. The new size is applied at the start of
// the next Update.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.layoutW, h.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Close disposes every instance and stops audio.
func (h *Host) Close() {
	for _, in := range h.instances {
		in.Dispose()
	}
	h.instances = nil
	h.pg.audio.Close()
}
