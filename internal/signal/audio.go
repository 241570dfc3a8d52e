package signal

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// ErrUnsupportedAudio is returned for files with an unknown extension.
var ErrUnsupportedAudio = errors.New("unsupported audio file")

// AudioTap wraps a beep.Streamer and records the last N samples into a ring
// buffer so the frame loop can read a level from recently played audio.
// Stream runs on the speaker goroutine; Level runs on the frame loop.
type AudioTap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	mu        sync.RWMutex
}

func NewAudioTap(src beep.Streamer, ringSize int) *AudioTap {
	return &AudioTap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *AudioTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *AudioTap) Err() error { return t.Source.Err() }

// Level is the compressed RMS of the last n samples, in [0,1].
func (t *AudioTap) Level(n int) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	if n <= 0 {
		return 0
	}
	var sumSquares float64
	idx := t.nextIndex - 1
	for i := 0; i < n; i++ {
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		mono := (t.buffer[idx][0] + t.buffer[idx][1]) * 0.5
		sumSquares += mono * mono
		idx--
	}
	rms := math.Sqrt(sumSquares / float64(n))
	// Compress so quiet passages still move the animation.
	return math.Min(1, math.Pow(rms, 0.3))
}

// AudioTrack is a decoded audio file playing through the speaker.
type AudioTrack struct {
	Tap      *AudioTap
	ctrl     *beep.Ctrl
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
}

func (tr *AudioTrack) Duration() time.Duration {
	return tr.format.SampleRate.D(tr.streamer.Len())
}

// Position reads the playhead under the speaker lock.
func (tr *AudioTrack) Position() time.Duration {
	speaker.Lock()
	defer speaker.Unlock()
	return tr.format.SampleRate.D(tr.streamer.Position())
}

func (tr *AudioTrack) Paused() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return tr.ctrl.Paused
}

func (tr *AudioTrack) TogglePause() {
	speaker.Lock()
	tr.ctrl.Paused = !tr.ctrl.Paused
	speaker.Unlock()
}

func (tr *AudioTrack) close() error {
	err := tr.streamer.Close()
	if cerr := tr.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// AudioPlayer owns the speaker. beep's speaker is process-wide, so a
// program should hold a single player.
type AudioPlayer struct {
	RingSize int

	rate    beep.SampleRate
	current *AudioTrack
}

// Open decodes a wav, mp3 or flac file, replaces whatever was playing and
// starts the new track through a tap.
func (p *AudioPlayer) Open(path string) (*AudioTrack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAudio, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	p.stop()
	if p.rate != format.SampleRate {
		bufferSize := format.SampleRate.N(time.Second / 20)
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return nil, err
		}
		p.rate = format.SampleRate
	}

	ring := p.RingSize
	if ring <= 0 {
		ring = 8192
	}
	tap := NewAudioTap(streamer, ring)
	tr := &AudioTrack{
		Tap:      tap,
		ctrl:     &beep.Ctrl{Streamer: tap},
		file:     f,
		streamer: streamer,
		format:   format,
	}
	p.current = tr
	speaker.Play(tr.ctrl)
	return tr, nil
}

func (p *AudioPlayer) Current() *AudioTrack { return p.current }

func (p *AudioPlayer) stop() {
	if p.current == nil {
		return
	}
	// Clear takes the speaker lock itself.
	speaker.Clear()
	_ = p.current.close()
	p.current = nil
}

// Close stops playback and releases the current file.
func (p *AudioPlayer) Close() {
	p.stop()
}
