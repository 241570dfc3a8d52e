package game

import (
	"log/slog"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/signal"
)

// page is the per-host context every view reads: window size, page scroll,
// device class and the scroll tracks. Views never keep their own copies.
type page struct {
	cfg *config.File
	tps int

	width, height float64
	scrollY       float64
	touch         bool
	mobile        bool

	tracks map[string]*pageTrack
	bus    *bus
	audio  *signal.AudioPlayer
}

type pageTrack struct {
	cfg   config.Track
	rect  signal.Rect
	track *signal.Track
}

// rect converts a container from window fractions to pixels.
func (p *page) rect(c config.Container) signal.Rect {
	return signal.Rect{
		X: c.X * p.width,
		Y: c.Y * p.height,
		W: c.W * p.width,
		H: c.H * p.height,
	}
}

func (p *page) maxScroll() float64 {
	if m := p.cfg.Window.PageHeight - p.height; m > 0 {
		return m
	}
	return 0
}

func (p *page) scrollBy(d float64) {
	p.scrollY += d
	if p.scrollY < 0 {
		p.scrollY = 0
	}
	if m := p.maxScroll(); p.scrollY > m {
		p.scrollY = m
	}
}

// layoutTracks places every configured track. Existing tracks keep their
// position, clamped to the new range.
func (p *page) layoutTracks() {
	if p.tracks == nil {
		p.tracks = map[string]*pageTrack{}
	}
	for _, t := range p.cfg.Tracks {
		c, err := p.cfg.Container(t.Container)
		if err != nil {
			slog.Error("scroll track skipped", "track", t.ID, "err", err)
			continue
		}
		pt, ok := p.tracks[t.ID]
		if !ok {
			pt = &pageTrack{track: &signal.Track{}}
			p.tracks[t.ID] = pt
		}
		pt.cfg = t
		pt.rect = p.rect(c)
		pt.track.Content = t.Content
		pt.track.Viewport = pt.rect.W
		if t.Vertical {
			pt.track.Viewport = pt.rect.H
		}
		pt.track.ScrollBy(0)
	}
}

// trackAt returns the track whose container holds the point, if any.
func (p *page) trackAt(x, y float64) *pageTrack {
	for _, t := range p.cfg.Tracks {
		if pt, ok := p.tracks[t.ID]; ok && pt.rect.Contains(x, y) {
			return pt
		}
	}
	return nil
}
