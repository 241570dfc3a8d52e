package game

import "github.com/iburimskiy/particle-field/internal/signal"

type eventKind int

const (
	eventPointer eventKind = iota
	eventTouch
)

type pointerListener struct {
	id uint32
	fn func(x, y float64)
}

type touchListener struct {
	id uint32
	fn func(signal.TouchEvent)
}

// bus fans host input out to instance listeners. Dispatch happens inside
// Update, so listeners never run concurrently with a frame step.
type bus struct {
	pointer []pointerListener
	touch   []touchListener
	nextID  uint32
}

// registration removes one listener from the bus.
type registration struct {
	id   uint32
	kind eventKind
	b    *bus
}

func (r registration) Remove() {
	if r.b == nil {
		return
	}
	switch r.kind {
	case eventPointer:
		for i, l := range r.b.pointer {
			if l.id == r.id {
				r.b.pointer = append(r.b.pointer[:i], r.b.pointer[i+1:]...)
				return
			}
		}
	case eventTouch:
		for i, l := range r.b.touch {
			if l.id == r.id {
				r.b.touch = append(r.b.touch[:i], r.b.touch[i+1:]...)
				return
			}
		}
	}
}

func (b *bus) onPointer(fn func(x, y float64)) registration {
	b.nextID++
	b.pointer = append(b.pointer, pointerListener{id: b.nextID, fn: fn})
	return registration{id: b.nextID, kind: eventPointer, b: b}
}

func (b *bus) onTouch(fn func(signal.TouchEvent)) registration {
	b.nextID++
	b.touch = append(b.touch, touchListener{id: b.nextID, fn: fn})
	return registration{id: b.nextID, kind: eventTouch, b: b}
}

func (b *bus) emitPointer(x, y float64) {
	for _, l := range b.pointer {
		l.fn(x, y)
	}
}

func (b *bus) emitTouch(ev signal.TouchEvent) {
	for _, l := range b.touch {
		l.fn(ev)
	}
}

func (b *bus) listeners() int {
	return len(b.pointer) + len(b.touch)
}

// frameInput is everything the host reads from ebiten in one tick.
type frameInput struct {
	cursorX, cursorY float64
	cursorMoved      bool
	wheelX, wheelY   float64
	touches          []signal.Sample

	nextTab   bool
	debug     bool
	openAudio bool
	nextColor bool
	pause     bool
	quit      bool
}
