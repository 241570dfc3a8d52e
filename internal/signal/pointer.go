package signal

// Rect is a screen-space rectangle, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// AxisPos maps a cursor position to a coordinate along a field axis,
// measured from the wrapper's start. Vertical axes grow upwards.
func AxisPos(wrapper Rect, x, y float64, vertical bool) float64 {
	if vertical {
		return wrapper.H - (y - wrapper.Y)
	}
	return x - wrapper.X
}

