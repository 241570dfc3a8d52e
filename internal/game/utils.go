package game

import (
	"fmt"
	"image/color"
	"runtime"
	"time"

	"github.com/iburimskiy/particle-field/internal/motion"
	"github.com/lucasb-eyer/go-colorful"
)

// nrgba converts a colour and an opacity in [0,1] for the vector package.
func nrgba(c colorful.Color, opacity float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(motion.Clamp01(opacity)*255 + 0.5)}
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// detectTouch resolves the configured device class. "auto" assumes a touch
// screen on mobile platforms; the host also flips to touch the first time
// it sees a finger.
func detectTouch(device string) bool {
	switch device {
	case "touch":
		return true
	case "pointer":
		return false
	}
	return runtime.GOOS == "android" || runtime.GOOS == "ios"
}
