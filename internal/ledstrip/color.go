package ledstrip

import (
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
	"image/color"
	"math"
)

// Color is the value of a single LED slot. Brightness is a per-slot scalar in [0.0, 1.0] that is applied on top of
// the brightness of the whole strip.
type Color struct {
	R, G, B    uint8
	Brightness float64
}

// Off is a fully unlit slot.
var Off = Color{}

// RGB returns a color at full slot brightness, leaving the strip brightness as the only dimming factor.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Brightness: 1.0}
}

func (c Color) String() string {
	hex := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
	return fmt.Sprintf("%s@%.2f", hex, c.Brightness)
}

// scaled gets the color as it should be sent to the hardware, with the slot and strip brightness folded into the
// channels.
func (c Color) scaled(strip float64) color.NRGBA {
	f := clampUnit(c.Brightness) * clampUnit(strip)
	return color.NRGBA{
		R: uint8(math.Round(float64(c.R) * f)),
		G: uint8(math.Round(float64(c.G) * f)),
		B: uint8(math.Round(float64(c.B) * f)),
		A: 255,
	}
}

func clampUnit(v float64) float64 {
	return math.Max(math.Min(v, 1.0), 0.0)
}
