package utils

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
)

var colourPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)

// Colour is a clear colour with components in [0, 1].
type Colour struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

// ColourAt is the background cycle: red follows the cosine, green and blue
// follow the sine, each mapped from [-1, 1] into [0, 1].
func ColourAt(t float64) Colour {
	return Colour{
		R: float32(math.Cos(t)/2 + 0.5),
		G: float32(math.Sin(t)/2 + 0.5),
		B: float32(math.Sin(t)/2 + 0.5),
		A: 1,
	}
}

func ColourValidate(c string) bool {
	return colourPattern.MatchString(c)
}

func ColourParse(s string) (c color.RGBA) {
	fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	return
}

func ColourFromRGBA(c color.RGBA) Colour {
	return Colour{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}
