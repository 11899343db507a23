package utils

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColourAtOrigin(t *testing.T) {
	c := ColourAt(0)
	assert.InDelta(t, 1.0, c.R, 1e-6)
	assert.InDelta(t, 0.5, c.G, 1e-6)
	assert.InDelta(t, 0.5, c.B, 1e-6)
	assert.Equal(t, float32(1), c.A)
}

func TestColourAtStaysInRange(t *testing.T) {
	for i := -2000; i <= 2000; i++ {
		c := ColourAt(float64(i) * 0.0137)
		for _, v := range []float32{c.R, c.G, c.B} {
			assert.GreaterOrEqual(t, v, float32(0))
			assert.LessOrEqual(t, v, float32(1))
		}
		assert.Equal(t, c.G, c.B)
	}
}

func TestColourAtQuarterTurn(t *testing.T) {
	c := ColourAt(math.Pi / 2)
	assert.InDelta(t, 0.5, c.R, 1e-6)
	assert.InDelta(t, 1.0, c.G, 1e-6)
}

func TestColourParse(t *testing.T) {
	assert.True(t, ColourValidate("#ff8000ff"))
	assert.False(t, ColourValidate("#ff8000"))
	assert.False(t, ColourValidate("ff8000ffaa"))

	c := ColourParse("#ff8000ff")
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, c)

	f := ColourFromRGBA(c)
	assert.Equal(t, float32(1), f.R)
	assert.InDelta(t, 0.502, f.G, 1e-3)
	assert.Equal(t, float32(0), f.B)
}
