package frameloop

import (
	"testing"

	"github.com/prismgl/prism/lib/config"
	"github.com/prismgl/prism/lib/utils"
	"github.com/stretchr/testify/assert"
)

func TestClearColour(t *testing.T) {
	cycle := ClearColour(&config.ClearCfg{Mode: config.ClearCycle})
	assert.Equal(t, utils.ColourAt(2.5), cycle(2.5))

	fixed := ClearColour(&config.ClearCfg{Mode: config.ClearFixed, Colour: "#ff8000ff"})
	assert.Equal(t, fixed(0), fixed(100))
	assert.Equal(t, float32(1), fixed(0).R)
	assert.Equal(t, float32(0), fixed(0).B)
}
