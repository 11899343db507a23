package frameloop

import (
	"github.com/prismgl/prism/lib/config"
	"github.com/prismgl/prism/lib/utils"
)

// ClearColour picks the colour function for the configured clear mode.
func ClearColour(cfg *config.ClearCfg) ColourFunc {
	if cfg.Mode == config.ClearFixed {
		fixed := utils.ColourFromRGBA(utils.ColourParse(cfg.Colour))
		return func(float64) utils.Colour {
			return fixed
		}
	}
	return utils.ColourAt
}
