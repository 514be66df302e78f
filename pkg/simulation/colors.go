package simulation

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/rand"
)

// randomColor picks an opaque color with independent uniform channels.
func randomColor(rng *rand.Rand) color.RGBA {
	c := colorful.Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

// parseColor reads "#rrggbb" (or "#rgb"); anything else falls back to a
// random color.
func parseColor(hex string, rng *rand.Rand) color.RGBA {
	if hex == "" {
		return randomColor(rng)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return randomColor(rng)
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}
