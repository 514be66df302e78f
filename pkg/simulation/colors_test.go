package simulation

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestParseColor(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, color.RGBA{255, 0, 128, 255}, parseColor("#ff0080", rng))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, parseColor("#fff", rng))

	for _, s := range []string{"", "red", "#12345"} {
		c := parseColor(s, rng)
		assert.EqualValues(t, 255, c.A, "fallback for %q is opaque", s)
	}
}

func TestRandomColor_Seeded(t *testing.T) {
	a := rand.New(rand.NewSource(9))
	b := rand.New(rand.NewSource(9))
	for i := 0; i < 10; i++ {
		assert.Equal(t, randomColor(a), randomColor(b))
	}
}
