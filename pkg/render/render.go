// Package render draws simulation snapshots onto an ebiten image. It keeps
// no reference to the simulation: every call gets the bodies and the target
// image it should use for that frame.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/RadeonGalwet/planets/pkg/simulation"
)

var (
	Background = color.RGBA{255, 255, 255, 255}
	hudColor   = color.RGBA{40, 40, 40, 255}
)

// Viewport places the simulation origin at the center of a window.
type Viewport struct {
	Width, Height float64
}

// ToScreen maps simulation coordinates to window pixels.
func (vp Viewport) ToScreen(x, y float64) (float32, float32) {
	return float32(x + vp.Width/2), float32(y + vp.Height/2)
}

// Visible reports whether a circle touches the window at all.
func (vp Viewport) Visible(x, y, r float64) bool {
	sx, sy := x+vp.Width/2, y+vp.Height/2
	return sx+r >= 0 && sy+r >= 0 && sx-r <= vp.Width && sy-r <= vp.Height
}

// Draw clears dst and draws every body as a filled circle.
func Draw(dst *ebiten.Image, bodies []simulation.BodyView, vp Viewport) {
	dst.Fill(Background)
	for _, b := range bodies {
		if !vp.Visible(b.X, b.Y, b.Radius) {
			continue
		}
		x, y := vp.ToScreen(b.X, b.Y)
		vector.DrawFilledCircle(dst, x, y, float32(b.Radius), b.Color, true)
	}
}

// HUD is the status shown in the top left corner.
type HUD struct {
	Scenario string
	Ticks    uint64
	Bodies   int
	Paused   bool
}

func (h HUD) Lines() []string {
	state := "running"
	if h.Paused {
		state = "paused (N: step)"
	}
	return []string{
		fmt.Sprintf("%s  bodies: %d", h.Scenario, h.Bodies),
		fmt.Sprintf("tick %d  %s", h.Ticks, state),
		"P pause  R reset  T trails  Q quit",
	}
}

func DrawHUD(dst *ebiten.Image, h HUD) {
	face := basicfont.Face7x13
	for i, line := range h.Lines() {
		text.Draw(dst, line, face, 8, 16+i*16, hudColor)
	}
	w, ht := dst.Bounds().Dx(), dst.Bounds().Dy()
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("TPS %.0f", ebiten.ActualTPS()), w-64, ht-20)
}
