package physics

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrInvalidMass is returned by NewBody for a mass that is not a finite
// positive number.
var ErrInvalidMass = errors.New("mass must be finite and positive")

// --- Body ---

// Body is a point mass. Pos and Vel change every tick; mass and Color are
// fixed once the body is built.
type Body struct {
	Pos   r2.Vec
	Vel   r2.Vec
	Color color.RGBA

	mass float64
}

// NewBody builds a body, rejecting masses that would make Influence divide
// by zero or go negative.
func NewBody(pos, vel r2.Vec, mass float64, c color.RGBA) (Body, error) {
	if !(mass > 0) || math.IsInf(mass, 1) {
		return Body{}, fmt.Errorf("new body at (%g, %g): %w: %g", pos.X, pos.Y, ErrInvalidMass, mass)
	}
	return Body{Pos: pos, Vel: vel, Color: c, mass: mass}, nil
}

func (b *Body) Mass() float64 {
	return b.mass
}

// Radius is a drawing and collision convention, not a density model.
func (b *Body) Radius() float64 {
	return 2 * b.mass
}

func (b *Body) Position() r2.Vec {
	return b.Pos
}

// Distance is the Euclidean distance between the two centers.
func (b *Body) Distance(o *Body) float64 {
	return r2.Norm(r2.Sub(b.Pos, o.Pos))
}

// Collision reports whether o is within twice the sum of both radii.
func (b *Body) Collision(o *Body) bool {
	return b.Distance(o) <= b.Radius()*2+o.Radius()*2
}

// Movement advances the position by one unit of time.
func (b *Body) Movement() {
	b.Pos.X += b.Vel.X
	b.Pos.Y += b.Vel.Y
}
