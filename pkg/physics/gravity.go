package physics

import "gonum.org/v1/gonum/spatial/r2"

// Influence adds to b's velocity the pull of o over one tick. The
// acceleration is o's mass over the squared distance, divided by b's own
// mass. Coincident bodies are not guarded and yield non-finite velocities.
func (b *Body) Influence(o *Body) {
	d := r2.Sub(o.Pos, b.Pos)
	r := r2.Norm(d)
	acc := o.mass / (r * r) / b.mass
	b.Vel.X += acc * d.X / r
	b.Vel.Y += acc * d.Y / r
}

// Collide exchanges velocities with the one dimensional elastic collision
// formula applied to each axis independently. Both velocities are
// overwritten; the formula reads only the values from before the call.
func Collide(a, b *Body) {
	x := a.Vel.X - b.Vel.X
	y := a.Vel.Y - b.Vel.Y
	sum := a.mass + b.mass
	a.Vel.X = (a.Vel.X*(a.mass-b.mass) + 2*b.mass*b.Vel.X) / sum
	a.Vel.Y = (a.Vel.Y*(a.mass-b.mass) + 2*b.mass*b.Vel.Y) / sum
	b.Vel.X = x + a.Vel.X
	b.Vel.Y = y + a.Vel.Y
}
