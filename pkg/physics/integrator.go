package physics

// Step runs one tick over bodies in place and returns how many collision
// responses were applied.
//
// Every body a, in index order, visits every other body b in index order:
// a is pulled by b, bounces off b when they collide and then moves. Changes
// to b are visible when b's own turn comes later in the same pass, and a
// moves once per visited body, so the visiting order is part of the
// trajectory and must not be parallelized.
func Step(bodies []Body) int {
	collisions := 0
	for i := range bodies {
		a := &bodies[i]
		for j := range bodies {
			if i == j {
				continue
			}
			b := &bodies[j]
			a.Influence(b)
			if a.Collision(b) {
				Collide(a, b)
				collisions++
			}
			a.Movement()
		}
	}
	return collisions
}
