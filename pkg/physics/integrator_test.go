package physics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/RadeonGalwet/planets/pkg/physics"
)

func threeBodies(t *testing.T) []physics.Body {
	return []physics.Body{
		mustBody(t, 150, 15, 15, -0.07, 0),
		mustBody(t, 225, 233, 15, 0.07, 0.07),
		mustBody(t, 300, 50, 2, 0.15, 0.15),
	}
}

func assertVec(t *testing.T, want, got r2.Vec, msg string) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, msg)
	assert.InDelta(t, want.Y, got.Y, 1e-9, msg)
}

func TestStep_SingleBody(t *testing.T) {
	for _, vel := range []r2.Vec{{}, {X: 3, Y: -1}} {
		bodies := []physics.Body{mustBody(t, 10, 20, 5, vel.X, vel.Y)}
		for i := 0; i < 100; i++ {
			assert.Zero(t, physics.Step(bodies))
		}
		assert.Equal(t, r2.Vec{X: 10, Y: 20}, bodies[0].Pos)
		assert.Equal(t, vel, bodies[0].Vel)
	}
}

func TestStep_ThreeBodiesOneTick(t *testing.T) {
	bodies := threeBodies(t)

	// none of the pairs is within 4*(m_a+m_b) at the start
	for i := range bodies {
		for j := range bodies {
			if i != j {
				assert.False(t, bodies[i].Collision(&bodies[j]))
			}
		}
	}

	assert.Zero(t, physics.Step(bodies))

	for i, want := range []struct{ pos, vel r2.Vec }{
		{r2.Vec{X: 149.86001771012496, Y: 15.000036858429878}, r2.Vec{X: -0.06998841082198334, Y: 1.9066877354077833e-05}},
		{r2.Vec{X: 225.1399890332796, Y: 233.13996128438728}, r2.Vec{X: 0.06999516201803566, Y: 0.06997906539698984}},
		{r2.Vec{X: 300.2993126224729, Y: 50.30003414616072}, r2.Vec{X: 0.1496199459609063, Y: 0.15010578804178143}},
	} {
		assertVec(t, want.pos, bodies[i].Pos, "position")
		assertVec(t, want.vel, bodies[i].Vel, "velocity")
	}
}

func TestStep_ThreeBodiesHundredTicks(t *testing.T) {
	bodies := threeBodies(t)
	for i := 0; i < 100; i++ {
		physics.Step(bodies)
	}
	for i, want := range []struct{ pos, vel r2.Vec }{
		{r2.Vec{X: 136.10803571504616, Y: 15.179202495755646}, r2.Vec{X: -0.06896162536001833, Y: 0.001713223549739022}},
		{r2.Vec{X: 238.95140504592715, Y: 246.80094570400348}, r2.Vec{X: 0.06952513345846834, Y: 0.06808143567435787}},
		{r2.Vec{X: 326.63020530418044, Y: 81.11710230922978}, r2.Vec{X: 0.11827207671055813, Y: 0.1616191238954992}},
	} {
		assertVec(t, want.pos, bodies[i].Pos, "position")
		assertVec(t, want.vel, bodies[i].Vel, "velocity")
	}
	for i, m := range []float64{15, 15, 2} {
		assert.Equal(t, m, bodies[i].Mass())
		assert.Equal(t, 2*m, bodies[i].Radius())
	}
}

func TestStep_HeadOnEqualMasses(t *testing.T) {
	// exactly at the threshold 4*(5+5) = 40
	bodies := []physics.Body{
		mustBody(t, -20, 0, 5, 1, 0),
		mustBody(t, 20, 0, 5, -1, 0),
	}
	assert.Equal(t, 1, physics.Step(bodies))
	assert.InDelta(t, -1, bodies[0].Vel.X, 1e-3)
	assert.InDelta(t, 1, bodies[1].Vel.X, 1e-3)
	assert.Zero(t, bodies[0].Vel.Y)
	assert.Zero(t, bodies[1].Vel.Y)
	assert.InDelta(t, -21.0, bodies[0].Pos.X, 1e-9)
	assert.InDelta(t, 21.000030116002378, bodies[1].Pos.X, 1e-9)
}
