package simulation

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/RadeonGalwet/planets/pkg/physics"
)

// --- Simulator ---

// Simulator owns the bodies of one run. The set of bodies is fixed at
// construction; Update mutates them in place.
//
// A Simulator is not safe for concurrent use. Update and Bodies must be
// called from the same goroutine, or serialized by the caller.
type Simulator struct {
	name   string
	seed   uint64
	bodies []physics.Body
	ticks  uint64
	log    *slog.Logger
}

// BodyView is what a renderer needs to draw one body.
type BodyView struct {
	X, Y   float64
	Radius float64
	Color  color.RGBA
}

// NewSimulator builds the bodies described by sc. A zero seed draws the
// random colors from the clock. A nil logger uses slog.Default.
func NewSimulator(sc Scenario, log *slog.Logger) (*Simulator, error) {
	if len(sc.Bodies) == 0 {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, ErrNoBodies)
	}
	if log == nil {
		log = slog.Default()
	}

	seed := sc.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	bodies := make([]physics.Body, len(sc.Bodies))
	for i, b := range sc.Bodies {
		body, err := physics.NewBody(
			r2.Vec{X: b.Pos[0], Y: b.Pos[1]},
			r2.Vec{X: b.Vel[0], Y: b.Vel[1]},
			b.Mass,
			parseColor(b.Color, rng),
		)
		if err != nil {
			return nil, fmt.Errorf("scenario %q body %d: %w", sc.Name, i, err)
		}
		bodies[i] = body
	}

	return &Simulator{
		name:   sc.Name,
		seed:   seed,
		bodies: bodies,
		log:    log.With("scenario", sc.Name),
	}, nil
}

// Update advances the simulation by one tick.
func (s *Simulator) Update() {
	n := physics.Step(s.bodies)
	s.ticks++
	if n > 0 {
		s.log.Debug("collision", "tick", s.ticks, "count", n)
	}
}

// Bodies returns a copy of the drawable state, in body order.
func (s *Simulator) Bodies() []BodyView {
	views := make([]BodyView, len(s.bodies))
	for i := range s.bodies {
		b := &s.bodies[i]
		views[i] = BodyView{
			X:      b.Pos.X,
			Y:      b.Pos.Y,
			Radius: b.Radius(),
			Color:  b.Color,
		}
	}
	return views
}

// Body returns a copy of body i.
func (s *Simulator) Body(i int) physics.Body {
	return s.bodies[i]
}

func (s *Simulator) Len() int      { return len(s.bodies) }
func (s *Simulator) Ticks() uint64 { return s.ticks }
func (s *Simulator) Name() string  { return s.name }
func (s *Simulator) Seed() uint64  { return s.seed }
