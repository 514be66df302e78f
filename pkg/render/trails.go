package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/RadeonGalwet/planets/pkg/simulation"
)

// Segment is one piece of a trail between two consecutive recorded
// positions. Life counts down once per Record.
type Segment struct {
	X0, Y0, X1, Y1 float64
	Life           int
	Color          color.RGBA
}

// Trails keeps a bounded, fading history of positions per body.
type Trails struct {
	MaxLife     int
	MaxSegments int

	segs [][]Segment
	last [][2]float64
}

func NewTrails(maxLife, maxSegments int) *Trails {
	return &Trails{MaxLife: maxLife, MaxSegments: maxSegments}
}

// Record extends every trail to the bodies' current positions and ages the
// existing segments. A change in body count starts the trails over.
func (t *Trails) Record(bodies []simulation.BodyView) {
	if len(t.last) != len(bodies) {
		t.Reset(bodies)
		return
	}
	for i, b := range bodies {
		trail := append(t.segs[i], Segment{
			X0: t.last[i][0], Y0: t.last[i][1],
			X1: b.X, Y1: b.Y,
			Life:  t.MaxLife + 1,
			Color: b.Color,
		})
		if len(trail) > t.MaxSegments {
			trail = trail[len(trail)-t.MaxSegments:]
		}

		kept := trail[:0]
		for _, s := range trail {
			s.Life--
			if s.Life > 0 {
				kept = append(kept, s)
			}
		}
		t.segs[i] = kept
		t.last[i] = [2]float64{b.X, b.Y}
	}
}

// Reset drops every segment and restarts from the given positions.
func (t *Trails) Reset(bodies []simulation.BodyView) {
	t.segs = make([][]Segment, len(bodies))
	t.last = make([][2]float64, len(bodies))
	for i, b := range bodies {
		t.last[i] = [2]float64{b.X, b.Y}
	}
}

// Segments returns the live trail of body i, oldest first.
func (t *Trails) Segments(i int) []Segment {
	if i < 0 || i >= len(t.segs) {
		return nil
	}
	return t.segs[i]
}

// Alpha fades a segment linearly with its remaining life.
func (t *Trails) Alpha(s Segment) uint8 {
	if t.MaxLife <= 0 {
		return 0
	}
	return uint8(255 * s.Life / t.MaxLife)
}

func DrawTrails(dst *ebiten.Image, t *Trails, vp Viewport) {
	for _, trail := range t.segs {
		for _, s := range trail {
			x0, y0 := vp.ToScreen(s.X0, s.Y0)
			x1, y1 := vp.ToScreen(s.X1, s.Y1)
			c := s.Color
			a := t.Alpha(s)
			// vector expects premultiplied alpha
			c = color.RGBA{
				R: uint8(uint32(c.R) * uint32(a) / 255),
				G: uint8(uint32(c.G) * uint32(a) / 255),
				B: uint8(uint32(c.B) * uint32(a) / 255),
				A: a,
			}
			vector.StrokeLine(dst, x0, y0, x1, y1, 1, c, true)
		}
	}
}
