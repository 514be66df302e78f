package simulation

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Tracer writes the state of every body after each tick as CSV rows of
// tick,index,x,y,vx,vy.
type Tracer struct {
	w *csv.Writer
}

func NewTracer(w io.Writer) (*Tracer, error) {
	t := &Tracer{w: csv.NewWriter(w)}
	if err := t.w.Write([]string{"tick", "index", "x", "y", "vx", "vy"}); err != nil {
		return nil, fmt.Errorf("writing trace header: %w", err)
	}
	return t, nil
}

// Record appends one row per body of s at its current tick.
func (t *Tracer) Record(s *Simulator) error {
	tick := strconv.FormatUint(s.Ticks(), 10)
	for i := range s.bodies {
		b := &s.bodies[i]
		row := []string{
			tick,
			strconv.Itoa(i),
			formatFloat(b.Pos.X),
			formatFloat(b.Pos.Y),
			formatFloat(b.Vel.X),
			formatFloat(b.Vel.Y),
		}
		if err := t.w.Write(row); err != nil {
			return fmt.Errorf("writing trace row: %w", err)
		}
	}
	return nil
}

func (t *Tracer) Flush() error {
	t.w.Flush()
	return t.w.Error()
}

// formatFloat keeps the shortest representation that round-trips.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
