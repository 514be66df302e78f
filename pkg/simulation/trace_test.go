package simulation_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RadeonGalwet/planets/pkg/simulation"
)

func TestTracer(t *testing.T) {
	sim, err := simulation.NewSimulator(simulation.Scenario{
		Seed: 1,
		Bodies: []simulation.BodyConfig{
			{Pos: [2]float64{1, 2}, Vel: [2]float64{0.5, 0}, Mass: 1},
		},
	}, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	tr, err := simulation.NewTracer(&buf)
	require.NoError(t, err)
	require.NoError(t, tr.Record(sim))
	sim.Update()
	require.NoError(t, tr.Record(sim))
	require.NoError(t, tr.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"tick,index,x,y,vx,vy",
		"0,0,1,2,0.5,0",
		"1,0,1,2,0.5,0",
	}, lines)
}
