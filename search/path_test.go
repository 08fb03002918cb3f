package search_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

func TestValidateEndpoints(t *testing.T) {
	g, err := gridgraph.New(4, 4)
	require.NoError(t, err)
	require.NoError(t, g.SetObstacle(gridgraph.Position{X: 2, Y: 2}, true))

	cases := []struct {
		name       string
		start, end gridgraph.Position
		wantErr    error
	}{
		{"Valid", gridgraph.Position{X: 0, Y: 0}, gridgraph.Position{X: 3, Y: 3}, nil},
		{"SameCell", gridgraph.Position{X: 1, Y: 1}, gridgraph.Position{X: 1, Y: 1}, nil},
		{"StartOutside", gridgraph.Position{X: -1, Y: 0}, gridgraph.Position{X: 3, Y: 3}, gridgraph.ErrOutOfBounds},
		{"EndOutside", gridgraph.Position{X: 0, Y: 0}, gridgraph.Position{X: 4, Y: 0}, gridgraph.ErrOutOfBounds},
		{"StartBlocked", gridgraph.Position{X: 2, Y: 2}, gridgraph.Position{X: 3, Y: 3}, search.ErrInvalidEndpoints},
		{"EndBlocked", gridgraph.Position{X: 0, Y: 0}, gridgraph.Position{X: 2, Y: 2}, search.ErrInvalidEndpoints},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := search.ValidateEndpoints(g, tc.start, tc.end)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, search.ErrInvalidEndpoints)
		})
	}

	_, _, err = search.ValidateEndpoints(nil, gridgraph.Position{}, gridgraph.Position{})
	assert.True(t, errors.Is(err, search.ErrInvalidEndpoints))
}

func TestReconstructPath(t *testing.T) {
	g, err := gridgraph.New(3, 1)
	require.NoError(t, err)
	// 0 ← 1 ← 2
	g.At(1).Pred = 0
	g.At(2).Pred = 1

	assert.Equal(t, []gridgraph.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, search.ReconstructPath(g, 0, 2))
	assert.Equal(t, []gridgraph.Position{{X: 0, Y: 0}}, search.ReconstructPath(g, 0, 0))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", search.Idle.String())
	assert.Equal(t, "running", search.Running.String())
	assert.Equal(t, "found", search.Found.String())
	assert.Equal(t, "exhausted", search.Exhausted.String())
	assert.Equal(t, "unknown", search.State(42).String())

	assert.False(t, search.Running.Terminal())
	assert.True(t, search.Found.Terminal())
	assert.True(t, search.Exhausted.Terminal())
}

// countdown is a Stepper that finishes Found after n steps.
type countdown struct {
	n, steps int
	state    search.State
	fail     error
}

func (c *countdown) Step() (search.StepResult, error) {
	if c.fail != nil {
		return search.StepResult{State: c.state}, c.fail
	}
	c.steps++
	if c.steps >= c.n {
		c.state = search.Found
	}
	return search.StepResult{Finalized: true, State: c.state}, nil
}
func (c *countdown) State() search.State                 { return c.state }
func (c *countdown) Path() ([]gridgraph.Position, error) { return nil, search.ErrNotTerminal }
func (c *countdown) Cost() (int, error)                  { return 0, search.ErrNotTerminal }

func TestDrain(t *testing.T) {
	c := &countdown{n: 5, state: search.Running}
	res, steps, err := search.Drain(c, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, steps, "limit stops early")
	assert.Equal(t, search.Running, res.State)

	res, steps, err = search.Drain(c, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, steps)
	assert.Equal(t, search.Found, res.State)

	res, steps, err = search.Drain(c, 0)
	require.NoError(t, err)
	assert.Zero(t, steps, "already terminal")
	assert.Equal(t, search.Found, res.State)

	failing := &countdown{n: 5, state: search.Running, fail: search.ErrAborted}
	_, steps, err = search.Drain(failing, 0)
	assert.ErrorIs(t, err, search.ErrAborted)
	assert.Equal(t, 1, steps)
}
