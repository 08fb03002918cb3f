// Package builder_test exercises the obstacle constructors through the
// public Apply/BuildGrid entry-points.
package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func seeded(seed int64) []builder.BuilderOption {
	return []builder.BuilderOption{builder.WithSeed(seed)}
}

// snapshot returns the obstacle flags in index order.
func snapshot(g *gridgraph.GridGraph) []bool {
	out := make([]bool, g.Len())
	for i := range out {
		out[i] = g.At(i).Obstacle
	}
	return out
}

func passable(g *gridgraph.GridGraph) int {
	return g.Len() - g.ObstacleCount()
}

// ------------------------------------------------------------------------
// Apply / BuildGrid
// ------------------------------------------------------------------------

func TestApply_Errors(t *testing.T) {
	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Clear()), builder.ErrConstructFailed)

	g, err := gridgraph.New(4, 4)
	require.NoError(t, err)
	assert.ErrorIs(t, builder.Apply(g, nil, builder.Clear(), nil), builder.ErrConstructFailed)

	_, err = g.Acquire()
	require.NoError(t, err)
	assert.ErrorIs(t, builder.Apply(g, seeded(1), builder.Maze()), gridgraph.ErrAlreadyRunning)
}

func TestBuildGrid_Errors(t *testing.T) {
	_, err := builder.BuildGrid(0, 5, nil)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = builder.BuildGrid(5, 5, nil, builder.Maze())
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGrid(5, 5, nil, builder.ShapeObstacles())
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestClear(t *testing.T) {
	g, err := builder.BuildGrid(10, 10, seeded(3), builder.UniformObstacles(0.5))
	require.NoError(t, err)
	require.Positive(t, g.ObstacleCount())

	require.NoError(t, builder.Apply(g, nil, builder.Clear()))
	assert.Zero(t, g.ObstacleCount())
}

// ------------------------------------------------------------------------
// Maze
// ------------------------------------------------------------------------

// TestMaze_Perfect checks the perfect-maze property: one component, and
// exactly passable-1 links between passable cells.
func TestMaze_Perfect(t *testing.T) {
	sizes := [][2]int{{1, 1}, {2, 2}, {5, 5}, {7, 4}, {21, 21}, {90, 40}, {1, 9}}
	for _, sz := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			name := fmt.Sprintf("%dx%d/seed%d", sz[0], sz[1], seed)
			t.Run(name, func(t *testing.T) {
				g, err := builder.BuildGrid(sz[0], sz[1], seeded(seed), builder.Maze())
				require.NoError(t, err)

				assert.Len(t, g.ConnectedComponents(), 1, "maze must be connected")
				assert.Equal(t, passable(g)-1, g.Links(), "maze must be a tree")
			})
		}
	}
}

// TestMaze_AllRoomsCarved: every cell with even coordinates is passable and
// every cell with both coordinates odd is a wall.
func TestMaze_AllRoomsCarved(t *testing.T) {
	g, err := builder.BuildGrid(15, 9, seeded(8), builder.Maze())
	require.NoError(t, err)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			blocked, err := g.IsObstacle(gridgraph.Position{X: x, Y: y})
			require.NoError(t, err)
			switch {
			case x%2 == 0 && y%2 == 0:
				assert.False(t, blocked, "room (%d,%d) not carved", x, y)
			case x%2 == 1 && y%2 == 1:
				assert.True(t, blocked, "pillar (%d,%d) carved", x, y)
			}
		}
	}
	// 8×5 rooms and 8·5-1 passages.
	assert.Equal(t, 8*5+8*5-1, passable(g))
}

func TestMaze_ReplacesBoard(t *testing.T) {
	a, err := builder.BuildGrid(11, 11, seeded(4), builder.Maze())
	require.NoError(t, err)
	b, err := builder.BuildGrid(11, 11, seeded(4), builder.UniformObstacles(1), builder.Maze())
	require.NoError(t, err)
	assert.Equal(t, snapshot(a), snapshot(b))
}

func TestMaze_Deterministic(t *testing.T) {
	a, err := builder.BuildGrid(31, 21, seeded(99), builder.Maze())
	require.NoError(t, err)
	b, err := builder.BuildGrid(31, 21, seeded(99), builder.Maze())
	require.NoError(t, err)
	assert.Equal(t, snapshot(a), snapshot(b))

	c, err := builder.BuildGrid(31, 21, seeded(100), builder.Maze())
	require.NoError(t, err)
	assert.NotEqual(t, snapshot(a), snapshot(c), "different seeds should differ")
}

// ------------------------------------------------------------------------
// UniformObstacles
// ------------------------------------------------------------------------

func TestUniform_Validation(t *testing.T) {
	g, err := gridgraph.New(5, 5)
	require.NoError(t, err)

	for _, p := range []float64{-0.1, 1.01} {
		assert.ErrorIs(t, builder.Apply(g, seeded(1), builder.UniformObstacles(p)), builder.ErrInvalidProbability)
	}
	assert.ErrorIs(t, builder.Apply(g, nil, builder.UniformObstacles(0.3)), builder.ErrNeedRandSource)

	// Degenerate probabilities need no random source.
	require.NoError(t, builder.Apply(g, nil, builder.UniformObstacles(1)))
	assert.Equal(t, g.Len(), g.ObstacleCount())
	require.NoError(t, builder.Apply(g, nil, builder.UniformObstacles(0)))
	assert.Zero(t, g.ObstacleCount())
}

func TestUniform_Density(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGrid(90, 40, seeded(seed), builder.UniformObstacles(0.3))
		require.NoError(t, err)
		assert.InDelta(t, 0.3, g.Density(), 0.03, "seed %d", seed)
	}
}

func TestUniform_Deterministic(t *testing.T) {
	a, err := builder.BuildGrid(40, 20, seeded(5), builder.UniformObstacles(0.3))
	require.NoError(t, err)
	b, err := builder.BuildGrid(40, 20, seeded(5), builder.UniformObstacles(0.3))
	require.NoError(t, err)
	assert.Equal(t, snapshot(a), snapshot(b))
}

// ------------------------------------------------------------------------
// ShapeObstacles
// ------------------------------------------------------------------------

func TestShapes_Bounded(t *testing.T) {
	g, err := builder.BuildGrid(90, 40, seeded(12), builder.ShapeObstacles())
	require.NoError(t, err)

	// Each shape blocks at most 3·5 cells (star) or 2·7 cells (L).
	assert.Positive(t, g.ObstacleCount())
	assert.LessOrEqual(t, g.ObstacleCount(), builder.DefaultShapeCount*3*builder.DefaultShapeLength)
}

func TestShapes_TinyGridAndCount(t *testing.T) {
	// Anchors collapse to the origin; arms are clipped.
	g, err := builder.BuildGrid(3, 3, seeded(2), builder.ShapeObstacles())
	require.NoError(t, err)
	blocked, err := g.IsObstacle(gridgraph.Position{X: 0, Y: 0})
	require.NoError(t, err)
	assert.True(t, blocked, "every shape starts at its anchor")

	g, err = builder.BuildGrid(20, 20, []builder.BuilderOption{builder.WithSeed(2), builder.WithShapeCount(0)},
		builder.ShapeObstacles())
	require.NoError(t, err)
	assert.Zero(t, g.ObstacleCount())
}

func TestShapes_SingleSegment(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithSeed(6),
		builder.WithShapeCount(1),
		builder.WithShapeLength(4),
		builder.WithLShapeLength(4),
	}
	g, err := builder.BuildGrid(30, 30, opts, builder.ShapeObstacles())
	require.NoError(t, err)

	// Any single shape with arms of 4 covers 4 (segment), 7 (L) or 10 (star) cells.
	assert.Contains(t, []int{4, 7, 10}, g.ObstacleCount())
}

func TestShapes_KeepExistingAndDeterministic(t *testing.T) {
	g, err := gridgraph.New(30, 20)
	require.NoError(t, err)
	corner := gridgraph.Position{X: 29, Y: 19}
	require.NoError(t, g.SetObstacle(corner, true))
	require.NoError(t, builder.Apply(g, seeded(21), builder.ShapeObstacles()))
	blocked, _ := g.IsObstacle(corner)
	assert.True(t, blocked)

	a, err := builder.BuildGrid(30, 20, seeded(21), builder.ShapeObstacles())
	require.NoError(t, err)
	b, err := builder.BuildGrid(30, 20, seeded(21), builder.ShapeObstacles())
	require.NoError(t, err)
	assert.Equal(t, snapshot(a), snapshot(b))
}
