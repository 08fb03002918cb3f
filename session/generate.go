package session

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/builder"
)

// Generator label values of gridpath_generations_total.
const (
	GeneratorMaze    = "maze"
	GeneratorUniform = "uniform"
	GeneratorShapes  = "shapes"
)

// GenerateMaze replaces the board with a perfect maze carved from seed.
func (s *Session) GenerateMaze(seed int64) error {
	return s.generate(GeneratorMaze, seed, nil, builder.Maze())
}

// GenerateObstaclesUniform makes every cell an obstacle with probability density.
func (s *Session) GenerateObstaclesUniform(seed int64, density float64) error {
	return s.generate(GeneratorUniform, seed, nil, builder.UniformObstacles(density))
}

// GenerateObstaclesShapes scatters Config.Shapes.Count shapes over a clear board.
func (s *Session) GenerateObstaclesShapes(seed int64) error {
	opts := []builder.BuilderOption{
		builder.WithShapeCount(s.cfg.Shapes.Count),
		builder.WithShapeLength(s.cfg.Shapes.Length),
		builder.WithLShapeLength(s.cfg.Shapes.LLength),
	}
	return s.generate(GeneratorShapes, seed, opts, builder.ShapeObstacles())
}

// generate clears obstacles and designations, then applies con.
// Rejected with gridgraph.ErrAlreadyRunning while a run holds the grid.
func (s *Session) generate(name string, seed int64, opts []builder.BuilderOption, con builder.Constructor) error {
	bopts := append([]builder.BuilderOption{builder.WithSeed(seed)}, opts...)
	if err := builder.Apply(s.grid, bopts, builder.Clear(), con); err != nil {
		return fmt.Errorf("session: generate %s: %w", name, err)
	}
	s.grid.ClearEndpoints()
	s.grid.ClearSearchState()

	s.metrics.generations.WithLabelValues(name).Inc()
	s.log.WithFields(logrus.Fields{
		"generator": name,
		"seed":      seed,
		"obstacles": s.grid.ObstacleCount(),
		"density":   s.grid.Density(),
	}).Info("board generated")

	return nil
}
