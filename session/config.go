package session

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/builder"
)

// Config holds the board size and the search and generator tunables.
// Zero values are not defaults; start from DefaultConfig.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	InitialCorridorWidth int     `yaml:"initial_corridor_width"`
	MaxCorridorWidth     int     `yaml:"max_corridor_width"`
	MazeDensityThreshold float64 `yaml:"maze_density_threshold"`

	ObstacleDensity float64     `yaml:"obstacle_density"`
	Shapes          ShapeConfig `yaml:"shapes"`
}

// ShapeConfig controls GenerateObstaclesShapes.
type ShapeConfig struct {
	Count   int `yaml:"count"`
	Length  int `yaml:"length"`
	LLength int `yaml:"l_length"`
}

const (
	DefaultWidth           = 90
	DefaultHeight          = 40
	DefaultObstacleDensity = 0.3
)

// DefaultConfig returns a 90×40 board, corridor width 4 widening up to 10,
// maze threshold 0.3, uniform density 0.3 and 20 shapes of length 5 (L arms 7).
func DefaultConfig() Config {
	return Config{
		Width:                DefaultWidth,
		Height:               DefaultHeight,
		InitialCorridorWidth: astar.DefaultCorridorWidth,
		MaxCorridorWidth:     astar.MaxCorridorWidth,
		MazeDensityThreshold: astar.MazeDensityThreshold,
		ObstacleDensity:      DefaultObstacleDensity,
		Shapes: ShapeConfig{
			Count:   builder.DefaultShapeCount,
			Length:  builder.DefaultShapeLength,
			LLength: builder.DefaultLShapeLength,
		},
	}
}

// Validate reports the first out-of-range field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: board %dx%d must be at least 1x1", ErrInvalidConfig, c.Width, c.Height)
	case c.InitialCorridorWidth < 0:
		return fmt.Errorf("%w: initial_corridor_width %d < 0", ErrInvalidConfig, c.InitialCorridorWidth)
	case c.MaxCorridorWidth < 0:
		return fmt.Errorf("%w: max_corridor_width %d < 0", ErrInvalidConfig, c.MaxCorridorWidth)
	case c.MazeDensityThreshold < 0 || c.MazeDensityThreshold > 1:
		return fmt.Errorf("%w: maze_density_threshold %g not in [0,1]", ErrInvalidConfig, c.MazeDensityThreshold)
	case c.ObstacleDensity < 0 || c.ObstacleDensity > 1:
		return fmt.Errorf("%w: obstacle_density %g not in [0,1]", ErrInvalidConfig, c.ObstacleDensity)
	case c.Shapes.Count < 0:
		return fmt.Errorf("%w: shapes.count %d < 0", ErrInvalidConfig, c.Shapes.Count)
	case c.Shapes.Length < 1 || c.Shapes.LLength < 1:
		return fmt.Errorf("%w: shape lengths %d/%d must be positive", ErrInvalidConfig, c.Shapes.Length, c.Shapes.LLength)
	}
	return nil
}

// LoadConfig decodes YAML from r on top of DefaultConfig and validates the
// result. Unknown keys are rejected; an empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("session: LoadConfig: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("session: LoadConfig: %w", err)
	}

	return cfg, nil
}

// LoadConfigFile opens path and calls LoadConfig.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("session: LoadConfigFile: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}
