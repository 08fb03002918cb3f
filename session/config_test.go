package session_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/session"
)

func TestDefaultConfig(t *testing.T) {
	cfg := session.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 90, cfg.Width)
	assert.Equal(t, 40, cfg.Height)
	assert.Equal(t, 4, cfg.InitialCorridorWidth)
	assert.Equal(t, 10, cfg.MaxCorridorWidth)
	assert.Equal(t, 0.3, cfg.MazeDensityThreshold)
	assert.Equal(t, 0.3, cfg.ObstacleDensity)
	assert.Equal(t, session.ShapeConfig{Count: 20, Length: 5, LLength: 7}, cfg.Shapes)
}

func TestLoadConfig(t *testing.T) {
	doc := `
width: 30
height: 12
max_corridor_width: 6
shapes:
  count: 4
`
	cfg, err := session.LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)

	want := session.DefaultConfig()
	want.Width, want.Height = 30, 12
	want.MaxCorridorWidth = 6
	want.Shapes.Count = 4
	assert.Equal(t, want, cfg, "missing keys keep their defaults")
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := session.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, session.DefaultConfig(), cfg)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"UnknownKey":    "width: 10\ncolour: red\n",
		"BadType":       "width: wide\n",
		"ZeroHeight":    "height: 0\n",
		"NegativeWidth": "initial_corridor_width: -1\n",
		"Threshold":     "maze_density_threshold: 1.2\n",
		"Density":       "obstacle_density: -0.5\n",
		"ShapeLength":   "shapes:\n  length: 0\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := session.LoadConfig(strings.NewReader(doc))
			assert.ErrorIs(t, err, session.ErrInvalidConfig)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 16\nheight: 9\n"), 0o600))

	cfg, err := session.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Width)
	assert.Equal(t, 9, cfg.Height)

	_, err = session.LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
