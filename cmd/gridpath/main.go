// Command gridpath runs one incremental shortest-path search on a generated
// board and prints the result.
//
// Pipeline:
//  1. Load the YAML config (optional) and apply flag overrides.
//  2. Generate the board: maze, uniform fill, shapes or nothing.
//  3. Free and designate the endpoints, start the chosen algorithm.
//  4. Step it on a ticker (or back to back) until it is terminal; Ctrl-C
//     stops stepping.
//  5. Print the board with the path, or the walls to clear when no path
//     exists.
//
// Usage:
//
//	gridpath -gen maze -seed 7 -algo astar -tick 10ms -v
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/session"
)

type options struct {
	configPath string
	width      int
	height     int
	algo       string
	gen        string
	seed       int64
	density    float64
	start      string
	end        string
	corridor   int
	tick       time.Duration
	verbose    bool
	metrics    bool
}

func parseFlags(args []string) (options, *flag.FlagSet, error) {
	var o options
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "YAML config file")
	fs.IntVar(&o.width, "width", 0, "board width (overrides config)")
	fs.IntVar(&o.height, "height", 0, "board height (overrides config)")
	fs.StringVar(&o.algo, "algo", "astar", "search algorithm: dijkstra | astar")
	fs.StringVar(&o.gen, "gen", "shapes", "board generator: none | maze | uniform | shapes")
	fs.Int64Var(&o.seed, "seed", 1, "generator seed")
	fs.Float64Var(&o.density, "density", 0, "uniform obstacle density (overrides config)")
	fs.StringVar(&o.start, "start", "", "start cell x,y (default top-left)")
	fs.StringVar(&o.end, "end", "", "end cell x,y (default bottom-right)")
	fs.IntVar(&o.corridor, "corridor", 0, "initial A* corridor width (overrides config)")
	fs.DurationVar(&o.tick, "tick", 0, "delay between steps; 0 steps back to back")
	fs.BoolVar(&o.verbose, "v", false, "debug logging (one line per step)")
	fs.BoolVar(&o.metrics, "metrics", false, "print the session counters at exit")
	err := fs.Parse(args)
	return o, fs, err
}

// buildConfig loads the config file and applies every flag set explicitly.
func buildConfig(o options, fs *flag.FlagSet) (session.Config, error) {
	cfg := session.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = session.LoadConfigFile(o.configPath); err != nil {
			return cfg, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = o.width
		case "height":
			cfg.Height = o.height
		case "density":
			cfg.ObstacleDensity = o.density
		case "corridor":
			cfg.InitialCorridorWidth = o.corridor
		}
	})
	return cfg, cfg.Validate()
}

// parsePosition reads "x,y"; an empty string yields def.
func parsePosition(s string, def gridgraph.Position) (gridgraph.Position, error) {
	if s == "" {
		return def, nil
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return def, fmt.Errorf("position %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return def, fmt.Errorf("position %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return def, fmt.Errorf("position %q: %w", s, err)
	}
	return gridgraph.Position{X: x, Y: y}, nil
}

func generate(s *session.Session, o options) error {
	switch o.gen {
	case "none", "":
		return nil
	case "maze":
		return s.GenerateMaze(o.seed)
	case "uniform":
		return s.GenerateObstaclesUniform(o.seed, s.Config().ObstacleDensity)
	case "shapes":
		return s.GenerateObstaclesShapes(o.seed)
	}
	return fmt.Errorf("unknown generator %q", o.gen)
}

func main() {
	o, fs, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if o.verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(o, fs); err != nil {
		log.Fatal(err)
	}
}

func run(o options, fs *flag.FlagSet) error {
	cfg, err := buildConfig(o, fs)
	if err != nil {
		return err
	}
	algo, err := session.ParseAlgorithm(o.algo)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	s, err := session.New(cfg,
		session.WithLogger(log.WithField("component", "session")),
		session.WithRegisterer(reg),
	)
	if err != nil {
		return err
	}

	// 1) Board.
	if err = generate(s, o); err != nil {
		return err
	}

	// 2) Endpoints: default to opposite corners, always freed.
	start, err := parsePosition(o.start, gridgraph.Position{})
	if err != nil {
		return err
	}
	end, err := parsePosition(o.end, gridgraph.Position{X: cfg.Width - 1, Y: cfg.Height - 1})
	if err != nil {
		return err
	}
	for _, p := range []gridgraph.Position{start, end} {
		if err = s.SetObstacle(p, false); err != nil {
			return err
		}
	}
	if err = s.SetStart(start); err != nil {
		return err
	}
	if err = s.SetEnd(end); err != nil {
		return err
	}

	// 3) Run and drive.
	h, err := s.Run(algo)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st, err := s.Drive(ctx, h, o.tick, nil)
	if err != nil {
		if ctx.Err() != nil {
			log.WithField("state", st).Warn("interrupted")
			return nil
		}
		return err
	}

	// 4) Report.
	g := s.Grid()
	switch st {
	case search.Found:
		path, err := s.ReconstructPath(h)
		if err != nil {
			return err
		}
		fmt.Println(Render(g, path))
		log.WithFields(log.Fields{"algorithm": algo, "moves": len(path) - 1}).Info("path found")
	case search.Exhausted:
		breach, walls, err := g.MinBreach(start, end)
		if err != nil {
			return err
		}
		fmt.Println(Render(g, nil))
		log.WithFields(log.Fields{"algorithm": algo, "walls": walls, "via": breach}).
			Warn("no path; clearing these walls would open one")
	}
	if w, maze, ok, _ := s.Corridor(h); ok {
		log.WithFields(log.Fields{"corridor": w, "maze_mode": maze}).Info("corridor policy")
	}

	if o.metrics {
		return printMetrics(reg)
	}
	return nil
}

// printMetrics writes one line per counter sample of the session registry.
func printMetrics(reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Printf("%s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				fmt.Printf("%s_count{%s} %d\n", mf.GetName(), strings.Join(labels, ","), m.GetHistogram().GetSampleCount())
			}
		}
	}
	return nil
}
