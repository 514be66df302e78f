package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/RadeonGalwet/planets/pkg/render"
	"github.com/RadeonGalwet/planets/pkg/simulation"
)

const (
	screenWidth  = 500
	screenHeight = 600

	trailMaxLife     = 600 // ticks
	maxTrailSegments = 600
)

// Game drives the simulation from ebiten's loop. ebiten calls Update and
// Draw from the same goroutine, so the simulator is never touched
// concurrently.
type Game struct {
	sim      *simulation.Simulator
	scenario simulation.Scenario
	log      *slog.Logger

	vp         render.Viewport
	trails     *render.Trails
	showTrails bool
	paused     bool
}

func NewGame(sim *simulation.Simulator, sc simulation.Scenario, log *slog.Logger, trails bool) *Game {
	g := &Game{
		sim:        sim,
		scenario:   sc,
		log:        log,
		vp:         render.Viewport{Width: screenWidth, Height: screenHeight},
		trails:     render.NewTrails(trailMaxLife, maxTrailSegments),
		showTrails: trails,
	}
	g.trails.Reset(sim.Bodies())
	return g
}

// Update ---
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.showTrails = !g.showTrails
		g.trails.Reset(g.sim.Bodies())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(); err != nil {
			g.log.Error("reset failed", "err", err)
		}
		return nil
	}

	if g.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			g.advanceOneStep()
		}
		return nil
	}
	g.advanceOneStep()
	return nil
}

func (g *Game) advanceOneStep() {
	g.sim.Update()
	if g.showTrails {
		g.trails.Record(g.sim.Bodies())
	}
}

// reset rebuilds the simulator from the scenario it was started with,
// keeping the same colors.
func (g *Game) reset() error {
	sc := g.scenario
	sc.Seed = g.sim.Seed()
	sim, err := simulation.NewSimulator(sc, g.log)
	if err != nil {
		return err
	}
	g.sim = sim
	g.trails.Reset(sim.Bodies())
	g.log.Info("simulation reset", "scenario", sc.Name)
	return nil
}

// Draw ---
func (g *Game) Draw(screen *ebiten.Image) {
	render.Draw(screen, g.sim.Bodies(), g.vp)
	if g.showTrails {
		render.DrawTrails(screen, g.trails, g.vp)
	}
	render.DrawHUD(screen, render.HUD{
		Scenario: g.sim.Name(),
		Ticks:    g.sim.Ticks(),
		Bodies:   g.sim.Len(),
		Paused:   g.paused,
	})
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.ToUpper(s)))
	return l, err
}

// loadScenario resolves -config, then -env, then the built-in scenario.
func loadScenario(configPath, env, assets string) (simulation.Scenario, error) {
	switch {
	case configPath != "":
		return simulation.LoadScenario(configPath)
	case env != "":
		p, err := simulation.FindScenario(assets, env)
		if err != nil {
			return simulation.Scenario{}, err
		}
		return simulation.LoadScenario(p)
	default:
		return simulation.DefaultScenario(), nil
	}
}

func runHeadless(sim *simulation.Simulator, ticks int, tracePath string, log *slog.Logger) (err error) {
	var tracer *simulation.Tracer
	if tracePath != "" {
		f, ferr := os.Create(tracePath)
		if ferr != nil {
			return fmt.Errorf("creating trace: %w", ferr)
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		if tracer, err = simulation.NewTracer(f); err != nil {
			return err
		}
		if err := tracer.Record(sim); err != nil {
			return err
		}
	}

	for i := 0; i < ticks; i++ {
		sim.Update()
		if tracer != nil {
			if err := tracer.Record(sim); err != nil {
				return err
			}
		}
	}
	if tracer != nil {
		if err := tracer.Flush(); err != nil {
			return err
		}
	}

	for i, b := range sim.Bodies() {
		log.Info("body", "index", i, "x", b.X, "y", b.Y, "radius", b.Radius)
	}
	log.Info("headless run finished", "ticks", sim.Ticks())
	return nil
}

func main() {
	env := flag.String("env", "", "scenario name under -assets (e.g. planets, headon, cluster)")
	configPath := flag.String("config", "", "path to a scenario file (.json, .toml, .yaml)")
	assets := flag.String("assets", "pkg/assets", "directory searched by -env")
	seed := flag.Uint64("seed", 0, "color seed, 0 picks one from the clock")
	headless := flag.Bool("headless", false, "run without a window")
	ticks := flag.Int("ticks", 1000, "number of updates in headless mode")
	tracePath := flag.String("trace", "", "write a CSV trace of every tick (headless mode)")
	trails := flag.Bool("trails", true, "draw body trails")
	level := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	lvl, err := parseLevel(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q: %v\n", *level, err)
		os.Exit(2)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(log)

	sc, err := loadScenario(*configPath, *env, *assets)
	if err != nil {
		log.Error("loading scenario", "err", err)
		os.Exit(1)
	}
	if *seed != 0 {
		sc.Seed = *seed
	}

	sim, err := simulation.NewSimulator(sc, log)
	if err != nil {
		log.Error("building simulation", "err", err)
		os.Exit(1)
	}
	log.Info("simulation ready", "scenario", sim.Name(), "bodies", sim.Len(), "seed", sim.Seed())

	if *headless {
		if err := runHeadless(sim, *ticks, *tracePath, log); err != nil {
			log.Error("headless run", "err", err)
			os.Exit(1)
		}
		return
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Planets")
	if err := ebiten.RunGame(NewGame(sim, sc, log, *trails)); err != nil {
		log.Error("game loop", "err", err)
		os.Exit(1)
	}
}
