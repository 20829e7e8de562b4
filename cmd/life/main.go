// Command life runs a Life-like cellular automaton on a wrapping grid and
// draws it in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"lifeterm/internal/app"
	"lifeterm/internal/config"
	"lifeterm/internal/core"
	"lifeterm/internal/driver"
	"lifeterm/internal/render"
	"lifeterm/internal/seed"
	"lifeterm/internal/sims/life"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "life:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, err := config.Parse(flag.NewFlagSet("life", flag.ExitOnError), args)
	if err != nil {
		return err
	}
	if cfg.ListPresets {
		return listPresets(stdout)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DumpConfig {
		return cfg.WriteYAML(stdout)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	rules, err := cfg.Rules()
	if err != nil {
		return err
	}
	rngSeed := core.SeedOrNow(cfg.RNGSeed)
	grid, err := seed.Resolve(cfg.Seed, core.NewRNG(rngSeed))
	if err != nil {
		return err
	}
	sim := life.New(grid, rules)

	logger.Info("starting simulation",
		"rules", rules.String(),
		"width", grid.Width(),
		"height", grid.Height(),
		"population", grid.Population(),
		"renderer", cfg.Renderer,
		"rng_seed", rngSeed,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := driver.Options{
		Interval:    cfg.Interval,
		Iterations:  cfg.Iterations,
		MinInterval: cfg.Speed.MinInterval,
		MaxInterval: cfg.Speed.MaxInterval,
	}

	switch cfg.Renderer {
	case config.RendererWindow:
		return runWindow(cfg, sim)
	case config.RendererPlain:
		d := driver.New(sim, render.NewText(stdout, cfg.AliveRune(), cfg.DeadRune()), opts, logger)
		err = d.Run(ctx, nil)
		logger.Info("simulation finished", "summary", d.Summary())
		return err
	default:
		return runTerminal(ctx, cfg, sim, opts, logger)
	}
}

func runTerminal(ctx context.Context, cfg *config.Config, sim *life.Life, opts driver.Options, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	screen.HideCursor()

	term := render.NewTerminal(screen, render.TerminalOptions{
		Alive:  cfg.AliveRune(),
		Dead:   cfg.DeadRune(),
		Color:  cfg.Color(),
		Status: cfg.Display.Status,
	})
	d := driver.New(sim, term, opts, logger)
	cmds := make(chan driver.Command)

	g, gctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gctx)
	defer cancel()
	g.Go(func() error {
		defer cancel()
		return d.Run(runCtx, cmds)
	})
	g.Go(func() error {
		return term.Commands(runCtx, cmds)
	})
	err = g.Wait()
	screen.Fini()

	logger.Info("simulation finished", "summary", d.Summary())
	return err
}

func runWindow(cfg *config.Config, sim *life.Life) error {
	r, g, b := cfg.Color().RGB()
	err := app.Run(sim, app.Options{
		Interval:    cfg.Interval,
		MinInterval: cfg.Speed.MinInterval,
		MaxInterval: cfg.Speed.MaxInterval,
		Iterations:  cfg.Iterations,
		Scale:       cfg.Display.Scale,
		OnColor:     color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff},
		Status:      cfg.Display.Status,
	})
	if errors.Is(err, app.ErrNoWindow) {
		return fmt.Errorf("%w (use -renderer terminal or plain)", err)
	}
	return err
}

func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	out := io.Writer(os.Stderr)
	closeFn := func() {}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})), closeFn, nil
}

func listPresets(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range life.Presets() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.Rules, p.Description)
	}
	return tw.Flush()
}
