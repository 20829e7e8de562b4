// Package driver runs a Life simulation generation by generation and hands
// each grid to a renderer.
package driver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lifeterm/internal/core"
	"lifeterm/internal/sims/life"
	"lifeterm/internal/stats"
)

// Command is a runtime request from an input source.
type Command int

const (
	Quit Command = iota + 1
	Faster
	Slower
	TogglePause
	Step
)

func (c Command) String() string {
	switch c {
	case Quit:
		return "quit"
	case Faster:
		return "faster"
	case Slower:
		return "slower"
	case TogglePause:
		return "pause"
	case Step:
		return "step"
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// Status describes the frame being rendered.
type Status struct {
	Generation int
	Population int
	Interval   time.Duration
	Rules      life.Rules
	Paused     bool
}

// Renderer displays one generation.
type Renderer interface {
	Render(g *core.Grid, st Status) error
}

// Options controls pacing and run length.
type Options struct {
	Interval time.Duration
	// Iterations is the number of generations to render; <= 0 runs until
	// cancelled.
	Iterations  int
	MinInterval time.Duration
	MaxInterval time.Duration
}

// DefaultOptions mirrors the command-line defaults.
func DefaultOptions() Options {
	return Options{
		Interval:    core.DefaultInterval,
		Iterations:  -1,
		MinInterval: 10 * time.Millisecond,
		MaxInterval: 10 * time.Second,
	}
}

// Driver owns the simulation between generations.
type Driver struct {
	sim      *life.Life
	renderer Renderer
	opts     Options
	log      *slog.Logger

	interval time.Duration
	paused   bool
	shown    *core.Grid
	shownGen int
	tracker  stats.Tracker
}

// New constructs a Driver. A nil logger discards log output.
func New(sim *life.Life, r Renderer, opts Options, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.MinInterval <= 0 {
		opts.MinInterval = time.Millisecond
	}
	if opts.MaxInterval < opts.MinInterval {
		opts.MaxInterval = opts.MinInterval
	}
	d := &Driver{sim: sim, renderer: r, opts: opts, log: logger}
	d.interval = d.clamp(opts.Interval)
	return d
}

// Interval returns the current tick interval.
func (d *Driver) Interval() time.Duration { return d.interval }

// Paused reports whether generation advance is suspended.
func (d *Driver) Paused() bool { return d.paused }

// Summary aggregates the populations of every rendered generation.
func (d *Driver) Summary() stats.Summary { return d.tracker.Summary() }

// Run renders the current generation, advances, then waits one interval,
// until the iteration limit, a Quit command or ctx cancellation. Cancellation
// is a clean stop and returns nil. cmds may be nil.
func (d *Driver) Run(ctx context.Context, cmds <-chan Command) error {
	for frame := 0; d.opts.Iterations <= 0 || frame < d.opts.Iterations; frame++ {
		if ctx.Err() != nil {
			return nil
		}
		d.shown, d.shownGen = d.sim.Grid(), d.sim.Generation()
		d.tracker.Observe(d.shown.Population())
		if err := d.render(); err != nil {
			return err
		}
		d.sim.Step()
		if d.opts.Iterations > 0 && frame == d.opts.Iterations-1 {
			break
		}
		if stop := d.wait(ctx, cmds); stop {
			return nil
		}
	}
	d.log.Debug("iteration limit reached", "iterations", d.opts.Iterations)
	return nil
}

func (d *Driver) render() error {
	st := Status{
		Generation: d.shownGen,
		Population: d.shown.Population(),
		Interval:   d.interval,
		Rules:      d.sim.Rules(),
		Paused:     d.paused,
	}
	if err := d.renderer.Render(d.shown, st); err != nil {
		return fmt.Errorf("rendering generation %d: %w", d.shownGen, err)
	}
	return nil
}

// wait blocks until the next generation is due. It reports true when the
// run should stop.
func (d *Driver) wait(ctx context.Context, cmds <-chan Command) bool {
	timer := time.NewTimer(d.interval)
	defer timer.Stop()
	due := false
	for {
		select {
		case <-ctx.Done():
			return true
		case <-timer.C:
			if !d.paused {
				return false
			}
			due = true
		case cmd, ok := <-cmds:
			if !ok {
				cmds = nil
				continue
			}
			d.log.Debug("command", "cmd", cmd)
			switch cmd {
			case Quit:
				return true
			case Step:
				if d.paused {
					return false
				}
			case TogglePause:
				d.paused = !d.paused
				if !d.paused && due {
					return false
				}
				d.rerender()
			case Faster, Slower:
				d.adjust(cmd)
				if !d.paused {
					timer.Reset(d.interval)
				}
				d.rerender()
			}
		}
	}
}

// rerender refreshes the status of the frame already on screen. Errors are
// logged and otherwise ignored; the next frame will surface them.
func (d *Driver) rerender() {
	if err := d.render(); err != nil {
		d.log.Debug("status refresh failed", "error", err)
	}
}

func (d *Driver) adjust(cmd Command) {
	switch cmd {
	case Faster:
		d.interval = d.clamp(d.interval / 2)
	case Slower:
		d.interval = d.clamp(d.interval * 2)
	}
	d.log.Debug("interval changed", "interval", d.interval)
}

func (d *Driver) clamp(iv time.Duration) time.Duration {
	if iv <= 0 {
		iv = core.DefaultInterval
	}
	if iv < d.opts.MinInterval {
		return d.opts.MinInterval
	}
	if iv > d.opts.MaxInterval {
		return d.opts.MaxInterval
	}
	return iv
}
