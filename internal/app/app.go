//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"time"

	"lifeterm/internal/core"
	"lifeterm/internal/driver"
	"lifeterm/internal/render"
	"lifeterm/internal/sims/life"
	"lifeterm/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Options configures the window front end.
type Options struct {
	Interval    time.Duration
	MinInterval time.Duration
	MaxInterval time.Duration
	// Iterations stops the game after this many generations; <= 0 runs until
	// the window closes.
	Iterations int
	Scale      int
	OnColor    color.Color
	// Status shows the side panel.
	Status bool
}

type rulesProvider interface {
	Rules() life.Rules
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	pace    *core.FixedStep
	opts    Options

	onColor  color.Color
	offColor color.Color

	frames   int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, opts Options) *Game {
	size := sim.Size()
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	on := opts.OnColor
	if on == nil {
		on = color.RGBA{G: 0xcc, A: 0xff}
	}
	var hud *ui.HUD
	if opts.Status {
		hud = ui.NewHUD()
	}
	return &Game{
		sim:      sim,
		hud:      hud,
		painter:  render.NewGridPainter(size.W, size.H),
		pace:     core.NewFixedStep(opts.Interval),
		opts:     opts,
		onColor:  on,
		offColor: color.Black,
	}
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.pace.SetInterval(max(g.pace.Interval()/2, g.opts.MinInterval))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.pace.SetInterval(min(g.pace.Interval()*2, g.opts.MaxInterval))
	}

	due := g.pace.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		if g.opts.Iterations > 0 && g.frames >= g.opts.Iterations {
			return ebiten.Termination
		}
		g.sim.Step()
		g.frames++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.opts.Scale)
	if g.hud != nil {
		size := g.sim.Size()
		g.hud.Draw(screen, size.W*g.opts.Scale, size.H*g.opts.Scale, g.status())
	}
}

func (g *Game) status() driver.Status {
	pop := 0
	for _, c := range g.sim.Cells() {
		pop += int(c)
	}
	st := driver.Status{
		Generation: g.sim.Generation(),
		Population: pop,
		Interval:   g.pace.Interval(),
		Paused:     g.paused,
	}
	if rp, ok := g.sim.(rulesProvider); ok {
		st.Rules = rp.Rules()
	}
	return st
}

func (g *Game) width() int {
	w := g.sim.Size().W * g.opts.Scale
	if g.hud != nil {
		w += ui.PanelWidth
	}
	return w
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width(), g.sim.Size().H * g.opts.Scale
}

// Run opens a window and blocks until it is closed.
func Run(sim core.Sim, opts Options) error {
	game := New(sim, opts)
	size := sim.Size()

	ebiten.SetWindowTitle(sim.Name())
	ebiten.SetWindowSize(game.width(), size.H*game.opts.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
