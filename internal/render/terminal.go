package render

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"lifeterm/internal/core"
	"lifeterm/internal/driver"
)

// TerminalOptions selects glyphs and colour for the terminal renderer.
type TerminalOptions struct {
	Alive  rune
	Dead   rune
	Color  tcell.Color
	Status bool
}

// DefaultTerminalOptions draws live cells as green full blocks.
func DefaultTerminalOptions() TerminalOptions {
	return TerminalOptions{Alive: '█', Dead: ' ', Color: tcell.ColorGreen, Status: true}
}

// Terminal draws generations onto a tcell screen with cell (x, y) at column
// x and row y. Cells beyond the screen are clipped.
type Terminal struct {
	screen tcell.Screen
	opts   TerminalOptions

	alive  tcell.Style
	dead   tcell.Style
	status tcell.Style
}

// NewTerminal wraps an initialized screen.
func NewTerminal(screen tcell.Screen, opts TerminalOptions) *Terminal {
	if opts.Alive == 0 {
		opts.Alive = '█'
	}
	if opts.Dead == 0 {
		opts.Dead = ' '
	}
	return &Terminal{
		screen: screen,
		opts:   opts,
		alive:  tcell.StyleDefault.Foreground(opts.Color),
		dead:   tcell.StyleDefault,
		status: tcell.StyleDefault.Reverse(true),
	}
}

// Render implements driver.Renderer.
func (t *Terminal) Render(g *core.Grid, st driver.Status) error {
	sw, sh := t.screen.Size()
	rows := g.Height()
	if t.opts.Status && rows > sh-1 {
		rows = sh - 1
	} else if rows > sh {
		rows = sh
	}
	cols := g.Width()
	if cols > sw {
		cols = sw
	}

	t.screen.Clear()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if g.Alive(x, y) {
				t.screen.SetContent(x, y, t.opts.Alive, nil, t.alive)
			} else {
				t.screen.SetContent(x, y, t.opts.Dead, nil, t.dead)
			}
		}
	}
	if t.opts.Status && rows >= 0 {
		t.drawText(0, rows, sw, statusLine(st))
	}
	t.screen.Show()
	return nil
}

func (t *Terminal) drawText(x, y, width int, s string) {
	for _, r := range s {
		if x >= width {
			return
		}
		t.screen.SetContent(x, y, r, nil, t.status)
		x++
	}
}

func statusLine(st driver.Status) string {
	s := fmt.Sprintf(" gen %d  pop %d  %s  %v ", st.Generation, st.Population, st.Rules, st.Interval)
	if st.Paused {
		s += "[paused] "
	}
	return s
}

// Commands translates key presses into driver commands until ctx is done,
// the screen is finalized, or the user quits.
func (t *Terminal) Commands(ctx context.Context, out chan<- driver.Command) error {
	stop := context.AfterFunc(ctx, func() {
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		ev := t.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			cmd, ok := keyCommand(ev)
			if !ok {
				continue
			}
			select {
			case out <- cmd:
			case <-ctx.Done():
				return nil
			}
			if cmd == driver.Quit {
				return nil
			}
		}
	}
}

func keyCommand(ev *tcell.EventKey) (driver.Command, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return driver.Quit, true
	case tcell.KeyUp:
		return driver.Faster, true
	case tcell.KeyDown:
		return driver.Slower, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return driver.Quit, true
		case '+', '=':
			return driver.Faster, true
		case '-', '_':
			return driver.Slower, true
		case ' ', 'p':
			return driver.TogglePause, true
		case 'n', 'N':
			return driver.Step, true
		}
	}
	return 0, false
}
