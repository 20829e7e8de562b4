package render

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifeterm/internal/core"
	"lifeterm/internal/driver"
	"lifeterm/internal/sims/life"
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func screenRow(s tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestTerminalRender(t *testing.T) {
	s := simScreen(t, 20, 6)
	term := NewTerminal(s, DefaultTerminalOptions())

	g, _ := core.FromRows([][]uint8{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}})
	st := driver.Status{Generation: 4, Population: 3, Interval: 250 * time.Millisecond, Rules: life.Classic(), Paused: true}
	if err := term.Render(g, st); err != nil {
		t.Fatalf("Render: %v", err)
	}

	for y := 0; y < 3; y++ {
		if got := screenRow(s, y, 3); got != " █ " {
			t.Fatalf("row %d = %q, want %q", y, got, " █ ")
		}
	}
	_, _, style, _ := s.GetContent(1, 0)
	if fg, _, _ := style.Decompose(); fg != tcell.ColorGreen {
		t.Fatalf("live cell colour = %v, want green", fg)
	}

	status := screenRow(s, 3, 20)
	for _, want := range []string{"gen 4", "pop 3"} {
		if !strings.Contains(status, want) {
			t.Fatalf("status line %q missing %q", status, want)
		}
	}
}

func TestTerminalClipsToScreen(t *testing.T) {
	s := simScreen(t, 4, 3)
	term := NewTerminal(s, TerminalOptions{Alive: '#', Dead: '.', Color: tcell.ColorRed})

	g, _ := core.NewGrid(10, 10)
	for x := 0; x < 10; x++ {
		g.Set(x, 0, true)
	}
	if err := term.Render(g, driver.Status{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := screenRow(s, 0, 4); got != "####" {
		t.Fatalf("row 0 = %q", got)
	}
	if got := screenRow(s, 2, 4); got != "...." {
		t.Fatalf("row 2 = %q, want dead cells without a status line", got)
	}
}

func TestTerminalCommands(t *testing.T) {
	s := simScreen(t, 10, 5)
	term := NewTerminal(s, DefaultTerminalOptions())

	s.InjectKey(tcell.KeyRune, '+', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	s.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	out := make(chan driver.Command, 10)
	done := make(chan error, 1)
	go func() { done <- term.Commands(context.Background(), out) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Commands: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Commands did not return after quit")
	}
	close(out)

	var got []driver.Command
	for c := range out {
		got = append(got, c)
	}
	want := []driver.Command{driver.Faster, driver.TogglePause, driver.Step, driver.Slower, driver.Quit}
	if len(got) != len(want) {
		t.Fatalf("commands = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("commands = %v, want %v", got, want)
		}
	}
}

func TestTerminalCommandsStopOnCancel(t *testing.T) {
	s := simScreen(t, 10, 5)
	term := NewTerminal(s, DefaultTerminalOptions())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- term.Commands(ctx, make(chan driver.Command)) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Commands: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Commands did not return after cancel")
	}
}
