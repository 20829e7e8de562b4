package render

import (
	"fmt"
	"io"
	"strings"

	"lifeterm/internal/core"
	"lifeterm/internal/driver"
)

// Text writes each generation as plain rows, preceded by a header line.
type Text struct {
	w     io.Writer
	alive rune
	dead  rune
}

// NewText returns a renderer writing to w.
func NewText(w io.Writer, alive, dead rune) *Text {
	return &Text{w: w, alive: alive, dead: dead}
}

// Render implements driver.Renderer.
func (t *Text) Render(g *core.Grid, st driver.Status) error {
	var b strings.Builder
	fmt.Fprintf(&b, "-- gen %d pop %d %s\n", st.Generation, st.Population, st.Rules)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Alive(x, y) {
				b.WriteRune(t.alive)
			} else {
				b.WriteRune(t.dead)
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(t.w, b.String())
	return err
}
