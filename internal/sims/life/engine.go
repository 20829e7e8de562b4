package life

import "lifeterm/internal/core"

// NextState reports whether the cell at (x, y) is alive in the next
// generation. A live cell stops scanning as soon as its count passes the
// survival maximum, since more neighbours can only raise the count.
func NextState(g *core.Grid, x, y int, rules Rules) bool {
	alive := g.Alive(x, y)
	n := 0
	for neighbor := range g.Neighbors(x, y) {
		if neighbor {
			n++
		}
		if alive && n > rules.Survive.Max {
			return false
		}
	}
	return decide(alive, n, rules)
}

func decide(alive bool, n int, rules Rules) bool {
	if alive {
		return rules.Survive.Contains(n)
	}
	return rules.Birth.Contains(n)
}

// Advance computes the whole next generation. Every cell is evaluated against
// g, which is left untouched; the result is a new grid of the same size.
func Advance(g *core.Grid, rules Rules) *core.Grid {
	next := g.Blank()
	w, h := g.Width(), g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if NextState(g, x, y, rules) {
				next.Set(x, y, true)
			}
		}
	}
	return next
}
