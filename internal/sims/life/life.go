package life

import "lifeterm/internal/core"

// Life owns the current generation of a generalized Game of Life.
type Life struct {
	grid  *core.Grid
	rules Rules
	gen   int
}

// New returns a simulation starting from g under rules. The simulation takes
// ownership of g.
func New(g *core.Grid, rules Rules) *Life {
	return &Life{grid: g, rules: rules}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life " + l.rules.String() }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// Grid returns the current generation. Callers must not modify it.
func (l *Life) Grid() *core.Grid { return l.grid }

// Rules returns the rule in effect.
func (l *Life) Rules() Rules { return l.rules }

// Generation counts the steps taken since construction.
func (l *Life) Generation() int { return l.gen }

// Step replaces the current grid with the next generation.
func (l *Life) Step() {
	l.grid = Advance(l.grid, l.rules)
	l.gen++
}
