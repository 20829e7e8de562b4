package core

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	// ErrEmptyGrid is returned when a grid would have no rows or no columns.
	ErrEmptyGrid = errors.New("grid has zero width or height")
	// ErrJaggedGrid is returned when seed rows differ in length.
	ErrJaggedGrid = errors.New("grid rows differ in length")
)

// Grid stores one generation of binary cell states in row-major order. The
// edges wrap, so the grid behaves as a torus.
type Grid struct {
	w, h int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, w, h)
	}
	return &Grid{w: w, h: h, data: make([]uint8, w*h)}, nil
}

// FromRows builds a grid from rows of cell values. Any non-zero value is
// stored as alive.
func FromRows(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrJaggedGrid, y, len(row), w)
		}
	}
	g := &Grid{w: w, h: len(rows), data: make([]uint8, w*len(rows))}
	for y, row := range rows {
		for x, v := range row {
			if v != 0 {
				g.data[y*w+x] = 1
			}
		}
	}
	return g, nil
}

// newSized allocates without validation; callers guarantee positive sizes.
func newSized(w, h int) *Grid {
	return &Grid{w: w, h: h, data: make([]uint8, w*h)}
}

// Blank returns an all-dead grid with the same dimensions as g.
func (g *Grid) Blank() *Grid { return newSized(g.w, g.h) }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice (0 dead, 1 alive). Callers must treat it as
// read-only once the grid has been handed to the engine.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Cell returns 1 when the cell at (x, y) is alive and 0 otherwise.
func (g *Grid) Cell(x, y int) uint8 { return g.data[y*g.w+x] }

// Alive reports whether the cell at (x, y) is alive.
func (g *Grid) Alive(x, y int) bool { return g.data[y*g.w+x] != 0 }

// Set marks the cell at (x, y). It is meant for seeding, before evaluation.
func (g *Grid) Set(x, y int, alive bool) {
	var v uint8
	if alive {
		v = 1
	}
	g.data[y*g.w+x] = v
}

// Up returns the row above y, wrapping from the top edge to the bottom.
func (g *Grid) Up(y int) int {
	if y > 0 {
		return y - 1
	}
	return g.h - 1
}

// Down returns the row below y, wrapping from the bottom edge to the top.
func (g *Grid) Down(y int) int {
	if y < g.h-1 {
		return y + 1
	}
	return 0
}

// Left returns the column left of x, wrapping from the left edge to the right.
func (g *Grid) Left(x int) int {
	if x > 0 {
		return x - 1
	}
	return g.w - 1
}

// Right returns the column right of x, wrapping from the right edge to the left.
func (g *Grid) Right(x int) int {
	if x < g.w-1 {
		return x + 1
	}
	return 0
}

// Neighbors yields the eight neighbour states of (x, y) in the order
// above-left, above, above-right, left, right, below-left, below, below-right.
// On grids narrower or shorter than three cells the same cell, including
// (x, y) itself, can appear more than once.
func (g *Grid) Neighbors(x, y int) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		up, down := g.Up(y), g.Down(y)
		left, right := g.Left(x), g.Right(x)
		coords := [8][2]int{
			{left, up}, {x, up}, {right, up},
			{left, y}, {right, y},
			{left, down}, {x, down}, {right, down},
		}
		for _, c := range coords {
			if !yield(g.data[c[1]*g.w+c[0]] != 0) {
				return
			}
		}
	}
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := newSized(g.w, g.h)
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// String renders the grid as rows of 0 and 1 separated by newlines.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for y := 0; y < g.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.w; x++ {
			b.WriteByte('0' + g.data[y*g.w+x])
		}
	}
	return b.String()
}
