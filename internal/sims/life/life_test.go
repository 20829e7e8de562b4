package life

import (
	"testing"

	"lifeterm/internal/core"
)

func newGrid(t *testing.T, w, h int, live ...[2]int) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range live {
		g.Set(c[0], c[1], true)
	}
	return g
}

func expectCells(t *testing.T, g *core.Grid, label string, live ...[2]int) {
	t.Helper()
	expects := map[[2]int]bool{}
	for _, c := range live {
		expects[c] = true
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			alive := g.Alive(x, y)
			if expects[[2]int{x, y}] != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v\n%s", label, x, y, alive, !alive, g)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	sim := New(newGrid(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2}), Classic())

	sim.Step()
	expectCells(t, sim.Grid(), "after first step", [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	sim.Step()
	expectCells(t, sim.Grid(), "after second step", [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	if sim.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", sim.Generation())
	}
}

func TestBlockStillLife(t *testing.T) {
	block := [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	sim := New(newGrid(t, 6, 6, block...), Classic())
	for i := 0; i < 10; i++ {
		sim.Step()
		expectCells(t, sim.Grid(), "block", block...)
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	g := newGrid(t, 3, 3)
	next := Advance(g, Classic())
	if next.Population() != 0 {
		t.Fatalf("all-dead grid produced %d live cells", next.Population())
	}
}

func TestAdvancePreservesSizeAndInput(t *testing.T) {
	rng := core.NewRNG(3)
	for _, dims := range [][2]int{{1, 1}, {1, 7}, {9, 2}, {13, 11}} {
		g := newGrid(t, dims[0], dims[1])
		rng.Fill(g)
		before := g.Clone()
		next := Advance(g, Classic())
		if next.Width() != g.Width() || next.Height() != g.Height() {
			t.Fatalf("Advance changed size %dx%d -> %dx%d", g.Width(), g.Height(), next.Width(), next.Height())
		}
		if next == g {
			t.Fatal("Advance must return a new grid")
		}
		if !g.Equal(before) {
			t.Fatal("Advance mutated its input")
		}
	}
}

func TestAdvanceUsesSnapshot(t *testing.T) {
	// A glider only moves correctly when every cell reads the old generation.
	glider := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	g := newGrid(t, 8, 8, glider...)
	for i := 0; i < 4; i++ {
		g = Advance(g, Classic())
	}
	shifted := make([][2]int, len(glider))
	for i, c := range glider {
		shifted[i] = [2]int{c[0] + 1, c[1] + 1}
	}
	expectCells(t, g, "glider after 4 generations", shifted...)
}

func TestGliderWrapsAroundTorus(t *testing.T) {
	glider := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	g := newGrid(t, 6, 6, glider...)
	start := g.Clone()
	// Period 4, displacement (1,1); 24 generations brings it back home.
	for i := 0; i < 24; i++ {
		g = Advance(g, Classic())
	}
	if !g.Equal(start) {
		t.Fatalf("glider did not return after a full lap:\n%s", g)
	}
}

func TestCornerSeesOppositeCorner(t *testing.T) {
	// (0,0) has one ordinary neighbour at (1,0); it survives only if the
	// wrapped diagonal (W-1,H-1) is counted as the second.
	g := newGrid(t, 7, 5, [2]int{0, 0}, [2]int{1, 0})
	if NextState(g, 0, 0, Classic()) {
		t.Fatal("(0,0) with a single neighbour should die")
	}
	g.Set(6, 4, true)
	if !NextState(g, 0, 0, Classic()) {
		t.Fatal("(0,0) should count (W-1,H-1) as its above-left neighbour")
	}
}

func TestDegenerateGridsCountWrappedSelf(t *testing.T) {
	// A lone live cell on a 1x1 torus is its own eight neighbours.
	g := newGrid(t, 1, 1, [2]int{0, 0})
	if NextState(g, 0, 0, Classic()) {
		t.Fatal("1x1 live cell sees 8 neighbours and must die under S2-3")
	}
	if !NextState(g, 0, 0, Rules{Survive: Range{Min: 8, Max: 8}, Birth: Range{Min: 3, Max: 3}}) {
		t.Fatal("1x1 live cell should survive under S8")
	}

	// On a 2x1 grid the left and right neighbours are the same cell, and the
	// rows above and below are the cell's own row.
	g = newGrid(t, 2, 1, [2]int{1, 0})
	if got := fullScanCount(g, 0, 0); got != 6 {
		t.Fatalf("2x1 dead cell counts %d live neighbours, want 6", got)
	}
}

func TestLifeImplementsSim(t *testing.T) {
	var sim core.Sim = New(newGrid(t, 4, 3), Classic())
	if sim.Size() != (core.Size{W: 4, H: 3}) {
		t.Fatalf("size = %+v", sim.Size())
	}
	if len(sim.Cells()) != 12 {
		t.Fatalf("cells = %d, want 12", len(sim.Cells()))
	}
	if sim.Name() != "life S2-3/B3-3" {
		t.Fatalf("name = %q", sim.Name())
	}
}
