package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract front ends use to drive an automaton one generation at
// a time.
type Sim interface {
	Name() string
	Size() Size
	Step()
	Cells() []uint8
	Generation() int
}
