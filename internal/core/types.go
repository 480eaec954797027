package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}
