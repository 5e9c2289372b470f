// Package gridgraph defines the sentinel error taxonomy shared by every
// kernel in this module, plus the Connectivity enum used to describe
// neighbor geometry over a Grid.
package gridgraph

import "errors"

// Sentinel errors shared across the pathfinding, FOV, and WFC kernels.
// Each kernel wraps these with fmt.Errorf("%w: ...") for call-site context.
var (
	// ErrBadShape indicates an input buffer's declared or actual dimensions
	// are invalid (non-positive width/height, or a buffer whose length does
	// not match width*height).
	ErrBadShape = errors.New("gridgraph: bad shape")
	// ErrOutOfBounds indicates a coordinate argument lies outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrOutOfMemory indicates an allocation failure during the call.
	ErrOutOfMemory = errors.New("gridgraph: allocation failed")
	// ErrBadValue indicates a cell value violates its documented domain
	// (e.g. a wave mask with bits set outside num_patterns).
	ErrBadValue = errors.New("gridgraph: value out of domain")
)

// Connectivity selects which neighbor offsets NeighborOffsets returns.
type Connectivity int

const (
	// Conn4 selects the four orthogonal neighbors: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 selects all eight neighbors, orthogonal and diagonal.
	Conn8
)

// Grid is an immutable (width, height) pair. It owns no cell storage —
// callers hold their own flat buffers — and exists only to centralize
// bounds checks and the x-major linear indexing convention every kernel
// shares.
type Grid struct {
	Width, Height int
}
