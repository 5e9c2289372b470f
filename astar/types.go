package astar

import (
	"fmt"
	"math"

	"github.com/hearthforge/tilekernel/gridgraph"
)

// HeuristicWeight inflates the octile heuristic, trading a bounded-
// suboptimal path (by this factor) for fewer node expansions in dense
// obstacle maps. Spec-pinned: do not change without updating the tests
// that assert path lengths against it.
const HeuristicWeight = 1.01

// sqrt2Minus2 is the octile distance coefficient (√2 − 2), precomputed
// once rather than recomputed per neighbor expansion.
var sqrt2Minus2 = math.Sqrt2 - 2

// Sentinel errors returned by Astar, re-exported from gridgraph so callers
// never need to import gridgraph just to compare errors.
var (
	// ErrOutOfBounds indicates sx,sy,gx, or gy lies outside the grid.
	ErrOutOfBounds = gridgraph.ErrOutOfBounds
	// ErrBadShape indicates the cost buffer's length doesn't match width*height.
	ErrBadShape = gridgraph.ErrBadShape
	// ErrOutOfMemory indicates an allocation failure during the search.
	ErrOutOfMemory = gridgraph.ErrOutOfMemory
)

// Point is a single grid coordinate in a returned path.
type Point struct {
	X, Y int
}

// CostGrid is a read-only view over a caller-owned flat int16 cost buffer.
// Value 0 means impassable; any positive value is the per-step traversal
// weight entering that cell. Negative values are undefined behavior per
// spec.md §3 and are not validated here.
type CostGrid struct {
	gridgraph.Grid
	Cost []int16
}

// NewCostGrid validates width, height, and that len(cost) == width*height,
// then returns a CostGrid viewing cost directly (no copy — Astar never
// mutates it, so sharing the caller's backing array is safe).
// Complexity: O(1).
func NewCostGrid(width, height int, cost []int16) (CostGrid, error) {
	g, err := gridgraph.NewGrid(width, height)
	if err != nil {
		return CostGrid{}, err
	}
	if len(cost) != g.Len() {
		return CostGrid{}, fmt.Errorf("astar: %w: cost has %d elements, want %d", gridgraph.ErrBadShape, len(cost), g.Len())
	}

	return CostGrid{Grid: g, Cost: cost}, nil
}

// At returns the traversal cost of entering (x,y). Callers must check
// InBounds first; At does not validate its input.
// Complexity: O(1).
func (c CostGrid) At(x, y int) int16 {
	return c.Cost[c.Index(x, y)]
}
