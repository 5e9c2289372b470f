package wfc

import (
	"errors"
	"fmt"

	"github.com/hearthforge/tilekernel/gridgraph"
)

var (
	ErrBadShape    = gridgraph.ErrBadShape
	ErrOutOfBounds = gridgraph.ErrOutOfBounds
	ErrOutOfMemory = gridgraph.ErrOutOfMemory
	ErrBadValue    = gridgraph.ErrBadValue

	// ErrContradiction reports that propagation emptied a cell's mask, the
	// wave started with an empty mask, or an iteration cap was reached —
	// an expected outcome on over-constrained inputs, not a bug.
	ErrContradiction = errors.New("wfc: contradiction")
)

// MaxPatterns is the largest num_patterns Solve accepts; masks are single
// bytes, so patterns beyond the eighth bit cannot be represented.
const MaxPatterns = 8

// Direction indices into PropagationTable, matching the cardinal order
// every caller-supplied propagation_masks argument must use.
const (
	DirNorth = 0
	DirEast  = 1
	DirSouth = 2
	DirWest  = 3
)

var dirDeltas = [4][2]int{
	{0, -1}, // N
	{1, 0},  // E
	{0, 1},  // S
	{-1, 0}, // W
}

// PropagationTable[dir][sourceMask] gives the set of patterns a neighbor in
// direction dir may still hold given that the source cell's current mask is
// sourceMask. Indexed by the full byte value, not just single-bit masks,
// since propagation re-queues partially narrowed cells as sources too.
type PropagationTable [4][256]byte

// Wave is a width*height grid of pattern bitmasks, stored x-major:
// index = x*height + y, matching gridgraph's convention.
type Wave struct {
	Width, Height int
	Cells         []byte
}

// NewWave wraps a flat width*height buffer of pattern bitmasks.
func NewWave(width, height int, cells []byte) (Wave, error) {
	if width <= 0 || height <= 0 {
		return Wave{}, fmt.Errorf("wfc: %w: width=%d height=%d", ErrBadShape, width, height)
	}
	if len(cells) != width*height {
		return Wave{}, fmt.Errorf("wfc: %w: cells len=%d want %d", ErrBadShape, len(cells), width*height)
	}

	return Wave{Width: width, Height: height, Cells: cells}, nil
}

func (w Wave) index(x, y int) int {
	return x*w.Height + y
}

func (w Wave) coordinate(idx int) (x, y int) {
	return idx / w.Height, idx % w.Height
}

// clone returns an independent copy of w, so Solve never mutates the
// caller's initial_wave buffer.
func (w Wave) clone() Wave {
	cells := make([]byte, len(w.Cells))
	copy(cells, w.Cells)

	return Wave{Width: w.Width, Height: w.Height, Cells: cells}
}

// Option adjusts Solve's iteration caps above their spec-mandated floors.
// Options may only raise a cap, never lower it below the default.
type Option func(*solveOptions)

type solveOptions struct {
	outerIterMultiplier      int
	propagateIterMultiplier int
}

func defaultSolveOptions() solveOptions {
	return solveOptions{outerIterMultiplier: 2, propagateIterMultiplier: 10}
}

// WithMaxEntropyHeapCap raises the outer collapse-loop iteration cap from
// its default of 2*width*height to multiplier*width*height. Values at or
// below the default are ignored.
func WithMaxEntropyHeapCap(multiplier int) Option {
	return func(o *solveOptions) {
		if multiplier > o.outerIterMultiplier {
			o.outerIterMultiplier = multiplier
		}
	}
}

// WithMaxPropagationCap raises the per-propagation iteration cap from its
// default of 10*width*height to multiplier*width*height. Values at or below
// the default are ignored.
func WithMaxPropagationCap(multiplier int) Option {
	return func(o *solveOptions) {
		if multiplier > o.propagateIterMultiplier {
			o.propagateIterMultiplier = multiplier
		}
	}
}
