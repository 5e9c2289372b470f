package wfc

import (
	"container/heap"
	"fmt"

	"github.com/kelindar/bitmap"

	"github.com/hearthforge/tilekernel/gridgraph"
	"github.com/hearthforge/tilekernel/internal/kernelutil"
)

// Solve collapses initialWave into a fully determined width x height grid
// of pattern indices, using propagation to rule out neighbor patterns at
// each collapse and an entropy-ordered heap to decide collapse order.
// initialWave is never modified.
//
// Returns ErrBadShape on dimension mismatch, ErrBadValue if numPatterns is
// outside [1, MaxPatterns] or any cell's mask has bits beyond numPatterns
// or weights has the wrong length, ErrContradiction if propagation empties
// a cell or an iteration cap is reached, and ErrOutOfMemory if an
// allocation fails during solving.
func Solve(width, height, numPatterns int, propagation PropagationTable, weights []float64, initialWave Wave, seed uint64, opts ...Option) (grid [][]int, err error) {
	defer func() {
		if r := recover(); r != nil {
			if !gridgraph.IsAllocationPanic(r) {
				panic(r)
			}
			grid, err = nil, ErrOutOfMemory
		}
	}()

	if numPatterns < 1 || numPatterns > MaxPatterns {
		return nil, fmt.Errorf("wfc: %w: num_patterns=%d must be in [1,%d]", ErrBadValue, numPatterns, MaxPatterns)
	}
	if initialWave.Width != width || initialWave.Height != height {
		return nil, fmt.Errorf("wfc: %w: initial_wave=%dx%d want %dx%d",
			ErrBadShape, initialWave.Width, initialWave.Height, width, height)
	}
	if len(weights) != numPatterns {
		return nil, fmt.Errorf("wfc: %w: pattern_weights len=%d want %d", ErrBadValue, len(weights), numPatterns)
	}
	for _, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("wfc: %w: negative pattern weight %v", ErrBadValue, w)
		}
	}

	validMask := byte(1<<uint(numPatterns)) - 1
	for i, m := range initialWave.Cells {
		if m&^validMask != 0 {
			x, y := initialWave.coordinate(i)
			return nil, fmt.Errorf("wfc: %w: cell (%d,%d) mask %#02x has bits beyond num_patterns=%d",
				ErrBadValue, x, y, m, numPatterns)
		}
	}

	o := defaultSolveOptions()
	for _, opt := range opts {
		opt(&o)
	}

	wave := initialWave.clone()
	rng := kernelutil.NewRNG(seed)

	eh := &entropyHeap{}
	heap.Init(eh)
	var counter uint64
	uncollapsed := 0

	for i, m := range wave.Cells {
		if m == 0 {
			x, y := wave.coordinate(i)
			return nil, fmt.Errorf("wfc: %w: cell (%d,%d) has an empty mask", ErrContradiction, x, y)
		}
		if kernelutil.Popcount(m) > 1 {
			uncollapsed++
			heap.Push(eh, entropyEntry{entropy: entropyOf(m, weights, rng), counter: counter, idx: i})
			counter++
		}
	}

	outerCap := o.outerIterMultiplier * width * height
	propagateCap := o.propagateIterMultiplier * width * height

	outerIters := 0
	for uncollapsed > 0 {
		outerIters++
		if outerIters > outerCap {
			return nil, fmt.Errorf("wfc: %w: outer iteration cap (%d) reached with %d cells uncollapsed",
				ErrContradiction, outerCap, uncollapsed)
		}
		if eh.Len() == 0 {
			return nil, fmt.Errorf("wfc: %w: entropy heap exhausted with %d cells uncollapsed",
				ErrContradiction, uncollapsed)
		}

		entry := heap.Pop(eh).(entropyEntry)
		m := wave.Cells[entry.idx]
		if kernelutil.Popcount(m) <= 1 {
			// Collapsed or emptied since this entry was pushed; discard.
			continue
		}

		fresh := entropyOf(m, weights, rng)
		if diff := fresh - entry.entropy; diff > 0.01 || diff < -0.01 {
			heap.Push(eh, entropyEntry{entropy: fresh, counter: counter, idx: entry.idx})
			counter++
			continue
		}

		bit := weightedChoice(m, weights, rng)
		wave.Cells[entry.idx] = 1 << uint(bit)
		uncollapsed--

		if err := propagate(&wave, propagation, width, height, entry.idx, &uncollapsed, eh, &counter, weights, rng, propagateCap); err != nil {
			return nil, err
		}
	}

	grid = make([][]int, width)
	for x := range grid {
		grid[x] = make([]int, height)
	}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			m := wave.Cells[wave.index(x, y)]
			if kernelutil.Popcount(m) != 1 {
				return nil, fmt.Errorf("wfc: %w: cell (%d,%d) mask %#02x is not a single pattern after solving",
					ErrContradiction, x, y, m)
			}
			grid[x][y] = bitIndex(m)
		}
	}

	return grid, nil
}

// propagate runs constraint propagation outward from the just-collapsed
// cell at startIdx, using its own LIFO stack and in_stack flags per spec.md
// §4.3. A changed cell is re-pushed regardless of whether it collapsed to
// a single pattern, since a still-ambiguous narrowing can itself further
// constrain its neighbors.
func propagate(wave *Wave, propagation PropagationTable, width, height, startIdx int, uncollapsed *int, eh *entropyHeap, counter *uint64, weights []float64, rng *kernelutil.RNG, cap int) error {
	var inStack bitmap.Bitmap
	inStack.Grow(uint32(width*height - 1))
	stack := []int{startIdx}
	inStack.Set(uint32(startIdx))

	iters := 0
	for len(stack) > 0 {
		iters++
		if iters > cap {
			return fmt.Errorf("wfc: %w: propagation iteration cap (%d) reached", ErrContradiction, cap)
		}

		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		inStack.Clear(uint32(idx))

		sourceMask := wave.Cells[idx]
		sx, sy := wave.coordinate(idx)

		for dir, d := range dirDeltas {
			nx, ny := sx+d[0], sy+d[1]
			if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			nIdx := wave.index(nx, ny)
			neighborMask := wave.Cells[nIdx]
			if kernelutil.Popcount(neighborMask) <= 1 {
				continue
			}

			valid := propagation[dir][sourceMask]
			newMask := neighborMask & valid
			if newMask == neighborMask {
				continue
			}
			if newMask == 0 {
				return fmt.Errorf("wfc: %w: propagation emptied cell (%d,%d)", ErrContradiction, nx, ny)
			}

			wave.Cells[nIdx] = newMask
			if kernelutil.Popcount(newMask) > 1 {
				heap.Push(eh, entropyEntry{entropy: entropyOf(newMask, weights, rng), counter: *counter, idx: nIdx})
				*counter++
			} else {
				*uncollapsed--
			}

			if !inStack.Contains(uint32(nIdx)) {
				stack = append(stack, nIdx)
				inStack.Set(uint32(nIdx))
			}
		}
	}

	return nil
}

// bitIndex returns the position of mask's single set bit.
func bitIndex(mask byte) int {
	for i := 0; i < 8; i++ {
		if mask&(1<<uint(i)) != 0 {
			return i
		}
	}

	return -1
}
