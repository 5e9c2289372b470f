package astar

import (
	"fmt"
	"math"

	"github.com/kelindar/bitmap"

	"github.com/hearthforge/tilekernel/gridgraph"
)

// diag8Offsets pairs each of the eight neighbor steps with its move
// multiplier: 1.0 for the four orthogonal steps, √2 for the four diagonals.
// Diagonals are unconditionally permitted; there is no corner-cutting check.
var diag8Offsets = [8]struct {
	dx, dy int
	mult   float64
}{
	{0, -1, 1}, {1, 0, 1}, {0, 1, 1}, {-1, 0, 1}, // N, E, S, W
	{1, -1, math.Sqrt2}, {1, 1, math.Sqrt2}, {-1, 1, math.Sqrt2}, {-1, -1, math.Sqrt2}, // NE, SE, SW, NW
}

// Astar returns the shortest path from (sx,sy) to (gx,gy) over cost, using
// weighted A* with an octile heuristic and eight-directional movement. The
// returned path excludes the start cell and includes the goal.
//
// Returns an empty, nil-error path when start equals goal, when either
// endpoint's cost is 0 (impassable), or when no path exists. Returns
// ErrOutOfBounds if any coordinate lies outside cost's grid, or
// ErrOutOfMemory if an allocation fails during the search.
//
// cost is never mutated. Complexity: O(E log V) where V = width*height and
// E ≤ 8V (each cell has at most eight neighbors).
func Astar(cost CostGrid, sx, sy, gx, gy int) (path []Point, err error) {
	defer func() {
		if r := recover(); r != nil {
			if !gridgraph.IsAllocationPanic(r) {
				panic(r)
			}
			path, err = nil, ErrOutOfMemory
		}
	}()

	if !cost.InBounds(sx, sy) || !cost.InBounds(gx, gy) {
		return nil, fmt.Errorf("astar: %w: start=(%d,%d) goal=(%d,%d) grid=%dx%d",
			ErrOutOfBounds, sx, sy, gx, gy, cost.Width, cost.Height)
	}

	if sx == gx && sy == gy {
		return nil, nil
	}
	if cost.At(sx, sy) == 0 || cost.At(gx, gy) == 0 {
		return nil, nil
	}

	n := cost.Len()
	startIdx := cost.Index(sx, sy)
	goalIdx := cost.Index(gx, gy)

	// Precompute per-axis goal-distance tables once, so neighbor expansion
	// is a lookup rather than a pair of abs() calls every time.
	dxTable := make([]int, cost.Width)
	for x := 0; x < cost.Width; x++ {
		dxTable[x] = absInt(x - gx)
	}
	dyTable := make([]int, cost.Height)
	for y := 0; y < cost.Height; y++ {
		dyTable[y] = absInt(y - gy)
	}

	g := make([]float64, n)
	for i := range g {
		g[i] = math.Inf(1)
	}
	g[startIdx] = 0

	pred := make([]int, n)
	for i := range pred {
		pred[i] = -1
	}

	var closed bitmap.Bitmap
	closed.Grow(uint32(n - 1))

	open := newOpenSet(n)
	open.push(startIdx, octileHeuristic(dxTable[sx], dyTable[sy]))

	for open.Len() > 0 {
		cur := open.popMin()
		if cur == goalIdx {
			return reconstructPath(cost, pred, startIdx, goalIdx), nil
		}
		closed.Set(uint32(cur))

		cx, cy := cost.Coordinate(cur)
		for _, d := range diag8Offsets {
			nx, ny := cx+d.dx, cy+d.dy
			if !cost.InBounds(nx, ny) {
				continue
			}
			nIdx := cost.Index(nx, ny)
			if closed.Contains(uint32(nIdx)) {
				continue
			}
			nCost := cost.At(nx, ny)
			if nCost == 0 {
				continue
			}

			tentativeG := g[cur] + float64(nCost)*d.mult
			if tentativeG >= g[nIdx] {
				continue
			}

			pred[nIdx] = cur
			g[nIdx] = tentativeG
			f := tentativeG + HeuristicWeight*octileHeuristic(dxTable[nx], dyTable[ny])

			if open.contains(nIdx) {
				if f < open.f[nIdx] {
					open.decreaseKey(nIdx, f)
				}
			} else {
				open.push(nIdx, f)
			}
		}
	}

	return nil, nil
}

// octileHeuristic computes h(dx,dy) = (dx+dy) + (√2−2)*min(dx,dy), the
// octile distance between two cells dx,dy apart on each axis.
func octileHeuristic(dx, dy int) float64 {
	minD := dx
	if dy < minD {
		minD = dy
	}

	return float64(dx+dy) + sqrt2Minus2*float64(minD)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// reconstructPath walks predecessors from goal to start and reverses the
// result, excluding the start cell per Astar's contract.
func reconstructPath(cost CostGrid, pred []int, startIdx, goalIdx int) []Point {
	var rev []Point
	for idx := goalIdx; idx != startIdx; idx = pred[idx] {
		x, y := cost.Coordinate(idx)
		rev = append(rev, Point{X: x, Y: y})
	}

	path := make([]Point, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}

	return path
}
