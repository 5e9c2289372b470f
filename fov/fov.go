package fov

import (
	"fmt"

	"github.com/hearthforge/tilekernel/gridgraph"
)

// quadrant holds the integer transform from a (column, depth) pair in one
// of the four cardinal sweep directions to a world tile offset from the
// origin: world = (ox + col*cx + depth*dx, oy + col*cy + depth*dy).
type quadrant struct {
	cx, dx, cy, dy int
}

var quadrants = [4]quadrant{
	{cx: 1, dx: 0, cy: 0, dy: -1}, // north
	{cx: 0, dx: 1, cy: 1, dy: 0},  // east
	{cx: 1, dx: 0, cy: 0, dy: 1},  // south
	{cx: 0, dx: -1, cy: 1, dy: 0}, // west
}

// sector is one frame of the per-quadrant shadowcasting stack: the ray
// depth being swept and the start/end slopes bounding it, stored as signed
// rationals to keep the symmetric-visibility guarantee exact.
type sector struct {
	depth      int
	sNum, sDen int
	eNum, eDen int
}

// Fov clears visible to 0, marks the origin visible if in bounds, then
// marks every cell lit by symmetric shadowcasting from (ox,oy) out to
// radius under transparent's opacity. transparent is never modified.
//
// Returns ErrBadShape if transparent and visible differ in width or
// height, or ErrOutOfMemory if an allocation fails during the sweep.
func Fov(transparent, visible ByteGrid, ox, oy, radius int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if !gridgraph.IsAllocationPanic(r) {
				panic(r)
			}
			err = ErrOutOfMemory
		}
	}()

	if transparent.Width != visible.Width || transparent.Height != visible.Height {
		return fmt.Errorf("fov: %w: transparent=%dx%d visible=%dx%d",
			ErrBadShape, transparent.Width, transparent.Height, visible.Width, visible.Height)
	}

	for y := 0; y < visible.Height; y++ {
		for x := 0; x < visible.Width; x++ {
			visible.set(x, y, 0)
		}
	}

	if transparent.InBounds(ox, oy) {
		visible.set(ox, oy, 1)
	}

	if radius < 0 {
		return nil
	}

	for _, q := range quadrants {
		stack := []sector{{depth: 1, sNum: -1, sDen: 1, eNum: 1, eDen: 1}}
		for len(stack) > 0 {
			sec := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if sec.depth > radius {
				continue
			}
			stack = sweepSector(transparent, visible, ox, oy, q, sec, stack)
		}
	}

	return nil
}

// sweepSector walks one row of a quadrant's sweep at sec.depth, marking
// visible tiles and pushing any child sectors spawned by wall/floor
// transitions onto stack, which it returns.
func sweepSector(transparent, visible ByteGrid, ox, oy int, q quadrant, sec sector, stack []sector) []sector {
	minCol := floorDiv(2*sec.depth*sec.sNum+sec.sDen, 2*sec.sDen)
	maxCol := ceilDiv(2*sec.depth*sec.eNum-sec.eDen, 2*sec.eDen)

	sNum, sDen := sec.sNum, sec.sDen
	havePrev := false
	prevWall := false

	for col := minCol; col <= maxCol; col++ {
		wx := ox + col*q.cx + sec.depth*q.dx
		wy := oy + col*q.cy + sec.depth*q.dy

		inBounds := transparent.InBounds(wx, wy)
		wall := !inBounds || transparent.at(wx, wy) == 0
		withinSector := col*sDen >= sec.depth*sNum && col*sec.eDen <= sec.depth*sec.eNum

		if inBounds && (wall || withinSector) {
			visible.set(wx, wy, 1)
		}

		if havePrev {
			switch {
			case prevWall && !wall:
				sNum, sDen = 2*col-1, 2*sec.depth
			case !prevWall && wall:
				stack = append(stack, sector{
					depth: sec.depth + 1,
					sNum:  sNum, sDen: sDen,
					eNum: 2*col - 1, eDen: 2 * sec.depth,
				})
			}
		}

		prevWall = wall
		havePrev = true
	}

	if havePrev && !prevWall {
		stack = append(stack, sector{
			depth: sec.depth + 1,
			sNum:  sNum, sDen: sDen,
			eNum: sec.eNum, eDen: sec.eDen,
		})
	}

	return stack
}
