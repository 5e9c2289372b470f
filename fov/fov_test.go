package fov

import (
	"errors"
	"testing"
)

func transparentGrid(t *testing.T, w, h int, opaque map[[2]int]bool) (ByteGrid, ByteGrid) {
	t.Helper()
	tData := make([]byte, w*h)
	for i := range tData {
		tData[i] = 1
	}
	tg, err := NewByteGrid(w, h, tData)
	if err != nil {
		t.Fatalf("NewByteGrid(transparent): %v", err)
	}
	for xy, isOpaque := range opaque {
		if isOpaque {
			tg.set(xy[0], xy[1], 0)
		}
	}

	vg, err := NewByteGrid(w, h, make([]byte, w*h))
	if err != nil {
		t.Fatalf("NewByteGrid(visible): %v", err)
	}

	return tg, vg
}

func TestFov_FullyTransparentRadius2(t *testing.T) {
	tg, vg := transparentGrid(t, 5, 5, nil)
	if err := Fov(tg, vg, 2, 2, 2); err != nil {
		t.Fatalf("Fov: %v", err)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if vg.at(x, y) != 1 {
				t.Errorf("cell (%d,%d) not visible; want visible in a fully transparent 5x5 at radius 2", x, y)
			}
		}
	}
}

func TestFov_OriginAlwaysVisible(t *testing.T) {
	tg, vg := transparentGrid(t, 7, 7, map[[2]int]bool{{3, 3}: false})
	if err := Fov(tg, vg, 3, 3, 4); err != nil {
		t.Fatalf("Fov: %v", err)
	}
	if vg.at(3, 3) != 1 {
		t.Fatalf("origin not marked visible")
	}
}

func TestFov_ChebyshevDistanceBound(t *testing.T) {
	const w, h, radius = 11, 11, 3
	ox, oy := 5, 5
	tg, vg := transparentGrid(t, w, h, nil)
	if err := Fov(tg, vg, ox, oy, radius); err != nil {
		t.Fatalf("Fov: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if vg.at(x, y) != 1 {
				continue
			}
			dx, dy := absInt(x-ox), absInt(y-oy)
			cheb := dx
			if dy > cheb {
				cheb = dy
			}
			if cheb > radius {
				t.Errorf("cell (%d,%d) visible at Chebyshev distance %d > radius %d", x, y, cheb, radius)
			}
		}
	}
}

func TestFov_WallColumnBlocksBeyond(t *testing.T) {
	// 5x5 grid, a wall spans the full column x=1; origin at (0,2), radius 5.
	// Cells at x>=2 should not be visible through the wall, except where
	// diagonal sightlines graze a wall endpoint per the symmetric rules.
	opaque := map[[2]int]bool{}
	for y := 0; y < 5; y++ {
		opaque[[2]int{1, y}] = true
	}
	tg, vg := transparentGrid(t, 5, 5, opaque)
	if err := Fov(tg, vg, 0, 2, 5); err != nil {
		t.Fatalf("Fov: %v", err)
	}
	// The wall column itself, at the origin's own row, must be visible
	// (it is the nearest opaque tile blocking the line of sight).
	if vg.at(1, 2) != 1 {
		t.Errorf("wall tile adjacent to origin's row should be visible")
	}
	// Directly behind the wall on the same row is blocked.
	if vg.at(2, 2) == 1 {
		t.Errorf("cell (2,2) should be blocked by the wall column")
	}
	if vg.at(3, 2) == 1 {
		t.Errorf("cell (3,2) should be blocked by the wall column")
	}
}

func TestFov_Symmetry(t *testing.T) {
	// A scattering of obstacles; verify fov(a) sees b iff fov(b) sees a for
	// every pair of cells within radius.
	const w, h, radius = 9, 9, 6
	opaque := map[[2]int]bool{
		{3, 3}: true, {3, 4}: true, {4, 3}: true,
		{6, 2}: true, {2, 6}: true, {5, 5}: true,
	}
	tg, _ := transparentGrid(t, w, h, opaque)

	visFrom := func(ox, oy int) ByteGrid {
		_, vg := transparentGrid(t, w, h, nil)
		if err := Fov(tg, vg, ox, oy, radius); err != nil {
			t.Fatalf("Fov: %v", err)
		}

		return vg
	}

	cache := make(map[[2]int]ByteGrid)
	visAt := func(x, y int) ByteGrid {
		key := [2]int{x, y}
		if g, ok := cache[key]; ok {
			return g
		}
		g := visFrom(x, y)
		cache[key] = g

		return g
	}

	for ay := 0; ay < h; ay++ {
		for ax := 0; ax < w; ax++ {
			va := visAt(ax, ay)
			for by := 0; by < h; by++ {
				for bx := 0; bx < w; bx++ {
					aSeesB := va.at(bx, by) == 1
					if !aSeesB {
						continue
					}
					vb := visAt(bx, by)
					if vb.at(ax, ay) != 1 {
						t.Errorf("asymmetric visibility: (%d,%d) sees (%d,%d) but not vice versa", ax, ay, bx, by)
					}
				}
			}
		}
	}
}

func TestFov_BadShape(t *testing.T) {
	tg, err := NewByteGrid(5, 5, make([]byte, 25))
	if err != nil {
		t.Fatalf("NewByteGrid: %v", err)
	}
	vg, err := NewByteGrid(3, 3, make([]byte, 9))
	if err != nil {
		t.Fatalf("NewByteGrid: %v", err)
	}
	if err := Fov(tg, vg, 0, 0, 2); !errors.Is(err, ErrBadShape) {
		t.Errorf("Fov shape mismatch error=%v; want ErrBadShape", err)
	}
}

func TestFov_StridedGrid(t *testing.T) {
	// Pack a 3x3 grid column-major (StrideX=1, StrideY=3) into a buffer
	// and confirm Fov addresses it correctly.
	data := make([]byte, 9)
	for i := range data {
		data[i] = 1
	}
	tg, err := NewStridedByteGrid(3, 3, data, 1, 3, 0)
	if err != nil {
		t.Fatalf("NewStridedByteGrid: %v", err)
	}
	vData := make([]byte, 9)
	vg, err := NewStridedByteGrid(3, 3, vData, 1, 3, 0)
	if err != nil {
		t.Fatalf("NewStridedByteGrid: %v", err)
	}
	if err := Fov(tg, vg, 1, 1, 1); err != nil {
		t.Fatalf("Fov: %v", err)
	}
	if vg.at(1, 1) != 1 {
		t.Fatalf("origin not visible in strided grid")
	}
	if vg.at(0, 0) != 1 {
		t.Fatalf("expected (0,0) visible in fully transparent strided grid")
	}
}

func TestFov_NegativeRadius(t *testing.T) {
	tg, vg := transparentGrid(t, 3, 3, nil)
	if err := Fov(tg, vg, 1, 1, -1); err != nil {
		t.Fatalf("Fov: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := byte(0)
			if x == 1 && y == 1 {
				want = 1 // the in-bounds origin is always visible
			}
			if got := vg.at(x, y); got != want {
				t.Errorf("cell (%d,%d)=%d with negative radius; want %d", x, y, got, want)
			}
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func TestFloorCeilDiv(t *testing.T) {
	cases := []struct{ a, b, floor, ceil int }{
		{7, 2, 3, 4},
		{-7, 2, -4, -3},
		{7, -2, -4, -3},
		{-7, -2, 3, 4},
		{0, 3, 0, 0},
		{6, 3, 2, 2},
	}
	for _, c := range cases {
		if got := floorDiv(c.a, c.b); got != c.floor {
			t.Errorf("floorDiv(%d,%d)=%d; want %d", c.a, c.b, got, c.floor)
		}
		if got := ceilDiv(c.a, c.b); got != c.ceil {
			t.Errorf("ceilDiv(%d,%d)=%d; want %d", c.a, c.b, got, c.ceil)
		}
	}
}
