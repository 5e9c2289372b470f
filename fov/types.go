package fov

import (
	"fmt"

	"github.com/hearthforge/tilekernel/gridgraph"
)

var (
	ErrBadShape    = gridgraph.ErrBadShape
	ErrOutOfBounds = gridgraph.ErrOutOfBounds
	ErrOutOfMemory = gridgraph.ErrOutOfMemory
)

// ByteGrid is a view over a width*height grid of bytes that may be strided:
// StrideX and StrideY are the element (not byte) distances between
// consecutive cells along each axis, and Offset is the index of cell (0,0)
// within Data. This lets transparent and visible address non-contiguous
// buffers, including buffers that share backing storage with unrelated data.
type ByteGrid struct {
	Width, Height    int
	Data             []byte
	StrideX, StrideY int
	Offset           int
}

// NewByteGrid wraps a contiguous, x-major buffer of width*height bytes: the
// layout used throughout this module, index = x*height + y.
func NewByteGrid(width, height int, data []byte) (ByteGrid, error) {
	return NewStridedByteGrid(width, height, data, height, 1, 0)
}

// NewStridedByteGrid wraps data as a width*height grid with explicit
// per-axis strides and a base offset, for callers whose buffers are not
// laid out x-major and contiguous.
func NewStridedByteGrid(width, height int, data []byte, strideX, strideY, offset int) (ByteGrid, error) {
	if width <= 0 || height <= 0 {
		return ByteGrid{}, fmt.Errorf("fov: %w: width=%d height=%d", ErrBadShape, width, height)
	}

	minIdx, maxIdx := offset, offset
	for _, x := range [2]int{0, width - 1} {
		for _, y := range [2]int{0, height - 1} {
			idx := offset + x*strideX + y*strideY
			if idx < minIdx {
				minIdx = idx
			}
			if idx > maxIdx {
				maxIdx = idx
			}
		}
	}
	if minIdx < 0 || maxIdx >= len(data) {
		return ByteGrid{}, fmt.Errorf("fov: %w: strided grid addresses [%d,%d], data len=%d",
			ErrBadShape, minIdx, maxIdx, len(data))
	}

	return ByteGrid{
		Width: width, Height: height,
		Data:    data,
		StrideX: strideX, StrideY: strideY,
		Offset: offset,
	}, nil
}

func (g ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

func (g ByteGrid) index(x, y int) int {
	return g.Offset + x*g.StrideX + y*g.StrideY
}

func (g ByteGrid) at(x, y int) byte {
	return g.Data[g.index(x, y)]
}

func (g ByteGrid) set(x, y int, v byte) {
	g.Data[g.index(x, y)] = v
}
