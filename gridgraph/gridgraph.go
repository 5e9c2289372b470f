package gridgraph

// conn4Offsets lists the four orthogonal neighbor steps in N, E, S, W order,
// matching the direction encoding the wfc package's propagation table uses
// (north=0, east=1, south=2, west=3).
var conn4Offsets = [4][2]int{
	{0, -1}, // N
	{1, 0},  // E
	{0, 1},  // S
	{-1, 0}, // W
}

// conn8Offsets lists all eight neighbor steps; orthogonal entries come
// first so a caller that only wants Conn4 geometry can slice the first 4.
var conn8Offsets = [8][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0}, // N, E, S, W
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1}, // NE, SE, SW, NW
}

// NewGrid validates width and height and returns a Grid. Returns ErrBadShape
// if either dimension is non-positive.
// Complexity: O(1).
func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, ErrBadShape
	}

	return Grid{Width: width, Height: height}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Len returns the total number of cells, width*height.
// Complexity: O(1).
func (g Grid) Len() int {
	return g.Width * g.Height
}

// Index maps (x,y) to its linear offset into a flat row-major buffer using
// the module-wide convention that x is the major axis: x*height + y.
// Callers must check InBounds first; Index does not validate its input.
// Complexity: O(1).
func (g Grid) Index(x, y int) int {
	return x*g.Height + y
}

// Coordinate converts a linear index back to (x,y), the inverse of Index.
// Complexity: O(1).
func (g Grid) Coordinate(idx int) (x, y int) {
	return idx / g.Height, idx % g.Height
}

// NeighborOffsets returns the precomputed (dx,dy) neighbor steps for the
// requested connectivity. For Conn4 the order is N, E, S, W, matching the
// wfc package's direction encoding; Conn8 appends the four diagonals.
// Complexity: O(1).
func (g Grid) NeighborOffsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		out := make([][2]int, 8)
		copy(out, conn8Offsets[:])

		return out
	}

	out := make([][2]int, 4)
	copy(out, conn4Offsets[:])

	return out
}
