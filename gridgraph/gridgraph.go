package gridgraph

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		offsets:       offsets,
	}, nil
}

// From2D is NewGridGraph with the default threshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the (dx,dy) offsets for gg.Conn.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.offsets
}

// IsLand reports whether the cell at (x,y) is at or above LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.CellValues[y][x] >= gg.LandThreshold
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// neighbors calls fn for every in-bounds neighbor of cell u.
func (gg *GridGraph) neighbors(u int, fn func(v, vx, vy int)) {
	ux, uy := gg.Coordinate(u)
	for _, d := range gg.offsets {
		vx, vy := ux+d[0], uy+d[1]
		if gg.InBounds(vx, vy) {
			fn(gg.Index(vx, vy), vx, vy)
		}
	}
}
