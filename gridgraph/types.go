package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cpkit"
)

var (
	// ErrEmptyGrid reports a grid without rows or columns.
	ErrEmptyGrid = fmt.Errorf("gridgraph: grid has no cells: %w", cpkit.ErrInvalidArgument)

	// ErrNonRectangular reports rows of unequal length.
	ErrNonRectangular = fmt.Errorf("gridgraph: rows differ in length: %w", cpkit.ErrInvalidArgument)

	// ErrComponentIndex reports an island index outside [0, count).
	ErrComponentIndex = fmt.Errorf("gridgraph: component index out of range: %w", cpkit.ErrInvalidArgument)

	// ErrNoPath reports that the search exhausted the grid without reaching the target island.
	ErrNoPath = errors.New("gridgraph: no path between components")
)

// Connectivity is the neighbourhood used for adjacency.
type Connectivity int

const (
	// Conn4 links orthogonal neighbours only.
	Conn4 Connectivity = iota
	// Conn8 also links diagonal neighbours.
	Conn8
)

// GridOptions tunes how a grid is read.
type GridOptions struct {
	LandThreshold int          // cells with value >= LandThreshold are land
	Conn          Connectivity // Conn4 or Conn8
}

// DefaultGridOptions treats any positive cell as land, with Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{LandThreshold: 1, Conn: Conn4}
}

// GridGraph is a read-only view of a rectangular grid as a graph.
// CellValues[y][x] is the input value; cell (x, y) has index y*Width+x.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	LandThreshold int
	offsets       [][2]int
}
