package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/cpkit"
	"github.com/katalvlaran/cpkit/gridgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"Nil", nil, gridgraph.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, cpkit.ErrInvalidArgument)
		})
	}
}

// TestNewGridGraph_Copies verifies the input grid is deep-copied.
func TestNewGridGraph_Copies(t *testing.T) {
	grid := [][]int{{1, 0}}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)
	grid[0][1] = 1
	assert.False(t, gg.IsLand(1, 0))
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0, 1, 0}, {1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "%v", xy)
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "%v", xy)
	}
	assert.Len(t, gg.NeighborOffsets(), 4)

	x, y := gg.Coordinate(gg.Index(2, 1))
	assert.Equal(t, [2]int{2, 1}, [2]int{x, y})
}

//----------------------------------------------------------------------------//
// Component Tests
//----------------------------------------------------------------------------//

// TestConnectedComponents_Simple4 expects two islands of sizes 4 and 2.
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
func TestConnectedComponents_Simple4(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}, gridgraph.Conn4)
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4}, sizes)
}

// TestConnectedComponents_Diagonal8 joins corner-touching cells into one island.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)
	comps := gg.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 9)

	gg4, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Len(t, gg4.ConnectedComponents(), 9, "no diagonal hops under Conn4")
}

// TestConnectedComponents_EdgeCases covers all-water, single cell and threshold.
func TestConnectedComponents_EdgeCases(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0, 0}, {0, 0}}, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Empty(t, gg.ConnectedComponents())

	gg, err = gridgraph.From2D([][]int{{0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}}, gg.ConnectedComponents())

	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = 3
	gg, err = gridgraph.NewGridGraph([][]int{{1, 5, 2, 3}}, opts)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}, {3}}, gg.ConnectedComponents())
}

// TestLabelComponents_AgreesWithBFS checks the DSU labelling against the
// flood fill on random grids under both connectivities.
func TestLabelComponents_AgreesWithBFS(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		for _, conn := range []gridgraph.Connectivity{gridgraph.Conn4, gridgraph.Conn8} {
			gg, err := gridgraph.From2D(randomGrid(25, seed), conn)
			require.NoError(t, err)

			comps := gg.ConnectedComponents()
			labels, count := gg.LabelComponents()
			require.Equal(t, len(comps), count, "seed %d conn %d", seed, conn)

			land := 0
			for id, comp := range comps {
				land += len(comp)
				for _, cell := range comp {
					require.Equal(t, id, labels[cell], "seed %d conn %d cell %d", seed, conn, cell)
				}
			}
			water := 0
			for _, l := range labels {
				if l == -1 {
					water++
				}
			}
			require.Equal(t, len(labels), land+water)
		}
	}
}

//----------------------------------------------------------------------------//
// ExpandIsland Tests
//----------------------------------------------------------------------------//

// TestExpandIsland_Line converts the water between two land cells on a row.
func TestExpandIsland_Line(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, []int{0, 1, 2}, path)

	gg, err = gridgraph.From2D([][]int{{1, 0, 0, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	path, cost, err = gg.ExpandIsland(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, cost)
	assert.Equal(t, []int{4, 3, 2, 1, 0}, path)
}

// TestExpandIsland_SameComponent costs nothing.
func TestExpandIsland_SameComponent(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0}, {0, 1}}, gridgraph.Conn8)
	require.NoError(t, err)
	require.Len(t, gg.ConnectedComponents(), 1)

	path, cost, err := gg.ExpandIsland(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cost)
	assert.Equal(t, []int{0}, path)
}

// TestExpandIsland_PathIsValid checks adjacency along the path and that the
// cost equals the number of water cells crossed.
func TestExpandIsland_PathIsValid(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{1, 1, 0, 0, 0},
		{0, 1, 0, 1, 0},
		{0, 0, 0, 1, 0},
		{0, 0, 0, 0, 2},
	}, gridgraph.Conn4)
	require.NoError(t, err)
	comps := gg.ConnectedComponents()
	require.Len(t, comps, 3)

	path, cost, err := gg.ExpandIsland(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, cost, "via the middle island")

	water := 0
	for i, cell := range path {
		x, y := gg.Coordinate(cell)
		if !gg.IsLand(x, y) {
			water++
		}
		if i > 0 {
			px, py := gg.Coordinate(path[i-1])
			assert.Equal(t, 1, abs(px-x)+abs(py-y), "step %d must be orthogonal", i)
		}
	}
	assert.Equal(t, cost, water)
}

// TestExpandIsland_InvalidIndices ensures invalid component indices yield ErrComponentIndex.
func TestExpandIsland_InvalidIndices(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	_, _, err = gg.ExpandIsland(-1, 1)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
	_, _, err = gg.ExpandIsland(0, 2)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
