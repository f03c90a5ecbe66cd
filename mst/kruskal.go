package mst

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cpkit/dsu"
)

// Kruskal returns the MST edges of the graph on vertices 0..n-1 and their
// total weight. A single vertex yields an empty tree.
func Kruskal(n int, edges []Edge) ([]Edge, int64, error) {
	if err := validate(n, edges); err != nil {
		return nil, 0, err
	}
	if n == 1 {
		return []Edge{}, 0, nil
	}

	sorted := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.U != e.V {
			sorted = append(sorted, e)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].W < sorted[j].W })

	sets := dsu.New(n - 1)
	tree := make([]Edge, 0, n-1)
	var total int64
	for _, e := range sorted {
		if !sets.Union(e.U, e.V) {
			continue
		}
		tree = append(tree, e)
		total += e.W
		if len(tree) == n-1 {
			break
		}
	}

	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}
	return tree, total, nil
}

// validate checks n and every endpoint.
func validate(n int, edges []Edge) error {
	if n <= 0 {
		return ErrNoVertices
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return fmt.Errorf("%w: edge %d (%d-%d), n=%d", ErrVertexOutOfRange, i, e.U, e.V, n)
		}
	}
	return nil
}
