package mst

import (
	"fmt"

	"github.com/katalvlaran/cpkit/pq"
)

// Prim returns the MST grown from root, as Kruskal does.
// Edges in the result are oriented away from root (U inside, V added).
func Prim(n int, edges []Edge, root int) ([]Edge, int64, error) {
	if err := validate(n, edges); err != nil {
		return nil, 0, err
	}
	if root < 0 || root >= n {
		return nil, 0, fmt.Errorf("%w: root %d, n=%d", ErrVertexOutOfRange, root, n)
	}
	if n == 1 {
		return []Edge{}, 0, nil
	}

	adj := make([][]Edge, n)
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		adj[e.U] = append(adj[e.U], e)
		adj[e.V] = append(adj[e.V], Edge{U: e.V, V: e.U, W: e.W})
	}

	visited := make([]bool, n)
	frontier := pq.New[Edge](func(a, b Edge) bool { return a.W < b.W })
	tree := make([]Edge, 0, n-1)
	var total int64

	visit := func(u int) {
		visited[u] = true
		for _, e := range adj[u] {
			if !visited[e.V] {
				frontier.Push(e)
			}
		}
	}
	visit(root)

	for !frontier.Empty() && len(tree) < n-1 {
		e, _ := frontier.Pop()
		if visited[e.V] {
			continue // stale
		}
		tree = append(tree, e)
		total += e.W
		visit(e.V)
	}

	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}
	return tree, total, nil
}

// Compute selects and runs the MST algorithm based on opts.
func Compute(n int, edges []Edge, opts ...Option) ([]Edge, int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(n, edges)
	case MethodPrim:
		return Prim(n, edges, cfg.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}
