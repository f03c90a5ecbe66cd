package gridgraph

import (
	"github.com/katalvlaran/cpkit/dsu"
	"github.com/katalvlaran/cpkit/queue"
)

// ConnectedComponents finds all contiguous regions ("islands") of land cells,
// according to gg.Conn connectivity.
// Components are ordered by their first cell in row-major order; cells inside
// a component are in breadth-first order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	q := queue.New[int]()
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.Index(x, y)
			if seen[i0] || !gg.IsLand(x, y) {
				continue
			}
			seen[i0] = true
			q.Push(i0)
			var comp []int

			for !q.Empty() {
				u, _ := q.Pop()
				comp = append(comp, u)
				gg.neighbors(u, func(v, vx, vy int) {
					if !seen[v] && gg.IsLand(vx, vy) {
						seen[v] = true
						q.Push(v)
					}
				})
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// LabelComponents returns, for every cell in row-major order, the index of
// its island (numbered like ConnectedComponents) or -1 for water, plus the
// number of islands. Islands are merged with a disjoint-set union.
//
// Time:   O(W·H·d·α(W·H)).
// Memory: O(W·H).
func (gg *GridGraph) LabelComponents() (labels []int, count int) {
	n := gg.Width * gg.Height
	sets := dsu.New(n - 1) // elements 0..n-1

	for u := 0; u < n; u++ {
		ux, uy := gg.Coordinate(u)
		if !gg.IsLand(ux, uy) {
			continue
		}
		gg.neighbors(u, func(v, vx, vy int) {
			if v > u && gg.IsLand(vx, vy) {
				sets.Union(u, v)
			}
		})
	}

	labels = make([]int, n)
	byRoot := make(map[int]int)
	for u := 0; u < n; u++ {
		ux, uy := gg.Coordinate(u)
		if !gg.IsLand(ux, uy) {
			labels[u] = -1
			continue
		}
		root := sets.Find(u)
		id, ok := byRoot[root]
		if !ok {
			id = len(byRoot)
			byRoot[root] = id
		}
		labels[u] = id
	}

	return labels, len(byRoot)
}
