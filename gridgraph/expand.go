package gridgraph

import (
	"github.com/katalvlaran/cpkit/deque"
)

// ExpandIsland finds a minimum-conversion path of "water" cells
// to connect any cell in component srcComp to any cell in component dstComp,
// as identified by ConnectedComponents(). Each water-cell conversion costs 1.
// Returns the sequence of cell-indices (row-major) representing the path
// (including the start and end land cells) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • Moving into a land cell  → cost 0 (pushed to the front)
//     • Moving into a water cell → cost 1 (pushed to the back)
//  3. Stop when any dstComp cell is popped.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	isDst := make([]bool, gg.Width*gg.Height)
	for _, i := range comps[dstComp] {
		isDst[i] = true
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, gg.Width*gg.Height)
	prev := make([]int, gg.Width*gg.Height)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	dq := deque.New[int]()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushBack(i)
	}

	target := -1
	for !dq.Empty() {
		u, _ := dq.PopFront()
		if isDst[u] {
			target = u
			break
		}
		gg.neighbors(u, func(v, vx, vy int) {
			step := 0
			if !gg.IsLand(vx, vy) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		})
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
