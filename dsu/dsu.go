package dsu

// DSU partitions the elements 0..n into disjoint sets.
type DSU struct {
	parent     []int
	size       []int // meaningful only at roots
	components int
}

// New returns a DSU with n+1 singleton sets and Components() == n.
// Negative n yields an empty DSU.
func New(n int) *DSU {
	if n < 0 {
		return &DSU{}
	}
	d := &DSU{
		parent:     make([]int, n+1),
		size:       make([]int, n+1),
		components: n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Find returns the canonical root of i's set and compresses the path.
func (d *DSU) Find(i int) int {
	root := i
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[i] != root {
		next := d.parent[i]
		d.parent[i] = root
		i = next
	}

	return root
}

// Union merges the sets of i and j. It returns false if they already share
// a root. The smaller set is attached under the larger; on equal sizes j's
// root goes under i's root.
func (d *DSU) Union(i, j int) bool {
	ri, rj := d.Find(i), d.Find(j)
	if ri == rj {
		return false
	}
	if d.size[ri] < d.size[rj] {
		ri, rj = rj, ri
	}
	d.parent[rj] = ri
	d.size[ri] += d.size[rj]
	d.components--

	return true
}

// Connected reports whether i and j belong to the same set.
func (d *DSU) Connected(i, j int) bool {
	return d.Find(i) == d.Find(j)
}

// Size returns the number of elements in i's set.
func (d *DSU) Size(i int) int {
	return d.size[d.Find(i)]
}

// Components returns the live component counter.
func (d *DSU) Components() int {
	return d.components
}

// Len returns the number of elements (n+1).
func (d *DSU) Len() int {
	return len(d.parent)
}

// Groups maps every root to its members in ascending order.
func (d *DSU) Groups() map[int][]int {
	groups := make(map[int][]int)
	for i := range d.parent {
		r := d.Find(i)
		groups[r] = append(groups[r], i)
	}
	return groups
}
