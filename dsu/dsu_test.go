package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cpkit/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDSU_Scenario covers the canonical DSU(5) walk-through.
func TestDSU_Scenario(t *testing.T) {
	d := dsu.New(5)
	assert.Equal(t, 5, d.Components())
	assert.Equal(t, 6, d.Len())

	assert.True(t, d.Union(0, 1))
	assert.True(t, d.Union(1, 2))
	assert.Equal(t, d.Find(0), d.Find(2))
	assert.Equal(t, 3, d.Components())
	assert.Equal(t, 3, d.Size(2))

	assert.False(t, d.Union(2, 0), "same set must be a no-op")
	assert.Equal(t, 3, d.Components())
	assert.False(t, d.Connected(0, 3))
}

// TestDSU_Empty verifies degenerate sizes.
func TestDSU_Empty(t *testing.T) {
	d := dsu.New(-3)
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 0, d.Components())

	d = dsu.New(0)
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, 0, d.Find(0))
}

// TestDSU_UnionBySize checks that the larger set's root absorbs the smaller.
func TestDSU_UnionBySize(t *testing.T) {
	d := dsu.New(4)
	d.Union(1, 2)
	d.Union(1, 3)
	big := d.Find(1)

	d.Union(4, 1) // singleton 4 joins the 3-element set
	assert.Equal(t, big, d.Find(4))
	assert.Equal(t, 4, d.Size(4))
}

// TestDSU_LongChain builds a deep path and ensures Find flattens it.
func TestDSU_LongChain(t *testing.T) {
	const n = 200000
	d := dsu.New(n)
	for i := 1; i < n; i++ {
		require.True(t, d.Union(i+1, i))
	}
	root := d.Find(1)
	for i := 1; i <= n; i++ {
		require.Equal(t, root, d.Find(i))
	}
	assert.Equal(t, 1, d.Components())
	assert.Equal(t, n, d.Size(n))
}

// TestDSU_MatchesReference compares connectivity against a naive labelling.
func TestDSU_MatchesReference(t *testing.T) {
	const n = 60
	r := rand.New(rand.NewSource(11))
	d := dsu.New(n)
	label := make([]int, n+1)
	for i := range label {
		label[i] = i
	}
	merged := 0

	for step := 0; step < 300; step++ {
		a, b := r.Intn(n+1), r.Intn(n+1)
		ok := d.Union(a, b)
		if la, lb := label[a], label[b]; la != lb {
			require.True(t, ok, "step %d", step)
			for i := range label {
				if label[i] == lb {
					label[i] = la
				}
			}
			merged++
		} else {
			require.False(t, ok, "step %d", step)
		}
		require.Equal(t, n-merged, d.Components(), "step %d", step)
	}

	for a := 0; a <= n; a++ {
		for b := 0; b <= n; b++ {
			assert.Equal(t, label[a] == label[b], d.Connected(a, b), "%d~%d", a, b)
		}
	}
}

// TestDSU_Groups checks members are grouped and listed in ascending order.
func TestDSU_Groups(t *testing.T) {
	d := dsu.New(4)
	d.Union(3, 1)
	d.Union(4, 0)

	groups := d.Groups()
	assert.Len(t, groups, 3)
	assert.Equal(t, []int{1, 3}, groups[d.Find(1)])
	assert.Equal(t, []int{0, 4}, groups[d.Find(0)])
	assert.Equal(t, []int{2}, groups[2])
}
