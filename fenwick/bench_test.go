package fenwick_test

import (
	"testing"

	"github.com/katalvlaran/cpkit/fenwick"
)

// BenchmarkTree_AddQuery alternates updates and prefix queries on 1M slots.
func BenchmarkTree_AddQuery(b *testing.B) {
	const n = 1 << 20
	tr := fenwick.New[int64](n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx := 1 + i%n
		_ = tr.Add(idx, 1)
		_, _ = tr.Query(idx)
	}
}
