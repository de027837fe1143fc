package dfs_test

import (
	"testing"

	"github.com/katalvlaran/fcltrace/dfs"
)

// BenchmarkWalk_Chain10000 measures the walker on a 10,000-node chain.
// Complexity: each walk is O(V + E) ≈ O(2V).
func BenchmarkWalk_Chain10000(b *testing.B) {
	const n = 10000
	next := func(i int) []int {
		if i+1 < n {
			return []int{i + 1}
		}
		return nil
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := dfs.NewWalker[int]()
		_ = w.Walk(next, 0)
	}
}
