// Package algebra_test provides benchmarks for the operators and the ordering,
// using deterministic random symmetric fills.
package algebra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gralgebra/algebra"
)

// benchSizes are the vertex counts to benchmark.
var benchSizes = []int{32, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkG *algebra.Graph
	sinkB bool
)

// randUndirected builds an undirected graph with weights in [-3, 3] and
// roughly half the cells present.
func randUndirected(b *testing.B, n int, seed int64) *algebra.Graph {
	b.Helper()
	r := rand.New(rand.NewSource(seed))
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Intn(2) == 0 {
				continue
			}
			w := r.Intn(7) - 3
			rows[i][j], rows[j][i] = w, w
		}
	}
	g, err := algebra.FromMatrix(rows)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randUndirected(b, n, 1337)
			y := randUndirected(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g, err := algebra.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkG = g
			}
		})
	}
}

// BenchmarkMulSquare squares one graph; a self-product is always symmetric.
func BenchmarkMulSquare(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randUndirected(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g, err := algebra.Mul(x, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkG = g
			}
		})
	}
}

// BenchmarkLessNoContainment hits the worst case: a full block search that
// finds nothing, then the count rules.
func BenchmarkLessNoContainment(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			small := randUndirected(b, n/2, 11)
			big := randUndirected(b, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = algebra.Less(small, big)
			}
		})
	}
}
