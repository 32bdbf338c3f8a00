// Package matrix_test provides benchmarks for construction and comparison,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mytrix/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkB bool
)

// randRows returns n×n integer rows from a fixed seed.
func randRows(n int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			rows[i][j] = rng.Intn(10)
		}
	}
	return rows
}

func BenchmarkFromRows(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rows := randRows(n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.FromRows(rows)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkInfer(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rows := anyRows(randRows(n, 4242))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Infer(rows)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkEqual(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rows := randRows(n, 11)
			A, _ := matrix.FromRows(rows)
			B := A.Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = A.Equal(B)
			}
		})
	}
}

func BenchmarkElemEqual(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, _ := matrix.FromRows(randRows(n, 22))
			B, _ := matrix.FromRows(randRows(n, 33))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.ElemEqual(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
