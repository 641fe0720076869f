// Package matrix_test provides benchmarks for the kernels and row primitives,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/rowtrace/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{8, 32, 128}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkD *matrix.Dense
	sinkV []float64
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, n)
			B := benchDense(b, n, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, n)
			fillDenseRand(b, A, 7)
			x := make([]float64, n)
			for i := range x {
				x[i] = 1
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.MatVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkSumRows(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, n)
			fillDenseRand(b, A, 11)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := A.SumRows(0, n-1, -0.5)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkSwitchRows(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, n)
			fillDenseRand(b, A, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := A.SwitchRows(0, n-1)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = d
			}
		})
	}
}
