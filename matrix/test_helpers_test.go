// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by unit tests and
//     benchmarks.
//   - Keep all data finite and well-formed to avoid numeric-policy
//     interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmath/matrix"
)

// hide wraps any Matrix to mask its concrete type from type assertions,
// forcing kernels under test onto their non-*Dense fallback paths.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or aborts the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// fillDenseRand fills m with deterministic pseudo-random finite values.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed)) // fixed seed for reproducibility
	rows, cols := m.Shape()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err := m.Set(i, j, rng.Float64()*10-5); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// fillDense writes vals into m in row-major order; len(vals) must equal
// Rows*Cols.
func fillDense(tb testing.TB, m *matrix.Dense, vals []float64) {
	tb.Helper()
	rows, cols := m.Shape()
	if len(vals) != rows*cols {
		tb.Fatalf("fillDense: got %d values for %dx%d matrix", len(vals), rows, cols)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err := m.Set(i, j, vals[i*cols+j]); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}
