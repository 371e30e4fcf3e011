// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Dense keeps a cache-friendly flat buffer with the explicit index
// formula i*cols + j and guarantees safety at the public surface:
// At/Set return errors instead of panicking. Loop orders are fixed so
// every operation is deterministic.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Method tags used in error wrappers.
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// Formatting literals for String.
const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// denseErrorf wraps an underlying error with Dense method context and the
// callsite coordinates, preserving the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
// r and c hold the dimensions; data is a flat buffer of length r*c in
// row-major order (offset = i*c + j), zero-filled at creation.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage, len == r*c
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0, else ErrInvalidDimensions.
// Stage 2 (Prepare): allocate the flat backing slice (make zero-fills).
// Stage 3 (Finalize): return the new Dense.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape before allocating anything.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The sentinel is returned plain; At/Set wrap it with method context and
// coordinates. Kept unexported so the public surface never panics.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range access.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Validate): reject NaN/±Inf with ErrNaNInf.
// Stage 3 (Execute): write into the flat buffer.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Finite-only policy: matrices never carry NaN or infinities.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy backed by a fresh buffer.
// Mutations of the copy never affect the original.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy elements

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Release drops the owned backing buffer and collapses the shape to 0×0.
// After Release the handle must not be used: any subsequent At/Set fails
// with ErrOutOfRange, and the buffer is left to the garbage collector.
// Calling Release twice is harmless.
// Complexity: O(1).
func (m *Dense) Release() {
	m.r, m.c = 0, 0 // collapse shape so every index is out of range
	m.data = nil    // unpin the buffer for the GC
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v),
// stopping early when f returns false. Read-only with respect to the
// callback; no allocations; deterministic i→j order.
// Complexity: O(r*c) time, O(1) space.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c // flat base offset for row i
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// String provides a readable row-wise dump for diagnostics, one row per
// line as "[a, b, c]". Not for hot paths.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate columns
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(fmtRowClose) // close row
	}

	return b.String()
}
