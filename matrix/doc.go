// Package matrix provides dense, row-major float64 matrices and the
// linear-algebra kernels that operate on them.
//
// The matrix package provides:
//
//   - Dense, a concrete row-major implementation of the Matrix interface
//     with O(1) element access and a flat backing buffer.
//   - Kernels Add, Sub, Mul, Scale and Transpose that allocate a fresh
//     result and never mutate their operands.
//   - Fprint for rendering a matrix row-per-line with a caller-chosen
//     value format.
//
// All public entry points perform strict fail-fast validation and report
// contract violations through package sentinel errors (ErrOutOfRange,
// ErrDimensionMismatch, ...) matched via errors.Is; nothing here panics
// on user input.
//
// Matrices are single-owner: an instance belongs to the control flow that
// created it until Release is called, and no internal locking is done.
//
// See the examples in this package for usage patterns.
package matrix
