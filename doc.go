// Package lvlmath is a small, dependency-light toolbox of in-memory
// numeric and ordered containers: dense matrices and sorted collections.
//
// 🚀 What is lvlmath?
//
//	A compact, deterministic library that brings together:
//		• Dense matrices: row-major float64 storage with safe At/Set,
//		  Add/Sub/Mul/Scale/Transpose kernels and explicit lifecycle
//		• Sorted collections: a generic, always-ascending list with
//		  binary-search membership, indexed access and duplicates kept
//
// ✨ Why choose lvlmath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Fail-fast guarantees – sentinel errors, never panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, no map iteration, stable output
//
// Everything lives under two independent subpackages:
//
//	matrix/     — Dense row-major matrices + linear-algebra kernels
//	sortedlist/ — generic ascending collection over cmp.Ordered types
//
// Quick taste:
//
//	a, _ := matrix.NewDense(2, 2)      // 2×2 zero matrix
//	s := sortedlist.New[int]()         // empty ascending list
//	s.Add(42); s.Add(17)               // list is now [17 42]
//
// Both containers are single-owner by contract: each instance belongs to
// the control flow that created it, and no internal locking is performed.
//
//	go get github.com/katalvlaran/lvlmath
package lvlmath
