// Package sortedlist provides a generic, always-ascending collection over
// any ordered element type.
//
// The sortedlist package provides:
//
//   - SortedList[T], a growable sequence that keeps itself sorted in
//     ascending order after every Add, with duplicates retained.
//   - O(log n) membership tests (Contains, IndexOf) via binary search,
//     which the ordering invariant makes valid at all times.
//   - Indexed access (At) with fail-fast bounds checking, plus Min, Max
//     and a deterministic space-separated rendering (String, Fprint).
//
// Insertion uses a binary insertion-point search followed by a shift:
// O(log n) to locate plus O(n) to make room. Relative order among equal
// elements is unspecified; the only contract is "sorted after Add".
//
// There is no removal operation: a list grows monotonically until the
// whole collection is garbage collected. Instances are single-owner and
// perform no internal locking.
package sortedlist
