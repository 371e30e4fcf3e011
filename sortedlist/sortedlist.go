// SPDX-License-Identifier: MIT

// Package sortedlist - generic ascending collection & safe accessors.
//
// SortedList keeps its backing slice sorted at all times so that lookup
// operations may binary-search unconditionally. All public entry points
// validate their inputs and return sentinel errors instead of panicking.
package sortedlist

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Rendering literals shared by String and Fprint.
const (
	fmtItemSep = " "
	fmtNewline = "\n"
)

// listErrorf wraps an underlying error with method context and the
// offending index, preserving the sentinel via %w.
func listErrorf(method string, index int, err error) error {
	return fmt.Errorf("SortedList.%s(%d): %w", method, index, err)
}

// SortedList is a growable sequence of ordered elements kept ascending.
// Invariant: items is sorted after every public mutation; duplicates are
// permitted and retained. The zero value is an empty, usable list; New is
// the idiomatic constructor.
type SortedList[T cmp.Ordered] struct {
	items []T // backing storage, always sorted ascending
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*SortedList[int])(nil)

// New creates an empty SortedList for any ordered element type.
// Complexity: O(1).
func New[T cmp.Ordered]() *SortedList[T] {
	return &SortedList[T]{items: make([]T, 0)}
}

// Add inserts v while maintaining ascending order.
// Stage 1 (Locate): binary-search the insertion point (leftmost position
// among equals).
// Stage 2 (Execute): shift the tail right and place v.
// Relative order among equal elements is unspecified by contract.
// Complexity: O(log n) search + O(n) shift.
func (l *SortedList[T]) Add(v T) {
	// Leftmost index at which v can be inserted keeping order.
	idx, _ := slices.BinarySearch(l.items, v)
	l.items = slices.Insert(l.items, idx, v)
}

// AddAll inserts every value in vs, one Add at a time. The ordering
// invariant holds after each individual insertion.
// Complexity: O(k·n) for k values.
func (l *SortedList[T]) AddAll(vs ...T) {
	for _, v := range vs {
		l.Add(v)
	}
}

// At returns the element at position index in ascending order.
// Returns ErrIndexOutOfBounds unless 0 ≤ index < Len().
// Complexity: O(1).
func (l *SortedList[T]) At(index int) (T, error) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, listErrorf("At", index, ErrIndexOutOfBounds)
	}

	return l.items[index], nil
}

// Len returns the current element count.
// Complexity: O(1).
func (l *SortedList[T]) Len() int { return len(l.items) }

// Contains reports whether v equals some element of the list.
// Valid only because Add keeps the slice sorted at all times.
// Complexity: O(log n).
func (l *SortedList[T]) Contains(v T) bool {
	_, found := slices.BinarySearch(l.items, v)

	return found
}

// IndexOf returns the position of the first occurrence of v and whether
// it is present. When absent, the returned index is the position v would
// be inserted at.
// Complexity: O(log n).
func (l *SortedList[T]) IndexOf(v T) (int, bool) {
	return slices.BinarySearch(l.items, v)
}

// Min returns the smallest element or ErrEmptyList.
// Complexity: O(1) — the head of an ascending sequence.
func (l *SortedList[T]) Min() (T, error) {
	if len(l.items) == 0 {
		var zero T
		return zero, fmt.Errorf("SortedList.Min: %w", ErrEmptyList)
	}

	return l.items[0], nil
}

// Max returns the largest element or ErrEmptyList.
// Complexity: O(1) — the tail of an ascending sequence.
func (l *SortedList[T]) Max() (T, error) {
	if len(l.items) == 0 {
		var zero T
		return zero, fmt.Errorf("SortedList.Max: %w", ErrEmptyList)
	}

	return l.items[len(l.items)-1], nil
}

// Values returns a defensive copy of the elements in ascending order.
// Mutating the returned slice never affects the list.
// Complexity: O(n).
func (l *SortedList[T]) Values() []T {
	return slices.Clone(l.items)
}

// Clone returns an independent deep copy of the list.
// Complexity: O(n).
func (l *SortedList[T]) Clone() *SortedList[T] {
	return &SortedList[T]{items: slices.Clone(l.items)}
}

// String renders the elements in ascending order, separated by single
// spaces, with no trailing newline. Not for hot paths.
// Complexity: O(n) for string construction.
func (l *SortedList[T]) String() string {
	var b strings.Builder
	for i, v := range l.items { // ascending by invariant
		if i > 0 {
			b.WriteString(fmtItemSep)
		}
		fmt.Fprintf(&b, "%v", v)
	}

	return b.String()
}

// Fprint writes the space-separated elements to w followed by a line
// break. Deterministic ascending order.
// Complexity: O(n).
func (l *SortedList[T]) Fprint(w io.Writer) error {
	if _, err := io.WriteString(w, l.String()); err != nil {
		return fmt.Errorf("SortedList.Fprint: %w", err)
	}
	if _, err := io.WriteString(w, fmtNewline); err != nil {
		return fmt.Errorf("SortedList.Fprint: %w", err)
	}

	return nil
}

// Print writes the list to standard output, one line, ascending order.
// Convenience wrapper over Fprint for console demos.
func (l *SortedList[T]) Print() {
	_ = l.Fprint(os.Stdout)
}
