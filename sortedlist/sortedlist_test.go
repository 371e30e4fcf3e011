// Package sortedlist_test contains unit tests for the generic SortedList
// collection.
package sortedlist_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlmath/sortedlist"
	"github.com/stretchr/testify/require"
)

// requireSorted asserts the ascending-order invariant over the full list.
func requireSorted(t *testing.T, l *sortedlist.SortedList[int]) {
	t.Helper()
	vals := l.Values()
	require.True(t, sort.IntsAreSorted(vals), "list must be ascending, got %v", vals)
}

// TestAddKeepsSorted verifies the ordering invariant after every single
// insertion, including duplicates.
func TestAddKeepsSorted(t *testing.T) {
	l := sortedlist.New[int]()
	for _, v := range []int{42, 17, 99, 3, 17, 42, 0, -5, 99} {
		l.Add(v)            // one insertion at a time
		requireSorted(t, l) // invariant must hold after each Add
	}
	require.Equal(t, 9, l.Len()) // duplicates are retained
}

// TestEndToEndInts replays the integer reference scenario:
// insert 42, 17, 99, 3 ⇒ sequence [3, 17, 42, 99].
func TestEndToEndInts(t *testing.T) {
	l := sortedlist.New[int]()
	l.AddAll(42, 17, 99, 3)

	require.Equal(t, []int{3, 17, 42, 99}, l.Values()) // ascending result
	require.True(t, l.Contains(17))                    // inserted value found
	require.False(t, l.Contains(100))                  // absent value rejected
}

// TestEndToEndStrings replays the string reference scenario:
// insert "banana", "apple", "cherry" ⇒ ["apple", "banana", "cherry"].
func TestEndToEndStrings(t *testing.T) {
	l := sortedlist.New[string]()
	l.AddAll("banana", "apple", "cherry")

	require.Equal(t, []string{"apple", "banana", "cherry"}, l.Values())
	require.Equal(t, "apple banana cherry", l.String())
}

// TestAt verifies indexed access returns the i-th smallest value and
// fails with ErrIndexOutOfBounds outside [0, Len()).
func TestAt(t *testing.T) {
	l := sortedlist.New[int]()
	l.AddAll(5, 1, 3, 3) // duplicates count toward positions

	for i, want := range []int{1, 3, 3, 5} {
		got, err := l.At(i)
		require.NoError(t, err)
		require.Equal(t, want, got) // i-th smallest inserted value
	}

	_, err := l.At(-1) // below range
	require.ErrorIs(t, err, sortedlist.ErrIndexOutOfBounds)

	_, err = l.At(4) // at Len(), one past the last element
	require.ErrorIs(t, err, sortedlist.ErrIndexOutOfBounds)
}

// TestContainsEmpty ensures membership on an empty list is false, not an error.
func TestContainsEmpty(t *testing.T) {
	l := sortedlist.New[int]()
	require.False(t, l.Contains(1))
	require.Equal(t, 0, l.Len())
}

// TestIndexOf checks first-occurrence positions and the not-found contract.
func TestIndexOf(t *testing.T) {
	l := sortedlist.New[int]()
	l.AddAll(10, 20, 20, 30)

	idx, found := l.IndexOf(20)
	require.True(t, found)
	require.Equal(t, 1, idx) // first of the two equal elements

	idx, found = l.IndexOf(25)
	require.False(t, found)
	require.Equal(t, 3, idx) // would-be insertion point
}

// TestMinMax verifies the extremes and the empty-list sentinel.
func TestMinMax(t *testing.T) {
	l := sortedlist.New[int]()

	_, err := l.Min() // empty list has no minimum
	require.ErrorIs(t, err, sortedlist.ErrEmptyList)
	_, err = l.Max()
	require.ErrorIs(t, err, sortedlist.ErrEmptyList)

	l.AddAll(7, -2, 9)

	mn, err := l.Min()
	require.NoError(t, err)
	require.Equal(t, -2, mn)

	mx, err := l.Max()
	require.NoError(t, err)
	require.Equal(t, 9, mx)
}

// TestValuesDefensiveCopy ensures mutating the returned slice does not
// corrupt the list.
func TestValuesDefensiveCopy(t *testing.T) {
	l := sortedlist.New[int]()
	l.AddAll(2, 1)

	vals := l.Values()
	vals[0] = 100 // clobber the copy

	got, err := l.At(0)
	require.NoError(t, err)
	require.Equal(t, 1, got) // list unaffected
}

// TestCloneIndependence ensures Clone() yields an independent list.
func TestCloneIndependence(t *testing.T) {
	l := sortedlist.New[int]()
	l.AddAll(1, 2)

	cp := l.Clone()
	cp.Add(0) // mutate only the clone

	require.Equal(t, []int{1, 2}, l.Values())
	require.Equal(t, []int{0, 1, 2}, cp.Values())
}

// TestFprint checks the console rendering contract: space-separated
// ascending elements followed by a line break.
func TestFprint(t *testing.T) {
	l := sortedlist.New[int]()
	l.AddAll(42, 17, 99, 3)

	var sb strings.Builder
	require.NoError(t, l.Fprint(&sb))
	require.Equal(t, "3 17 42 99\n", sb.String())
}

// TestZeroValueUsable ensures the zero value behaves as an empty list.
func TestZeroValueUsable(t *testing.T) {
	var l sortedlist.SortedList[string]
	l.Add("b")
	l.Add("a")

	require.Equal(t, []string{"a", "b"}, l.Values())
}
