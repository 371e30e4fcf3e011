// SPDX-License-Identifier: MIT
// Package sortedlist: sentinel error set. All operations return these
// sentinels (matched via errors.Is) and never panic on user input.

package sortedlist

import "errors"

var (
	// ErrIndexOutOfBounds indicates that At was called with an index
	// outside [0, Len()).
	ErrIndexOutOfBounds = errors.New("sortedlist: index out of bounds")

	// ErrEmptyList indicates that Min or Max was called on an empty list.
	ErrEmptyList = errors.New("sortedlist: list is empty")
)
