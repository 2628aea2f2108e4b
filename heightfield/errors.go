// SPDX-License-Identifier: MIT

package heightfield

import "errors"

// Sentinel errors for heightfield operations. Callers branch with errors.Is;
// methods wrap them with the method name and coordinates.
var (
	// ErrInvalidSize indicates a side length that is not 2^k+1 for some k ≥ 1.
	ErrInvalidSize = errors.New("heightfield: side length must be 2^k+1 with k >= 1")

	// ErrOutOfRange indicates a coordinate outside [0, n-1].
	ErrOutOfRange = errors.New("heightfield: coordinate out of range")

	// ErrUnset indicates a read of a cell that has not been assigned yet.
	ErrUnset = errors.New("heightfield: cell is unset")

	// ErrLengthMismatch indicates an edge slice whose length differs from the side length.
	ErrLengthMismatch = errors.New("heightfield: edge length mismatch")

	// ErrUnknownSide indicates a Side value outside Top..Right.
	ErrUnknownSide = errors.New("heightfield: unknown side")
)
