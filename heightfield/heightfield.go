// SPDX-License-Identifier: MIT

// Package heightfield - Field storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep values in one flat buffer (offset = y*n + x) with a parallel
//     presence bitmap instead of an in-band "unset" sentinel.
//   - Guarantee safety at the public surface: accessors return errors
//     instead of panicking.
//   - Never move a cell from set back to unset.

package heightfield

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxEdge     = "Edge"
	ctxSetEdge  = "SetEdge"
	ctxZeroEdge = "ZeroEdge"
)

// fieldErrorf wraps err with the method tag and coordinates, preserving the
// sentinel for errors.Is.
func fieldErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Field.%s(%d,%d): %w", method, x, y, err)
}

// edgeErrorf wraps err with the method tag and side.
func edgeErrorf(method string, side Side, err error) error {
	return fmt.Errorf("Field.%s(%s): %w", method, side, err)
}

// Field is a square altitude grid.
//   - n is the side length (2^k+1).
//   - values holds n*n samples in row-major order.
//   - present[i] reports whether values[i] has been assigned.
//   - unset counts cells with present[i] == false.
type Field struct {
	n       int
	values  []int
	present []bool
	unset   int
}

// Compile-time assertion: *Field is a Reader.
var _ Reader = (*Field)(nil)

// ValidSize reports whether n = 2^k+1 for some k ≥ 1.
// Complexity: O(1).
func ValidSize(n int) bool {
	m := n - 1
	return m >= 2 && m&(m-1) == 0
}

// SideFromExponent returns 2^k+1, the side length for exponent k.
// It does not validate k; callers bound it first.
func SideFromExponent(k int) int {
	return 1<<uint(k) + 1
}

// New allocates an n×n Field with every cell unset.
//
// Errors:
//   - ErrInvalidSize unless n = 2^k+1, k ≥ 1.
//
// Complexity: O(n²) time and space.
func New(n int) (*Field, error) {
	if !ValidSize(n) {
		return nil, fmt.Errorf("heightfield.New(%d): %w", n, ErrInvalidSize)
	}

	return &Field{
		n:       n,
		values:  make([]int, n*n),
		present: make([]bool, n*n),
		unset:   n * n,
	}, nil
}

// Size returns the side length n.
func (f *Field) Size() int { return f.n }

// Dims returns (n, n).
func (f *Field) Dims() (w, h int) { return f.n, f.n }

// Max returns the largest valid coordinate, n-1.
func (f *Field) Max() int { return f.n - 1 }

// InBounds reports whether (x,y) lies inside the grid.
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.n && y >= 0 && y < f.n
}

// offset maps (x,y) to the flat index or returns ErrOutOfRange.
func (f *Field) offset(x, y int) (int, error) {
	if !f.InBounds(x, y) {
		return 0, ErrOutOfRange
	}

	return y*f.n + x, nil
}

// At returns the value stored at (x,y).
//
// Errors:
//   - ErrOutOfRange when x or y is outside [0, n-1].
//   - ErrUnset when the cell has not been assigned.
func (f *Field) At(x, y int) (int, error) {
	off, err := f.offset(x, y)
	if err != nil {
		return 0, fieldErrorf(ctxAt, x, y, err)
	}
	if !f.present[off] {
		return 0, fieldErrorf(ctxAt, x, y, ErrUnset)
	}

	return f.values[off], nil
}

// IsSet reports whether (x,y) holds a value. Out-of-range coordinates
// report false.
func (f *Field) IsSet(x, y int) bool {
	off, err := f.offset(x, y)
	if err != nil {
		return false
	}

	return f.present[off]
}

// Set stores v at (x,y), overwriting any previous value.
// Callers that must not clobber computed data check IsSet first.
//
// Errors:
//   - ErrOutOfRange when x or y is outside [0, n-1].
func (f *Field) Set(x, y, v int) error {
	off, err := f.offset(x, y)
	if err != nil {
		return fieldErrorf(ctxSet, x, y, err)
	}
	f.put(off, v)

	return nil
}

// put writes v at a checked offset and maintains the unset counter.
func (f *Field) put(off, v int) {
	if !f.present[off] {
		f.present[off] = true
		f.unset--
	}
	f.values[off] = v
}

// Complete reports whether every cell has been assigned.
func (f *Field) Complete() bool { return f.unset == 0 }

// Unset returns the number of cells that still hold no value.
func (f *Field) Unset() int { return f.unset }

// edgeCell returns the coordinates of the i-th cell along side.
func (f *Field) edgeCell(side Side, i int) (x, y int) {
	switch side {
	case Top:
		return i, 0
	case Bottom:
		return i, f.n - 1
	case Left:
		return 0, i
	default: // Right
		return f.n - 1, i
	}
}

// validSide reports whether side is one of Top..Right.
func validSide(side Side) bool {
	return side >= Top && side <= Right
}

// Edge returns a copy of the n values along side.
//
// Errors:
//   - ErrUnknownSide for a Side outside Top..Right.
//   - ErrUnset when any cell on that side is unassigned.
//
// Complexity: O(n).
func (f *Field) Edge(side Side) ([]int, error) {
	if !validSide(side) {
		return nil, edgeErrorf(ctxEdge, side, ErrUnknownSide)
	}
	out := make([]int, f.n)
	for i := 0; i < f.n; i++ {
		x, y := f.edgeCell(side, i)
		off := y*f.n + x
		if !f.present[off] {
			return nil, fmt.Errorf("Field.%s(%s) cell %d: %w", ctxEdge, side, i, ErrUnset)
		}
		out[i] = f.values[off]
	}

	return out, nil
}

// SetEdge overwrites the n cells along side with values.
//
// Errors:
//   - ErrUnknownSide for a Side outside Top..Right.
//   - ErrLengthMismatch when len(values) != n; the field is left untouched.
//
// Complexity: O(n).
func (f *Field) SetEdge(side Side, values []int) error {
	if !validSide(side) {
		return edgeErrorf(ctxSetEdge, side, ErrUnknownSide)
	}
	if len(values) != f.n {
		return fmt.Errorf("Field.%s(%s) got %d values, want %d: %w",
			ctxSetEdge, side, len(values), f.n, ErrLengthMismatch)
	}
	for i, v := range values {
		x, y := f.edgeCell(side, i)
		f.put(y*f.n+x, v)
	}

	return nil
}

// ZeroEdge sets every cell along side to 0, unconditionally.
// Used for the map perimeter baseline.
//
// Errors:
//   - ErrUnknownSide for a Side outside Top..Right.
func (f *Field) ZeroEdge(side Side) error {
	if !validSide(side) {
		return edgeErrorf(ctxZeroEdge, side, ErrUnknownSide)
	}
	for i := 0; i < f.n; i++ {
		x, y := f.edgeCell(side, i)
		f.put(y*f.n+x, 0)
	}

	return nil
}

// Clone returns a deep copy that shares no storage with f.
// Complexity: O(n²).
func (f *Field) Clone() *Field {
	c := &Field{
		n:       f.n,
		values:  make([]int, len(f.values)),
		present: make([]bool, len(f.present)),
		unset:   f.unset,
	}
	copy(c.values, f.values)
	copy(c.present, f.present)

	return c
}

// String renders the grid row by row; unset cells print as ".".
func (f *Field) String() string {
	var sb strings.Builder
	for y := 0; y < f.n; y++ {
		sb.WriteString("[")
		for x := 0; x < f.n; x++ {
			if x > 0 {
				sb.WriteString(", ")
			}
			off := y*f.n + x
			if f.present[off] {
				fmt.Fprintf(&sb, "%d", f.values[off])
			} else {
				sb.WriteString(".")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Rows copies any Reader into a [y][x] slice of rows.
// It fails on the first cell the reader cannot return.
//
// Complexity: O(w·h).
func Rows(r Reader) ([][]int, error) {
	w, h := r.Dims()
	out := make([][]int, h)
	for y := 0; y < h; y++ {
		row := make([]int, w)
		for x := 0; x < w; x++ {
			v, err := r.At(x, y)
			if err != nil {
				return nil, err
			}
			row[x] = v
		}
		out[y] = row
	}

	return out, nil
}
