// SPDX-License-Identifier: MIT

package heightfield

// Side names one of the four borders of a Field.
type Side int

const (
	// Top is the row y = 0.
	Top Side = iota
	// Bottom is the row y = n-1.
	Bottom
	// Left is the column x = 0.
	Left
	// Right is the column x = n-1.
	Right
)

// Sides lists every Side in declaration order.
var Sides = [...]Side{Top, Bottom, Left, Right}

// String returns the lower-case side name.
func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the side a neighbouring tile shares with s:
// Left↔Right and Top↔Bottom.
func (s Side) Opposite() Side {
	switch s {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	case Right:
		return Left
	default:
		return s
	}
}

// Reader is a read-only view over a rectangular altitude grid.
// Dims reports width and height in samples; At fails with ErrOutOfRange
// outside them.
type Reader interface {
	Dims() (w, h int)
	At(x, y int) (int, error)
}
