// SPDX-License-Identifier: MIT

package heightfield

// View is a read-only window onto a Field. It exposes lookups and edge
// copies but no mutators, so holders cannot disturb the underlying grid.
// The zero View is empty: Dims reports (0, 0) and every lookup fails with
// ErrOutOfRange.
type View struct {
	f *Field
}

// Compile-time assertion: View is a Reader.
var _ Reader = View{}

// View returns a read-only View of f. Later writes to f are visible
// through it.
func (f *Field) View() View { return View{f: f} }

// Size returns the side length, or 0 for the zero View.
func (v View) Size() int {
	if v.f == nil {
		return 0
	}
	return v.f.n
}

// Dims returns (n, n), or (0, 0) for the zero View.
func (v View) Dims() (w, h int) {
	n := v.Size()
	return n, n
}

// At behaves like Field.At.
func (v View) At(x, y int) (int, error) {
	if v.f == nil {
		return 0, fieldErrorf(ctxAt, x, y, ErrOutOfRange)
	}
	return v.f.At(x, y)
}

// IsSet behaves like Field.IsSet.
func (v View) IsSet(x, y int) bool {
	return v.f != nil && v.f.IsSet(x, y)
}

// Edge behaves like Field.Edge; the returned slice is a copy.
func (v View) Edge(side Side) ([]int, error) {
	if v.f == nil {
		return nil, edgeErrorf(ctxEdge, side, ErrOutOfRange)
	}
	return v.f.Edge(side)
}

// String renders the grid like Field.String.
func (v View) String() string {
	if v.f == nil {
		return ""
	}
	return v.f.String()
}
