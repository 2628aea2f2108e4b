// Package heightfield_test contains unit tests for Field.
package heightfield_test

import (
	"testing"

	"github.com/PhilSoe/JavaTerrainGen/heightfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidSize ensures New rejects side lengths that are not 2^k+1.
func TestNewInvalidSize(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2, 4, 6, 8, 10, 16, 18} {
		_, err := heightfield.New(n)
		require.ErrorIs(t, err, heightfield.ErrInvalidSize, "n=%d", n)
	}
}

// TestNewValidSize checks the accepted sizes and that every cell starts unset.
func TestNewValidSize(t *testing.T) {
	for _, n := range []int{3, 5, 9, 17, 33, 65} {
		f, err := heightfield.New(n)
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, n, f.Size())
		w, h := f.Dims()
		require.Equal(t, n, w)
		require.Equal(t, n, h)
		require.Equal(t, n*n, f.Unset())
		require.False(t, f.Complete())
	}
}

// TestSideFromExponent checks 2^k+1 for small k.
func TestSideFromExponent(t *testing.T) {
	assert.Equal(t, 3, heightfield.SideFromExponent(1))
	assert.Equal(t, 5, heightfield.SideFromExponent(2))
	assert.Equal(t, 2049, heightfield.SideFromExponent(11))
	assert.True(t, heightfield.ValidSize(heightfield.SideFromExponent(7)))
}

// TestAtSetOutOfRange ensures At and Set return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	f, err := heightfield.New(3)
	require.NoError(t, err)

	cases := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}}
	for _, c := range cases {
		_, err = f.At(c[0], c[1])
		require.ErrorIs(t, err, heightfield.ErrOutOfRange, "At(%d,%d)", c[0], c[1])

		err = f.Set(c[0], c[1], 7)
		require.ErrorIs(t, err, heightfield.ErrOutOfRange, "Set(%d,%d)", c[0], c[1])

		require.False(t, f.IsSet(c[0], c[1]))
	}
}

// TestAtUnset ensures reads of unassigned cells fail with ErrUnset.
func TestAtUnset(t *testing.T) {
	f, err := heightfield.New(3)
	require.NoError(t, err)

	_, err = f.At(1, 1)
	require.ErrorIs(t, err, heightfield.ErrUnset)
	require.False(t, f.IsSet(1, 1))
}

// TestSetGet validates Set followed by At, including negative altitudes.
func TestSetGet(t *testing.T) {
	f, err := heightfield.New(5)
	require.NoError(t, err)

	require.NoError(t, f.Set(1, 3, 42))
	require.NoError(t, f.Set(4, 0, -7))

	v, err := f.At(1, 3)
	require.NoError(t, err)
	require.Equal(t, 42, v)

	v, err = f.At(4, 0)
	require.NoError(t, err)
	require.Equal(t, -7, v)
	require.True(t, f.IsSet(4, 0))

	// Overwrite is unconditional and does not double-count presence.
	require.NoError(t, f.Set(1, 3, 9))
	v, _ = f.At(1, 3)
	require.Equal(t, 9, v)
	require.Equal(t, 25-2, f.Unset())
}

// TestEdgeOrientation checks which cells each side addresses and their order.
func TestEdgeOrientation(t *testing.T) {
	f, err := heightfield.New(3)
	require.NoError(t, err)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			require.NoError(t, f.Set(x, y, 10*y+x))
		}
	}
	require.True(t, f.Complete())

	cases := []struct {
		side heightfield.Side
		want []int
	}{
		{heightfield.Top, []int{0, 1, 2}},
		{heightfield.Bottom, []int{20, 21, 22}},
		{heightfield.Left, []int{0, 10, 20}},
		{heightfield.Right, []int{2, 12, 22}},
	}
	for _, tc := range cases {
		t.Run(tc.side.String(), func(t *testing.T) {
			got, err := f.Edge(tc.side)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestEdgeUnset ensures Edge refuses to return partially assigned sides.
func TestEdgeUnset(t *testing.T) {
	f, err := heightfield.New(3)
	require.NoError(t, err)
	require.NoError(t, f.Set(0, 0, 1))

	_, err = f.Edge(heightfield.Top)
	require.ErrorIs(t, err, heightfield.ErrUnset)
}

// TestEdgeIsCopy ensures mutating a returned edge does not touch the field.
func TestEdgeIsCopy(t *testing.T) {
	f, err := heightfield.New(3)
	require.NoError(t, err)
	require.NoError(t, f.ZeroEdge(heightfield.Left))

	e, err := f.Edge(heightfield.Left)
	require.NoError(t, err)
	e[1] = 99

	v, err := f.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

// TestSetEdge copies values onto a side and rejects wrong lengths.
func TestSetEdge(t *testing.T) {
	f, err := heightfield.New(5)
	require.NoError(t, err)

	err = f.SetEdge(heightfield.Right, []int{1, 2, 3})
	require.ErrorIs(t, err, heightfield.ErrLengthMismatch)
	require.Equal(t, 25, f.Unset(), "failed SetEdge must not write")

	require.NoError(t, f.SetEdge(heightfield.Right, []int{1, 2, 3, 4, 5}))
	for y := 0; y < 5; y++ {
		v, err := f.At(4, y)
		require.NoError(t, err)
		require.Equal(t, y+1, v)
	}

	got, err := f.Edge(heightfield.Right)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

// TestZeroEdge sets a whole side to zero, overwriting earlier values.
func TestZeroEdge(t *testing.T) {
	f, err := heightfield.New(5)
	require.NoError(t, err)
	require.NoError(t, f.SetEdge(heightfield.Bottom, []int{5, 5, 5, 5, 5}))

	require.NoError(t, f.ZeroEdge(heightfield.Bottom))
	got, err := f.Edge(heightfield.Bottom)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0, 0, 0}, got)
	require.Equal(t, 20, f.Unset())
}

// TestUnknownSide ensures every edge method validates its Side.
func TestUnknownSide(t *testing.T) {
	f, err := heightfield.New(3)
	require.NoError(t, err)
	bad := heightfield.Side(42)

	_, err = f.Edge(bad)
	require.ErrorIs(t, err, heightfield.ErrUnknownSide)
	require.ErrorIs(t, f.SetEdge(bad, []int{0, 0, 0}), heightfield.ErrUnknownSide)
	require.ErrorIs(t, f.ZeroEdge(bad), heightfield.ErrUnknownSide)
	require.Equal(t, "unknown", bad.String())
}

// TestOpposite pairs Left/Right and Top/Bottom.
func TestOpposite(t *testing.T) {
	assert.Equal(t, heightfield.Right, heightfield.Left.Opposite())
	assert.Equal(t, heightfield.Left, heightfield.Right.Opposite())
	assert.Equal(t, heightfield.Bottom, heightfield.Top.Opposite())
	assert.Equal(t, heightfield.Top, heightfield.Bottom.Opposite())
}

// TestCloneIndependence ensures Clone does not share storage.
func TestCloneIndependence(t *testing.T) {
	f, err := heightfield.New(3)
	require.NoError(t, err)
	require.NoError(t, f.Set(0, 0, 1))

	c := f.Clone()
	require.NoError(t, c.Set(0, 0, 3))
	require.NoError(t, c.Set(1, 1, 4))

	v, _ := f.At(0, 0)
	require.Equal(t, 1, v)
	require.False(t, f.IsSet(1, 1))
	require.Equal(t, f.Unset()-1, c.Unset())
}

// TestRows snapshots a field through the Reader interface.
func TestRows(t *testing.T) {
	f, err := heightfield.New(3)
	require.NoError(t, err)
	_, err = heightfield.Rows(f)
	require.ErrorIs(t, err, heightfield.ErrUnset)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			require.NoError(t, f.Set(x, y, y))
		}
	}
	rows, err := heightfield.Rows(f)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}, rows)
}

// TestString marks unset cells with a dot.
func TestString(t *testing.T) {
	f, err := heightfield.New(3)
	require.NoError(t, err)
	require.NoError(t, f.ZeroEdge(heightfield.Top))

	require.Equal(t, "[0, 0, 0]\n[., ., .]\n[., ., .]\n", f.String())
}

// TestView exposes reads only and tracks later writes to the field.
func TestView(t *testing.T) {
	f, err := heightfield.New(3)
	require.NoError(t, err)
	v := f.View()

	w, h := v.Dims()
	require.Equal(t, 3, w)
	require.Equal(t, 3, h)
	require.False(t, v.IsSet(0, 0))
	_, err = v.At(0, 0)
	require.ErrorIs(t, err, heightfield.ErrUnset)

	require.NoError(t, f.ZeroEdge(heightfield.Top))
	e, err := v.Edge(heightfield.Top)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0}, e)
	require.Equal(t, f.String(), v.String())

	var r heightfield.Reader = v
	_, isField := r.(*heightfield.Field)
	require.False(t, isField, "a View must not expose the mutable field")
}

// TestView_Zero is empty and fails every lookup.
func TestView_Zero(t *testing.T) {
	var v heightfield.View
	w, h := v.Dims()
	require.Zero(t, w)
	require.Zero(t, h)
	_, err := v.At(0, 0)
	require.ErrorIs(t, err, heightfield.ErrOutOfRange)
	_, err = v.Edge(heightfield.Left)
	require.ErrorIs(t, err, heightfield.ErrOutOfRange)
	require.False(t, v.IsSet(0, 0))
}
