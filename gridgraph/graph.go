// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"

	"github.com/PhilSoe/JavaTerrainGen/heightfield"
)

// Graph is an immutable land/water reading of a height map. It is safe for
// concurrent use.
type Graph struct {
	w, h    int
	alt     []int // row-major altitudes
	opts    Options
	label   []int // island index per cell, -1 for water
	islands []Island
}

// New snapshots r and labels its islands.
//
// Errors:
//   - ErrNilReader, ErrEmptyGrid.
//   - Any error r.At returns (e.g. heightfield.ErrUnset on an unfinished
//     field), wrapped with the failing coordinate.
func New(r heightfield.Reader, opts Options) (*Graph, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	w, h := r.Dims()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}

	g := &Graph{w: w, h: h, alt: make([]int, w*h), opts: opts}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v, err := r.At(x, y)
			if err != nil {
				return nil, fmt.Errorf("gridgraph.New at (%d,%d): %w", x, y, err)
			}
			g.alt[y*w+x] = v
		}
	}
	g.labelIslands()

	return g, nil
}

// FromRows is New over a [y][x] slice, as produced by heightfield.Rows.
//
// Errors:
//   - ErrEmptyGrid, ErrNonRectangular.
func FromRows(rows [][]int, opts Options) (*Graph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	for _, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, ErrNonRectangular
		}
	}

	return New(rowsReader(rows), opts)
}

// rowsReader adapts a validated [y][x] slice to heightfield.Reader.
type rowsReader [][]int

func (r rowsReader) Dims() (w, h int) { return len(r[0]), len(r) }

func (r rowsReader) At(x, y int) (int, error) {
	if y < 0 || y >= len(r) || x < 0 || x >= len(r[y]) {
		return 0, heightfield.ErrOutOfRange
	}
	return r[y][x], nil
}

// Dims returns the map size in cells.
func (g *Graph) Dims() (w, h int) { return g.w, g.h }

// Options returns the options the graph was read with.
func (g *Graph) Options() Options { return g.opts }

func (g *Graph) inBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Cell returns the cell at row-major index idx. idx must be in range.
func (g *Graph) Cell(idx int) Cell {
	return Cell{X: idx % g.w, Y: idx / g.w, Value: g.alt[idx]}
}

// IsLand reports whether (x,y) is in bounds and at or above sea level.
func (g *Graph) IsLand(x, y int) bool {
	return g.inBounds(x, y) && g.alt[y*g.w+x] >= g.opts.SeaLevel
}

// depth is the fill needed to lift cell idx to sea level; 0 on land.
func (g *Graph) depth(idx int) int {
	if d := g.opts.SeaLevel - g.alt[idx]; d > 0 {
		return d
	}
	return 0
}
