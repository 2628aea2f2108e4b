// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

var (
	// ErrNilReader indicates New was called without a height map.
	ErrNilReader = errors.New("gridgraph: reader is nil")
	// ErrEmptyGrid indicates a height map with zero width or height.
	ErrEmptyGrid = errors.New("gridgraph: height map has no cells")
	// ErrNonRectangular indicates FromRows input with ragged rows.
	ErrNonRectangular = errors.New("gridgraph: rows differ in length")
	// ErrIslandIndex indicates an island index outside the labelled set.
	ErrIslandIndex = errors.New("gridgraph: island index out of range")
)
