// SPDX-License-Identifier: MIT

package tilemap

import "errors"

var (
	// ErrInvalidConfiguration indicates a Config that fails validation.
	ErrInvalidConfiguration = errors.New("tilemap: invalid configuration")

	// ErrTileOutOfRange indicates a tile column/row outside the map.
	ErrTileOutOfRange = errors.New("tilemap: tile index out of range")
)
