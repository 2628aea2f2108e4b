// SPDX-License-Identifier: MIT

package diamondsquare

import "errors"

var (
	// ErrInvalidAltitudeRange indicates MinAlt >= MaxAlt or a bound beyond AltitudeLimit.
	ErrInvalidAltitudeRange = errors.New("diamondsquare: invalid altitude range")

	// ErrInvalidJitter indicates a jitter factor outside [0, 1] or not finite.
	ErrInvalidJitter = errors.New("diamondsquare: jitter must be in [0, 1]")

	// ErrNeedRandSource indicates a nil *rand.Rand was supplied.
	ErrNeedRandSource = errors.New("diamondsquare: rng is required")

	// ErrNilField indicates Generate was called with a nil field.
	ErrNilField = errors.New("diamondsquare: field is nil")
)
