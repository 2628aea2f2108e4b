// SPDX-License-Identifier: MIT

package diamondsquare

import (
	"fmt"
	"math"
)

// Defaults taken from the reference terrain settings.
const (
	DefaultMinAlt = 0    // altitude floor
	DefaultMaxAlt = 1000 // altitude ceiling
	DefaultJitter = 0.9  // roughness factor

	// AltitudeLimit bounds |MinAlt| and |MaxAlt| so the corner span and a
	// four-term neighbour sum both fit in a 32-bit int.
	AltitudeLimit = math.MaxInt32 / 4
)

// Config holds the numeric knobs of the generator.
//
// Fields:
//   - MinAlt, MaxAlt — closed altitude range every jittered value is clamped to.
//     Unset corners are drawn from [MinAlt, MaxAlt).
//   - Jitter         — roughness factor in [0, 1]; 0 turns the generator into
//     pure interpolation (random draws still happen, so the stream position
//     does not depend on Jitter).
type Config struct {
	MinAlt int
	MaxAlt int
	Jitter float64
}

// DefaultConfig returns {MinAlt: 0, MaxAlt: 1000, Jitter: 0.9}.
func DefaultConfig() Config {
	return Config{
		MinAlt: DefaultMinAlt,
		MaxAlt: DefaultMaxAlt,
		Jitter: DefaultJitter,
	}
}

// Validate checks the altitude range and jitter factor.
//
// Errors:
//   - ErrInvalidAltitudeRange when MinAlt >= MaxAlt or either bound lies
//     outside [-AltitudeLimit, AltitudeLimit].
//   - ErrInvalidJitter when Jitter is NaN or outside [0, 1].
func (c Config) Validate() error {
	if c.MinAlt >= c.MaxAlt {
		return fmt.Errorf("altitude range [%d,%d]: %w", c.MinAlt, c.MaxAlt, ErrInvalidAltitudeRange)
	}
	if c.MinAlt < -AltitudeLimit || c.MaxAlt > AltitudeLimit {
		return fmt.Errorf("altitude range [%d,%d] exceeds ±%d: %w",
			c.MinAlt, c.MaxAlt, AltitudeLimit, ErrInvalidAltitudeRange)
	}
	if math.IsNaN(c.Jitter) || c.Jitter < 0 || c.Jitter > 1 {
		return fmt.Errorf("jitter %v: %w", c.Jitter, ErrInvalidJitter)
	}

	return nil
}
