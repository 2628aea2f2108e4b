// SPDX-License-Identifier: MIT

package tilemap

import (
	"fmt"

	"github.com/PhilSoe/JavaTerrainGen/diamondsquare"
	"github.com/PhilSoe/JavaTerrainGen/heightfield"
)

// Bounds and defaults for Config.
const (
	MinTileExponent = 1  // smallest tile: 3×3
	MaxTileExponent = 14 // largest tile: 16385×16385

	DefaultTileExponent = 11 // 2049×2049 tiles
	DefaultWidth        = 4  // tiles across
	DefaultHeight       = 2  // tiles down
	DefaultSeed         = diamondsquare.DefaultSeed

	// Baseline is the altitude forced onto the map perimeter.
	Baseline = 0
)

// Config describes one map. Every field takes part in the output: two maps
// built from equal Configs are identical.
//
// Fields:
//   - TileExponent  — tile side is 2^TileExponent+1, in [MinTileExponent, MaxTileExponent].
//   - Width, Height — map size in tiles, each ≥ 1. Wraparound is only
//     meaningful from 2 up; see New for the single-row/column policy.
//   - MinAlt, MaxAlt — altitude range; must contain Baseline (0).
//   - Jitter        — roughness in [0, 1].
//   - Seed          — RNG seed; 0 selects DefaultSeed.
type Config struct {
	TileExponent int
	Width        int
	Height       int
	MinAlt       int
	MaxAlt       int
	Jitter       float64
	Seed         int64
}

// DefaultConfig returns the reference terrain settings:
// 4×2 tiles of 2049×2049, altitudes [0,1000], jitter 0.9, seed 1.
func DefaultConfig() Config {
	return Config{
		TileExponent: DefaultTileExponent,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		MinAlt:       diamondsquare.DefaultMinAlt,
		MaxAlt:       diamondsquare.DefaultMaxAlt,
		Jitter:       diamondsquare.DefaultJitter,
		Seed:         DefaultSeed,
	}
}

// TileSide returns 2^TileExponent+1.
func (c Config) TileSide() int {
	return heightfield.SideFromExponent(c.TileExponent)
}

// Generator returns the diamondsquare settings carried by c.
func (c Config) Generator() diamondsquare.Config {
	return diamondsquare.Config{MinAlt: c.MinAlt, MaxAlt: c.MaxAlt, Jitter: c.Jitter}
}

// Validate checks every field. All failures wrap ErrInvalidConfiguration;
// generator range/jitter failures additionally wrap the diamondsquare sentinel.
func (c Config) Validate() error {
	if c.TileExponent < MinTileExponent || c.TileExponent > MaxTileExponent {
		return fmt.Errorf("%w: tile exponent %d not in [%d,%d]",
			ErrInvalidConfiguration, c.TileExponent, MinTileExponent, MaxTileExponent)
	}
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: map must be at least 1×1 tiles, got %d×%d",
			ErrInvalidConfiguration, c.Width, c.Height)
	}
	if err := c.Generator().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if c.MinAlt > Baseline || c.MaxAlt < Baseline {
		return fmt.Errorf("%w: altitude range [%d,%d] excludes baseline %d",
			ErrInvalidConfiguration, c.MinAlt, c.MaxAlt, Baseline)
	}

	return nil
}
