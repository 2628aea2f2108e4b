// SPDX-License-Identifier: MIT

package diamondsquare

import (
	"fmt"
	"math/rand"

	"github.com/PhilSoe/JavaTerrainGen/heightfield"
)

// Generator fills heightfield.Field values with Diamond-Square terrain.
// It is immutable apart from the RNG stream it consumes.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New returns a Generator drawing from rng.
//
// Errors:
//   - ErrNeedRandSource when rng is nil.
//   - Config.Validate errors.
func New(cfg Config, rng *rand.Rand) (*Generator, error) {
	if rng == nil {
		return nil, ErrNeedRandSource
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Generator{cfg: cfg, rng: rng}, nil
}

// NewSeeded is New with a fresh RNG from RandFromSeed(seed).
func NewSeeded(cfg Config, seed int64) (*Generator, error) {
	return New(cfg, RandFromSeed(seed))
}

// Config returns the generator configuration.
func (g *Generator) Config() Config { return g.cfg }

// SquareLengths returns the square lengths Generate visits for side n:
// n-1, then L/2+1 while the previous L is above 3.
// For n = 2^k+1 the sequence ends at 3 (or 2 when n = 3), the last pass
// that touches the remaining unit cells.
//
// Example: n=17 ⇒ [16 9 5 3].
func SquareLengths(n int) []int {
	var out []int
	for l := n - 1; l >= 2; l = l/2 + 1 {
		out = append(out, l)
		if l <= 3 {
			break
		}
	}

	return out
}

// Generate fills every unset cell of f.
//
// Implementation:
//   - Stage 1: seed the four corners that are still unset, in the order
//     (0,0), (0,max), (max,0), (max,max).
//   - Stage 2: for each L in SquareLengths(n): diamond pass, then square pass.
//
// Errors:
//   - ErrNilField for a nil field.
//   - heightfield.ErrUnset (wrapped) if an average needs a neighbour that is
//     still unset; this cannot happen for a valid field and signals a broken
//     precondition.
//
// Complexity: O(n²) time, O(1) extra space.
func (g *Generator) Generate(f *heightfield.Field) error {
	if f == nil {
		return ErrNilField
	}
	if err := g.seedCorners(f); err != nil {
		return err
	}
	for _, l := range SquareLengths(f.Size()) {
		if err := g.diamond(f, l); err != nil {
			return err
		}
		if err := g.square(f, l); err != nil {
			return err
		}
	}

	return nil
}

// seedCorners draws unset corners uniformly from [MinAlt, MaxAlt).
func (g *Generator) seedCorners(f *heightfield.Field) error {
	m := f.Max()
	corners := [4][2]int{{0, 0}, {0, m}, {m, 0}, {m, m}}
	for _, c := range corners {
		if f.IsSet(c[0], c[1]) {
			continue
		}
		v := g.cfg.MinAlt + g.rng.Intn(g.cfg.MaxAlt-g.cfg.MinAlt)
		if err := f.Set(c[0], c[1], v); err != nil {
			return err
		}
	}

	return nil
}

// diamond sets the centre of every l×l sub-square from its four diagonal
// corners at distance l/2. Centres start at l/2 with stride l-1.
func (g *Generator) diamond(f *heightfield.Field, l int) error {
	m, half := f.Max(), l/2
	for x := half; x < m; x += l - 1 {
		for y := half; y < m; y += l - 1 {
			if f.IsSet(x, y) {
				continue
			}
			sum := 0
			for _, d := range [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
				v, err := f.At(x+d[0]*half, y+d[1]*half)
				if err != nil {
					return fmt.Errorf("diamond L=%d at (%d,%d): %w", l, x, y, err)
				}
				sum += v
			}
			if err := f.Set(x, y, g.jitter(l, sum/4)); err != nil {
				return err
			}
		}
	}

	return nil
}

// square sets every unset point on the l/2 lattice from its orthogonal
// neighbours at distance l/2.
func (g *Generator) square(f *heightfield.Field, l int) error {
	m, half := f.Max(), l/2
	for x := 0; x <= m; x += half {
		for y := 0; y <= m; y += half {
			if f.IsSet(x, y) {
				continue
			}
			avg, err := plusAverage(f, x, y, half)
			if err != nil {
				return fmt.Errorf("square L=%d at (%d,%d): %w", l, x, y, err)
			}
			if err := f.Set(x, y, g.jitter(l, avg)); err != nil {
				return err
			}
		}
	}

	return nil
}

// plusAverage averages the in-bounds neighbours of (x,y) at distance d in
// the order left, up, right, down. Corner-adjacent border points see 2
// neighbours, other border points 3, interior points 4.
func plusAverage(f *heightfield.Field, x, y, d int) (int, error) {
	sum, count := 0, 0
	for _, o := range [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
		nx, ny := x+o[0]*d, y+o[1]*d
		if !f.InBounds(nx, ny) {
			continue
		}
		v, err := f.At(nx, ny)
		if err != nil {
			return 0, err
		}
		sum += v
		count++
	}

	return sum / count, nil
}

// jitter perturbs avg by (U[0,2l) - l) * Jitter, truncates toward zero and
// clamps into [MinAlt, MaxAlt]. Amplitude is proportional to l.
func (g *Generator) jitter(l, avg int) int {
	offset := float64(g.rng.Intn(2*l)-l) * g.cfg.Jitter
	out := int(float64(avg) + offset)
	if out > g.cfg.MaxAlt {
		return g.cfg.MaxAlt
	}
	if out < g.cfg.MinAlt {
		return g.cfg.MinAlt
	}

	return out
}
