// SPDX-License-Identifier: MIT

package tilemap

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/PhilSoe/JavaTerrainGen/diamondsquare"
	"github.com/PhilSoe/JavaTerrainGen/heightfield"
)

// Map is a finished, read-only grid of stitched tiles.
// It is safe for concurrent reads.
type Map struct {
	cfg   Config
	side  int
	tiles [][]*heightfield.Field // [column][row]
}

// Compile-time assertion: *Map is a Reader over the stitched composite.
var _ heightfield.Reader = (*Map)(nil)

// New validates cfg, allocates every tile, then seeds and generates them
// in row-major order (rows outer, columns inner). The returned Map is
// complete; on error no Map is returned.
//
// Seeding for tile (x,y), in this order:
//  1. x > 0:    left   ← right edge of (x-1,y)
//  2. y > 0:    top    ← bottom edge of (x,y-1)
//  3. x == W-1: right  ← left edge of (0,y)    (horizontal wrap)
//  4. y == H-1: bottom ← top edge of (x,0)     (vertical wrap)
//  5. zero top (y==0), bottom (y==H-1), left (x==0), right (x==W-1).
//
// Zeroing runs last, so the perimeter baseline wins wherever a copy and a
// zero rule target the same edge. In a single-column (W==1) or single-row
// (H==1) map the wrap source is the tile itself; that copy is skipped since
// the target edge is zeroed in the same step.
//
// ctx carries the tracing span only; generation is not cancellable.
//
// Errors:
//   - ErrInvalidConfiguration (wrapped) from cfg.Validate.
//   - Tile generation failures wrapped with the tile index.
//
// Complexity: O(W·H·n²) time and memory.
func New(ctx context.Context, cfg Config, opts ...Option) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts...)
	if o.rng == nil {
		o.rng = diamondsquare.RandFromSeed(cfg.Seed)
	}
	gen, err := diamondsquare.New(cfg.Generator(), o.rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	_, span := o.tracer.Start(ctx, "tilemap.generate", trace.WithAttributes(
		attribute.Int("tilemap.width", cfg.Width),
		attribute.Int("tilemap.height", cfg.Height),
		attribute.Int("tilemap.tile_side", cfg.TileSide()),
		attribute.Int64("tilemap.seed", cfg.Seed),
	))
	defer span.End()

	m := &Map{cfg: cfg, side: cfg.TileSide()}
	if err := m.allocate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "allocate tiles")
		return nil, err
	}

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if err := m.seed(x, y); err != nil {
				err = fmt.Errorf("seed tile(%d,%d): %w", x, y, err)
				span.RecordError(err)
				span.SetStatus(codes.Error, "seed tile")
				return nil, err
			}
			if err := gen.Generate(m.tiles[x][y]); err != nil {
				err = fmt.Errorf("generate tile(%d,%d): %w", x, y, err)
				span.RecordError(err)
				span.SetStatus(codes.Error, "generate tile")
				return nil, err
			}
			span.AddEvent("tile.generated", trace.WithAttributes(
				attribute.Int("tile.column", x),
				attribute.Int("tile.row", y),
			))
			o.logger.Debug("tile generated", "column", x, "row", y)
		}
	}

	o.logger.Info("terrain map generated",
		"width", cfg.Width, "height", cfg.Height,
		"tile_side", m.side, "seed", cfg.Seed)

	return m, nil
}

// allocate creates every empty tile before any seeding happens.
func (m *Map) allocate() error {
	m.tiles = make([][]*heightfield.Field, m.cfg.Width)
	for x := range m.tiles {
		m.tiles[x] = make([]*heightfield.Field, m.cfg.Height)
		for y := range m.tiles[x] {
			f, err := heightfield.New(m.side)
			if err != nil {
				return err
			}
			m.tiles[x][y] = f
		}
	}

	return nil
}

// seed copies neighbour edges into tile (x,y) and applies the perimeter
// baseline. See New for the rule order.
func (m *Map) seed(x, y int) error {
	w, h := m.cfg.Width, m.cfg.Height
	t := m.tiles[x][y]

	if x > 0 {
		if err := copyEdge(m.tiles[x-1][y], t, heightfield.Left); err != nil {
			return err
		}
	}
	if y > 0 {
		if err := copyEdge(m.tiles[x][y-1], t, heightfield.Top); err != nil {
			return err
		}
	}
	if x == w-1 && w > 1 {
		if err := copyEdge(m.tiles[0][y], t, heightfield.Right); err != nil {
			return err
		}
	}
	if y == h-1 && h > 1 {
		if err := copyEdge(m.tiles[x][0], t, heightfield.Bottom); err != nil {
			return err
		}
	}

	var zero []heightfield.Side
	if y == 0 {
		zero = append(zero, heightfield.Top)
	}
	if y == h-1 {
		zero = append(zero, heightfield.Bottom)
	}
	if x == 0 {
		zero = append(zero, heightfield.Left)
	}
	if x == w-1 {
		zero = append(zero, heightfield.Right)
	}
	for _, s := range zero {
		if err := t.ZeroEdge(s); err != nil {
			return err
		}
	}

	return nil
}

// copyEdge copies the side of src facing dst onto side to of dst.
func copyEdge(src, dst *heightfield.Field, to heightfield.Side) error {
	values, err := src.Edge(to.Opposite())
	if err != nil {
		return err
	}

	return dst.SetEdge(to, values)
}

// Config returns the configuration the map was built from.
func (m *Map) Config() Config { return m.cfg }

// Columns returns the number of tiles across.
func (m *Map) Columns() int { return m.cfg.Width }

// Rows returns the number of tiles down.
func (m *Map) Rows() int { return m.cfg.Height }

// TileSide returns the side length shared by every tile.
func (m *Map) TileSide() int { return m.side }

// Tile returns a read-only view of tile (col,row). The view has no
// mutators, so seams stay consistent however it is used.
//
// Errors:
//   - ErrTileOutOfRange outside [0,Width) × [0,Height); the View is empty.
func (m *Map) Tile(col, row int) (heightfield.View, error) {
	if col < 0 || col >= m.cfg.Width || row < 0 || row >= m.cfg.Height {
		return heightfield.View{}, fmt.Errorf("Map.Tile(%d,%d): %w", col, row, ErrTileOutOfRange)
	}

	return m.tiles[col][row].View(), nil
}

// Dims returns the stitched composite size in samples:
// W·(n-1)+1 by H·(n-1)+1.
func (m *Map) Dims() (w, h int) {
	step := m.side - 1
	return m.cfg.Width*step + 1, m.cfg.Height*step + 1
}

// At returns the altitude at composite coordinate (x,y).
// A sample on a seam is read from the tile to its right/below, except on
// the last column/row, which belongs to the last tile.
//
// Errors:
//   - heightfield.ErrOutOfRange outside Dims.
func (m *Map) At(x, y int) (int, error) {
	w, h := m.Dims()
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, fmt.Errorf("Map.At(%d,%d): %w", x, y, heightfield.ErrOutOfRange)
	}
	col, lx := m.locate(x, m.cfg.Width)
	row, ly := m.locate(y, m.cfg.Height)

	return m.tiles[col][row].At(lx, ly)
}

// locate maps a composite coordinate to (tile index, local coordinate).
func (m *Map) locate(v, tiles int) (tile, local int) {
	step := m.side - 1
	tile, local = v/step, v%step
	if tile == tiles {
		tile, local = tiles-1, step
	}

	return tile, local
}
