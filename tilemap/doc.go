// SPDX-License-Identifier: MIT

// Package tilemap composes many Diamond-Square height fields into one
// seamless terrain map.
//
// What:
//
//   - Map owns a Width×Height grid of heightfield.Field tiles, indexed
//     [column][row], all with side 2^TileExponent+1.
//   - Before a tile is generated its shared edges are copied from neighbours
//     that already exist, so seams are bit-identical on both sides.
//   - The last column copies its right edge from column 0 and the last row
//     its bottom edge from row 0 (wraparound).
//   - The outer perimeter of the whole map is forced to altitude 0, the
//     baseline (sea floor) that frames the terrain.
//
// Traversal:
//
//	rows outer, columns inner:   (0,0) (1,0) … (W-1,0)
//	                             (0,1) (1,1) … (W-1,1)
//	                               …
//
// The order decides which neighbours exist at seeding time and in which
// order the single shared RNG is consumed. Output is a deterministic
// function of Config (seed included) and this order.
//
// Stitched view:
//
//	Map implements heightfield.Reader over the composite map. Adjacent tiles
//	share their seam, so it is stored once: the composite is
//	W·(n-1)+1 × H·(n-1)+1 samples.
//
// Errors:
//
//   - ErrInvalidConfiguration: Config.Validate failed (side exponent, tile
//     counts, altitude range, jitter).
//   - ErrTileOutOfRange: Tile called with a column/row outside the grid.
//   - heightfield.ErrOutOfRange: At outside the composite bounds.
//
// Observability:
//
//   - WithLogger: log/slog logger (debug per tile, info on completion).
//   - WithTracer: OpenTelemetry tracer; one "tilemap.generate" span per map
//     with a "tile.generated" event per tile.
package tilemap
