// SPDX-License-Identifier: MIT

// Package gridgraph reads a finished height map as land and water and answers
// questions about its coastline: which islands exist, where their peaks are,
// and what the cheapest causeway between two of them costs.
//
// What:
//
//   - Graph snapshots any heightfield.Reader (a *heightfield.Field, a tile
//     View, a stitched *tilemap.Map). Cells at or above Options.SeaLevel are
//     land; cells below are water.
//   - Islands are labelled once, at construction, by flood fill. Each Island
//     carries its cells, area and peak.
//   - Bridge runs Dijkstra from one island to another. Crossing land is free;
//     entering a water cell costs its depth, SeaLevel - altitude, i.e. the
//     material needed to raise it to sea level. Shallow detours therefore win
//     over short deep crossings.
//
// Complexity:
//
//   - New:    O(W·H·d) time, O(W·H) memory (d = 4 or 8 neighbours).
//   - Bridge: O(W·H·d·log(W·H)) time, O(W·H) memory.
//
// Errors:
//
//   - ErrNilReader: New was given a nil reader.
//   - ErrEmptyGrid: the reader or rows have no cells.
//   - ErrNonRectangular: FromRows got rows of differing lengths.
//   - ErrIslandIndex: an island index outside [0, len(Islands())).
package gridgraph
