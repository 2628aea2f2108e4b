// Package terraingen is an in-memory terrain generator: Diamond-Square height
// fields stitched into a seamless tiled map with a flat zero perimeter.
//
// The work is split into small subpackages:
//
//	heightfield/   — square n×n altitude grid (n = 2^k+1) with presence tracking and edge access
//	diamondsquare/ — seeded Diamond-Square fill of a heightfield.Field
//	tilemap/       — Width×Height tiles seeded from their neighbours, plus a stitched composite view
//	gridgraph/     — land/water analysis of a finished map: islands, peaks, cheapest bridges
//	config/        — tilemap.Config from .env files and the process environment
//	telemetry/     — named OpenTelemetry tracers
//
// Quick start:
//
//	cfg := tilemap.DefaultConfig() // 4×2 tiles of 2049×2049, altitudes [0,1000]
//	m, err := tilemap.New(ctx, cfg, tilemap.WithLogger(slog.Default()))
//	if err != nil {
//		return err
//	}
//	w, h := m.Dims() // 8193×4097 composite samples
//	v, _ := m.At(w/2, h/2)
//
// Output is deterministic: the same Config (including Seed) always yields the
// same map.
package terraingen
