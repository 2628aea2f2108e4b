package tilemap_test

import (
	"context"
	"testing"

	"github.com/PhilSoe/JavaTerrainGen/tilemap"
)

// BenchmarkNew4x2 measures a 4×2 map of 129×129 tiles.
// Complexity: O(W·H·n²)
func BenchmarkNew4x2(b *testing.B) {
	cfg := tilemap.DefaultConfig()
	cfg.TileExponent = 7
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tilemap.New(context.Background(), cfg); err != nil {
			b.Fatalf("New: %v", err)
		}
	}
}
