package tilemap_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/PhilSoe/JavaTerrainGen/heightfield"
	"github.com/PhilSoe/JavaTerrainGen/tilemap"
)

// ExampleNew builds a 3×2 map of 9×9 tiles and checks the seam between the
// first two tiles.
func ExampleNew() {
	cfg := tilemap.DefaultConfig()
	cfg.TileExponent = 3
	cfg.Width, cfg.Height = 3, 2
	cfg.Seed = 42

	m, err := tilemap.New(context.Background(), cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	w, h := m.Dims()
	fmt.Printf("tiles %d×%d of side %d, composite %d×%d\n", m.Columns(), m.Rows(), m.TileSide(), w, h)

	a, _ := m.Tile(0, 0)
	b, _ := m.Tile(1, 0)
	same := true
	for y := 0; y < m.TileSide(); y++ {
		va, _ := a.At(m.TileSide()-1, y)
		vb, _ := b.At(0, y)
		same = same && va == vb
	}
	fmt.Println("seam continuous:", same)

	corner, _ := m.At(0, 0)
	fmt.Println("corner altitude:", corner)

	_, err = m.At(w, 0)
	fmt.Println(err != nil && errors.Is(err, heightfield.ErrOutOfRange))
	// Output:
	// tiles 3×2 of side 9, composite 25×17
	// seam continuous: true
	// corner altitude: 0
	// true
}
