package diamondsquare_test

import (
	"fmt"

	"github.com/PhilSoe/JavaTerrainGen/diamondsquare"
	"github.com/PhilSoe/JavaTerrainGen/heightfield"
)

// ExampleGenerator_Generate fills a 3×3 field whose corners are pre-seeded.
// With Jitter=0 the output is pure interpolation: the centre is the mean of
// the corners and each border midpoint the mean of its in-bounds neighbours.
func ExampleGenerator_Generate() {
	f, _ := heightfield.New(3)
	_ = f.Set(0, 0, 0)
	_ = f.Set(2, 0, 80)
	_ = f.Set(0, 2, 40)
	_ = f.Set(2, 2, 120)

	g, _ := diamondsquare.NewSeeded(diamondsquare.Config{MinAlt: 0, MaxAlt: 1000, Jitter: 0}, 1)
	if err := g.Generate(f); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(f)
	// Output:
	// [0, 46, 80]
	// [33, 60, 86]
	// [40, 73, 120]
}

// ExampleSquareLengths lists the passes made over a 33×33 field.
func ExampleSquareLengths() {
	fmt.Println(diamondsquare.SquareLengths(33))
	// Output:
	// [32 17 9 5 3]
}
