// SPDX-License-Identifier: MIT

package gridgraph

// DefaultSeaLevel is the water line on the default [0,1000] altitude scale.
const DefaultSeaLevel = 600

// Connectivity selects which neighbours touch: orthogonal only, or with diagonals.
type Connectivity int

const (
	// Conn4 links N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 also links the four diagonals.
	Conn8
)

var (
	orthogonal = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	compass    = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// offsets returns the neighbour deltas for c.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return compass
	}
	return orthogonal
}

// Options tunes how a height map is read.
type Options struct {
	// SeaLevel splits land (altitude ≥ SeaLevel) from water.
	SeaLevel int
	// Conn decides which cells are adjacent, for islands and bridges alike.
	Conn Connectivity
}

// DefaultOptions returns SeaLevel=DefaultSeaLevel, Conn=Conn4.
func DefaultOptions() Options {
	return Options{SeaLevel: DefaultSeaLevel, Conn: Conn4}
}

// Cell is one sample of the map.
type Cell struct {
	X, Y  int
	Value int // altitude
}

// Island is a maximal connected set of land cells.
//   - Cells lists row-major indices in discovery order; the first is the
//     island's top-left-most cell in scan order.
//   - Peak is the highest cell; ties keep the one found first.
type Island struct {
	Cells []int
	Peak  Cell
}

// Area returns the number of cells on the island.
func (is Island) Area() int { return len(is.Cells) }

// Bridge is the cheapest connection between two islands.
//   - Path runs from a cell of the source island to a cell of the
//     destination island, both ends included.
//   - Cost is the summed depth of the water cells on Path.
//   - Fill is how many of those cells are water.
type Bridge struct {
	Path []Cell
	Cost int
	Fill int
}
