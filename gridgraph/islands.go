// SPDX-License-Identifier: MIT

package gridgraph

// labelIslands flood-fills every land cell, scanning row-major so island
// indices follow the position of each island's first cell.
func (g *Graph) labelIslands() {
	g.label = make([]int, len(g.alt))
	for i := range g.label {
		g.label[i] = -1
	}

	offs := g.opts.Conn.offsets()
	var stack []int
	for start := range g.alt {
		if g.label[start] >= 0 || g.depth(start) > 0 {
			continue
		}
		id := len(g.islands)
		is := Island{Peak: g.Cell(start)}
		g.label[start] = id
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			is.Cells = append(is.Cells, u)
			if g.alt[u] > is.Peak.Value {
				is.Peak = g.Cell(u)
			}
			ux, uy := u%g.w, u/g.w
			for _, d := range offs {
				vx, vy := ux+d[0], uy+d[1]
				if !g.IsLand(vx, vy) {
					continue
				}
				if v := vy*g.w + vx; g.label[v] < 0 {
					g.label[v] = id
					stack = append(stack, v)
				}
			}
		}
		g.islands = append(g.islands, is)
	}
}

// Islands returns every island, ordered by first cell in row-major scan.
// The slice is a copy; the Cells slices are shared and must not be modified.
func (g *Graph) Islands() []Island {
	out := make([]Island, len(g.islands))
	copy(out, g.islands)
	return out
}

// IslandAt returns the index of the island covering (x,y), or false for
// water and out-of-range coordinates.
func (g *Graph) IslandAt(x, y int) (int, bool) {
	if !g.inBounds(x, y) {
		return 0, false
	}
	id := g.label[y*g.w+x]
	return id, id >= 0
}

// LandFraction returns the share of cells that are land, in [0, 1].
func (g *Graph) LandFraction() float64 {
	land := 0
	for _, is := range g.islands {
		land += is.Area()
	}
	return float64(land) / float64(len(g.alt))
}
