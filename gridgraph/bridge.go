// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/heap"
	"fmt"
)

// Bridge finds the cheapest way to join island src to island dst by filling
// water cells up to sea level.
//
// Dijkstra runs from every cell of src at once. Stepping onto land costs 0,
// stepping onto water costs SeaLevel - altitude. The search stops at the
// first settled cell of dst. Equal-cost frontiers are settled in row-major
// order, so the result is deterministic. src == dst yields a one-cell path
// at cost 0.
//
// Errors:
//   - ErrIslandIndex when src or dst is outside [0, len(Islands())).
func (g *Graph) Bridge(src, dst int) (Bridge, error) {
	n := len(g.islands)
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return Bridge{}, fmt.Errorf("Graph.Bridge(%d,%d) with %d islands: %w", src, dst, n, ErrIslandIndex)
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, len(g.alt))
	prev := make([]int, len(g.alt))
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	pq := &frontier{}
	for _, c := range g.islands[src].Cells {
		dist[c] = 0
		heap.Push(pq, entry{cell: c})
	}

	offs := g.opts.Conn.offsets()
	target := -1
	for pq.Len() > 0 {
		e := heap.Pop(pq).(entry)
		if e.dist > dist[e.cell] {
			continue // stale
		}
		if g.label[e.cell] == dst {
			target = e.cell
			break
		}
		ux, uy := e.cell%g.w, e.cell/g.w
		for _, d := range offs {
			vx, vy := ux+d[0], uy+d[1]
			if !g.inBounds(vx, vy) {
				continue
			}
			v := vy*g.w + vx
			if nd := e.dist + g.depth(v); nd < dist[v] {
				dist[v] = nd
				prev[v] = e.cell
				heap.Push(pq, entry{cell: v, dist: nd})
			}
		}
	}

	// Every cell is reachable, so the search always settles dst.
	var b Bridge
	for at := target; at >= 0; at = prev[at] {
		b.Path = append(b.Path, g.Cell(at))
		if d := g.depth(at); d > 0 {
			b.Fill++
		}
	}
	for i, j := 0, len(b.Path)-1; i < j; i, j = i+1, j-1 {
		b.Path[i], b.Path[j] = b.Path[j], b.Path[i]
	}
	b.Cost = dist[target]

	return b, nil
}

// entry is a frontier cell with its tentative cost.
type entry struct {
	cell, dist int
}

// frontier is a min-heap on (dist, cell).
type frontier []entry

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	return f[i].cell < f[j].cell
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any) { *f = append(*f, x.(entry)) }
func (f *frontier) Pop() any {
	old := *f
	e := old[len(old)-1]
	*f = old[:len(old)-1]
	return e
}
