package generate

import "cavegen/internal/cavemap"

// Smooth applies iterations passes of the 4-5 majority rule and returns a
// new grid. Each pass reads only the previous pass's snapshot.
func Smooth(g *cavemap.Grid, iterations int) *cavemap.Grid {
	cur := g.Clone()
	if iterations <= 0 {
		return cur
	}
	next := cur.Clone()
	for i := 0; i < iterations; i++ {
		for y := 0; y < cur.Height; y++ {
			for x := 0; x < cur.Width; x++ {
				walls := wallNeighbours(cur, x, y)
				switch {
				case walls > 4:
					next.Set(x, y, cavemap.Wall)
				case walls < 4:
					next.Set(x, y, cavemap.Empty)
				default:
					next.Set(x, y, cur.At(x, y))
				}
			}
		}
		cur, next = next, cur
	}
	return cur
}

// wallNeighbours counts Wall cells in the Moore neighbourhood of (x, y).
// Cells outside the grid count as Wall.
func wallNeighbours(g *cavemap.Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.IsWall(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}
