package generate

import "cavegen/internal/cavemap"

// Region is one maximal 4-connected set of cells sharing a value.
type Region struct {
	Value cavemap.Cell
	Tiles []cavemap.Coord
}

// IsRoom reports whether the region is open space.
func (r Region) IsRoom() bool { return r.Value == cavemap.Empty }

// Size returns the number of tiles in the region.
func (r Region) Size() int { return len(r.Tiles) }

// neighbours4 lists the orthogonal offsets in flood-fill order.
var neighbours4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Regions flood-fills every component of value v. Regions are discovered in
// row-major scan order; tiles within a region are in BFS enqueue order. Each
// cell is visited at most once.
func Regions(g *cavemap.Grid, v cavemap.Cell) []Region {
	visited := make([]bool, g.Width*g.Height)
	var regions []Region
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if visited[y*g.Width+x] || g.At(x, y) != v {
				continue
			}
			regions = append(regions, floodFill(g, x, y, visited))
		}
	}
	return regions
}

func floodFill(g *cavemap.Grid, startX, startY int, visited []bool) Region {
	v := g.At(startX, startY)
	region := Region{Value: v}
	queue := []cavemap.Coord{{X: startX, Y: startY}}
	visited[startY*g.Width+startX] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		region.Tiles = append(region.Tiles, cur)
		for _, d := range neighbours4 {
			nx, ny := cur.X+d[0], cur.Y+d[1]
			if !g.InBounds(nx, ny) || visited[ny*g.Width+nx] || g.At(nx, ny) != v {
				continue
			}
			visited[ny*g.Width+nx] = true
			queue = append(queue, cavemap.Coord{X: nx, Y: ny})
		}
	}
	return region
}

// Prune rewrites every region of value v smaller than threshold to the
// opposite value. It returns the new grid and the regions that survived,
// in discovery order.
func Prune(g *cavemap.Grid, v cavemap.Cell, threshold int) (*cavemap.Grid, []Region) {
	out := g.Clone()
	var kept []Region
	for _, r := range Regions(g, v) {
		if r.Size() >= threshold {
			kept = append(kept, r)
			continue
		}
		for _, t := range r.Tiles {
			out.Set(t.X, t.Y, v.Opposite())
		}
	}
	return out, kept
}
