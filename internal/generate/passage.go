package generate

import "cavegen/internal/cavemap"

// Passage is a carved corridor between two rooms, identified by index.
type Passage struct {
	From, To   int
	StartTile  cavemap.Coord
	EndTile    cavemap.Coord
	DistanceSq int
	Radius     int
	Cells      []cavemap.Coord // cells turned from wall to empty, in carving order
}

func (p *Passage) translate(dx, dy int) {
	p.StartTile = cavemap.Coord{X: p.StartTile.X + dx, Y: p.StartTile.Y + dy}
	p.EndTile = cavemap.Coord{X: p.EndTile.X + dx, Y: p.EndTile.Y + dy}
	p.Cells = shift(p.Cells, dx, dy)
}

// carvePassage stamps a disc of the given radius at every point of the line
// from a to b and returns the cells it opened.
func carvePassage(g *cavemap.Grid, a, b cavemap.Coord, radius int) []cavemap.Coord {
	var opened []cavemap.Coord
	for _, p := range line(a, b) {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if dx*dx+dy*dy > radius*radius {
					continue
				}
				x, y := p.X+dx, p.Y+dy
				if !g.InBounds(x, y) || !g.IsWall(x, y) {
					continue
				}
				g.Set(x, y, cavemap.Empty)
				opened = append(opened, cavemap.Coord{X: x, Y: y})
			}
		}
	}
	return opened
}

// line rasterises the segment from a to b, both endpoints included. The
// axis with the larger delta advances every step; equal deltas step on x.
func line(a, b cavemap.Coord) []cavemap.Coord {
	x, y := a.X, a.Y
	dx, dy := b.X-a.X, b.Y-a.Y

	inverted := false
	step, gradientStep := sign(dx), sign(dy)
	longest, shortest := abs(dx), abs(dy)
	if longest < shortest {
		inverted = true
		longest, shortest = shortest, longest
		step, gradientStep = gradientStep, step
	}

	pts := make([]cavemap.Coord, 0, longest+1)
	acc := longest / 2
	for i := 0; i < longest; i++ {
		pts = append(pts, cavemap.Coord{X: x, Y: y})
		if inverted {
			y += step
		} else {
			x += step
		}
		acc += shortest
		if acc >= longest {
			if inverted {
				x += gradientStep
			} else {
				y += gradientStep
			}
			acc -= longest
		}
	}
	return append(pts, cavemap.Coord{X: x, Y: y})
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
