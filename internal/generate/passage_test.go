package generate

import (
	"testing"

	"cavegen/internal/cavemap"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		a, b cavemap.Coord
	}{
		{"horizontal", cavemap.Coord{X: 0, Y: 0}, cavemap.Coord{X: 5, Y: 0}},
		{"vertical", cavemap.Coord{X: 2, Y: 7}, cavemap.Coord{X: 2, Y: 1}},
		{"shallow", cavemap.Coord{X: 0, Y: 0}, cavemap.Coord{X: 9, Y: 3}},
		{"steep", cavemap.Coord{X: 4, Y: 0}, cavemap.Coord{X: 1, Y: 8}},
		{"diagonal", cavemap.Coord{X: 3, Y: 3}, cavemap.Coord{X: 0, Y: 0}},
		{"point", cavemap.Coord{X: 1, Y: 1}, cavemap.Coord{X: 1, Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := line(tt.a, tt.b)
			want := max(abs(tt.b.X-tt.a.X), abs(tt.b.Y-tt.a.Y)) + 1
			if len(pts) != want {
				t.Fatalf("len = %d, want %d", len(pts), want)
			}
			if pts[0] != tt.a || pts[len(pts)-1] != tt.b {
				t.Errorf("endpoints = %v..%v, want %v..%v", pts[0], pts[len(pts)-1], tt.a, tt.b)
			}
			for i := 1; i < len(pts); i++ {
				dx, dy := abs(pts[i].X-pts[i-1].X), abs(pts[i].Y-pts[i-1].Y)
				if dx > 1 || dy > 1 || dx+dy == 0 {
					t.Errorf("step %d: %v -> %v is not an 8-neighbour move", i, pts[i-1], pts[i])
				}
			}
		})
	}
}

func TestLineAdvancesLongAxis(t *testing.T) {
	pts := line(cavemap.Coord{X: 0, Y: 0}, cavemap.Coord{X: 6, Y: 2})
	for i, p := range pts {
		if p.X != i {
			t.Errorf("point %d: x=%d, want %d", i, p.X, i)
		}
	}
}

func TestCarvePassageRadius(t *testing.T) {
	tests := []struct {
		name   string
		radius int
		want   int
	}{
		{"radius 0 opens the line", 0, 5},
		// A radius-2 disc covers 13 cells; each further step along x adds
		// a column of 5.
		{"radius 2 opens a band", 2, 13 + 4*5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := cavemap.MustNew(9, 9)
			g.Fill(cavemap.Wall)
			opened := carvePassage(g, cavemap.Coord{X: 2, Y: 4}, cavemap.Coord{X: 6, Y: 4}, tt.radius)
			if len(opened) != tt.want {
				t.Errorf("opened %d cells, want %d", len(opened), tt.want)
			}
			if g.Count(cavemap.Empty) != tt.want {
				t.Errorf("grid has %d empty cells, want %d", g.Count(cavemap.Empty), tt.want)
			}
			seen := make(map[cavemap.Coord]bool)
			for _, c := range opened {
				if seen[c] {
					t.Errorf("cell %v recorded twice", c)
				}
				seen[c] = true
			}
		})
	}
}

func TestCarvePassageRecordsOnlyOpenedCells(t *testing.T) {
	g := mustParse(t,
		"#####",
		"#...#",
		"#####",
	)
	opened := carvePassage(g, cavemap.Coord{X: 1, Y: 1}, cavemap.Coord{X: 3, Y: 1}, 0)
	if len(opened) != 0 {
		t.Errorf("carving through open cells recorded %v", opened)
	}
}

func TestCarvePassageClipsToGrid(t *testing.T) {
	g := cavemap.MustNew(3, 3)
	g.Fill(cavemap.Wall)
	opened := carvePassage(g, cavemap.Coord{X: 0, Y: 0}, cavemap.Coord{X: 0, Y: 0}, 3)
	if len(opened) != 9 {
		t.Errorf("opened %d cells, want all 9 in bounds", len(opened))
	}
}
