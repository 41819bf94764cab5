package contour

import (
	"errors"
	"math"
	"testing"

	"cavegen/internal/cavemap"
)

func mustParse(t *testing.T, rows ...string) *cavemap.Grid {
	t.Helper()
	g, err := cavemap.Parse(rows...)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return g
}

func mustExtract(t *testing.T, g *cavemap.Grid) *Mesh {
	t.Helper()
	m, err := Extract(g, 1)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	return m
}

// block is a 2x2 wall block inside a 4x4 grid. Its only solid square is the
// one spanning the four wall centres.
func block(t *testing.T) *cavemap.Grid {
	return mustParse(t,
		"....",
		".##.",
		".##.",
		"....",
	)
}

func TestExtractWallBlock(t *testing.T) {
	m := mustExtract(t, block(t))

	if m.Configs[15] != 1 {
		t.Errorf("config-15 squares = %d, want 1", m.Configs[15])
	}
	for _, c := range []int{1, 2, 3, 4, 6, 8, 9, 12} {
		if m.Configs[c] != 1 {
			t.Errorf("config %d squares = %d, want 1", c, m.Configs[c])
		}
	}
	if len(m.Vertices) != 12 {
		t.Errorf("vertices = %d, want 4 corners + 8 midpoints", len(m.Vertices))
	}
	// 1 + 2 + 1 on each outer row, 2 + 2 + 2 in the middle.
	if len(m.Triangles) != 14 {
		t.Errorf("triangles = %d, want 14", len(m.Triangles))
	}
}

func TestExtractVertexPositions(t *testing.T) {
	m := mustExtract(t, block(t))
	// Square (0,0) is configuration 4: top-right, centre-right, centre-top.
	want := []Vec3{
		{X: -0.5, Z: -0.5}, // cell (1,1)
		{X: -0.5, Z: -1.0}, // above cell (1,0)
		{X: -1.0, Z: -0.5}, // right of cell (0,1)
	}
	for i, w := range want {
		if m.Vertices[i] != w {
			t.Errorf("vertex %d = %+v, want %+v", i, m.Vertices[i], w)
		}
	}
	if got := m.Triangles[0]; got != (Triangle{0, 1, 2}) {
		t.Errorf("first triangle = %v, want [0 1 2]", got)
	}
}

func TestExtractCellSizeScales(t *testing.T) {
	m, err := Extract(block(t), 2.5)
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Vertices[0]; got != (Vec3{X: -1.25, Z: -1.25}) {
		t.Errorf("vertex 0 = %+v, want (-1.25, 0, -1.25)", got)
	}
}

func TestExtractSharesVertices(t *testing.T) {
	g := mustParse(t,
		"###",
		"###",
		"###",
	)
	m := mustExtract(t, g)
	if m.Configs[15] != 4 {
		t.Errorf("config-15 squares = %d, want 4", m.Configs[15])
	}
	if len(m.Vertices) != 9 {
		t.Errorf("vertices = %d, want one per cell", len(m.Vertices))
	}
	if len(m.Triangles) != 8 {
		t.Errorf("triangles = %d, want 8", len(m.Triangles))
	}
	// The centre cell is shared by all four squares.
	centre := -1
	for i, v := range m.Vertices {
		if v == (Vec3{}) {
			centre = i
		}
	}
	if centre < 0 {
		t.Fatal("no vertex at the origin")
	}
	if n := len(m.TrianglesAt(centre)); n < 4 {
		t.Errorf("centre vertex used by %d triangles, want at least 4", n)
	}
}

func TestExtractDegenerateGrids(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"all empty", []string{"....", "....", "...."}},
		{"single cell", []string{"#"}},
		{"single row", []string{"####"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustExtract(t, mustParse(t, tt.rows...))
			if !m.Empty() || len(m.Vertices) != 0 {
				t.Errorf("got %d vertices, %d triangles; want an empty mesh", len(m.Vertices), len(m.Triangles))
			}
		})
	}
}

func TestExtractRejectsCellSize(t *testing.T) {
	for _, s := range []float64{0, -1, math.NaN()} {
		if _, err := Extract(block(t), s); !errors.Is(err, ErrInvalidCellSize) {
			t.Errorf("cell size %v: err = %v, want ErrInvalidCellSize", s, err)
		}
	}
}

func TestConfiguration(t *testing.T) {
	g := mustParse(t,
		"#.",
		".#",
	)
	// Row 0 is the bottom of the square: BL=(0,0) wall, BR=(1,0) empty,
	// TL=(0,1) empty, TR=(1,1) wall.
	if got := Configuration(g, 0, 0); got != bottomLeft|topRight {
		t.Errorf("configuration = %d, want %d", got, bottomLeft|topRight)
	}
}

func TestTrianglesAtOutOfRange(t *testing.T) {
	m := mustExtract(t, block(t))
	if m.TrianglesAt(-1) != nil || m.TrianglesAt(len(m.Vertices)) != nil {
		t.Error("out-of-range vertex should have no triangles")
	}
}

func TestIndicesFlatten(t *testing.T) {
	m := mustExtract(t, block(t))
	idx := m.Indices()
	if len(idx) != 3*len(m.Triangles) {
		t.Fatalf("indices = %d, want %d", len(idx), 3*len(m.Triangles))
	}
	for i, tri := range m.Triangles {
		if idx[3*i] != tri[0] || idx[3*i+1] != tri[1] || idx[3*i+2] != tri[2] {
			t.Errorf("triangle %d flattened out of order", i)
		}
	}
}
