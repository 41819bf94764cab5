package contour

import (
	"errors"
	"testing"
)

func TestWallsExtrudeEveryEdge(t *testing.T) {
	m := mustExtract(t, block(t))
	outlines, err := Outlines(m)
	if err != nil {
		t.Fatal(err)
	}
	walls, err := Walls(m, outlines, 3)
	if err != nil {
		t.Fatal(err)
	}
	edges := outlines[0].Edges()
	if len(walls.Vertices) != 4*edges || len(walls.Triangles) != 2*edges {
		t.Fatalf("walls: %d vertices, %d triangles; want %d and %d",
			len(walls.Vertices), len(walls.Triangles), 4*edges, 2*edges)
	}

	o := outlines[0]
	top, next := m.Vertices[o[0]], m.Vertices[o[1]]
	want := []Vec3{top, next, {X: top.X, Y: -3, Z: top.Z}, {X: next.X, Y: -3, Z: next.Z}}
	for i, w := range want {
		if walls.Vertices[i] != w {
			t.Errorf("quad vertex %d = %+v, want %+v", i, walls.Vertices[i], w)
		}
	}
	if walls.Triangles[0] != (Triangle{0, 2, 3}) || walls.Triangles[1] != (Triangle{3, 1, 0}) {
		t.Errorf("quad triangles = %v %v, want [0 2 3] [3 1 0]", walls.Triangles[0], walls.Triangles[1])
	}
}

func TestWallsRejectHeight(t *testing.T) {
	m := mustExtract(t, block(t))
	for _, h := range []float64{0, -DefaultWallHeight} {
		if _, err := Walls(m, nil, h); !errors.Is(err, ErrInvalidWallHeight) {
			t.Errorf("height %v: err = %v, want ErrInvalidWallHeight", h, err)
		}
	}
}

func TestWallsNoOutlines(t *testing.T) {
	walls, err := Walls(&Mesh{}, nil, DefaultWallHeight)
	if err != nil {
		t.Fatal(err)
	}
	if !walls.Empty() {
		t.Error("no outlines should give an empty wall mesh")
	}
}
