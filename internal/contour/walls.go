package contour

import (
	"errors"
	"fmt"
)

// DefaultWallHeight is the extrusion depth used when none is configured.
const DefaultWallHeight = 5.0

// ErrInvalidWallHeight reports a non-positive wall height.
var ErrInvalidWallHeight = errors.New("invalid wall height")

// Walls extrudes every outline edge downwards by height into a quad of two
// triangles. Each quad gets its own four vertices: top-left, top-right,
// bottom-left, bottom-right.
func Walls(m *Mesh, outlines []Outline, height float64) (*Mesh, error) {
	if !(height > 0) {
		return nil, fmt.Errorf("wall height %v: %w", height, ErrInvalidWallHeight)
	}
	drop := Vec3{Y: Up.Y * height}
	walls := &Mesh{}
	for _, o := range outlines {
		for i := 0; i+1 < len(o); i++ {
			a, b := m.Vertices[o[i]], m.Vertices[o[i+1]]
			tl := walls.addVertex(a)
			tr := walls.addVertex(b)
			bl := walls.addVertex(a.Sub(drop))
			br := walls.addVertex(b.Sub(drop))
			walls.addTriangle(Triangle{tl, bl, br})
			walls.addTriangle(Triangle{br, tr, tl})
		}
	}
	return walls, nil
}
