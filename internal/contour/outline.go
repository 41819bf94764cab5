package contour

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// ErrNonManifold reports a vertex with more than two boundary neighbours.
// Meshes from Extract never produce one.
var ErrNonManifold = errors.New("non-manifold mesh outline")

// Outline is a closed loop of vertex indices; the first index is repeated
// at the end.
type Outline []int

// Edges returns the number of boundary edges the outline walks.
func (o Outline) Edges() int {
	if len(o) == 0 {
		return 0
	}
	return len(o) - 1
}

type tracer struct {
	m       *Mesh
	visited mapset.Set[int]
}

// Outlines traces the silhouette of m. Vertices are tried in index order;
// from each unvisited vertex with a boundary edge the walk follows the first
// unvisited boundary neighbour until none is left, then closes the loop.
// Every boundary vertex ends up in exactly one outline.
func Outlines(m *Mesh) ([]Outline, error) {
	t := &tracer{m: m, visited: mapset.New[int]()}
	var outlines []Outline
	for start := range m.Vertices {
		if t.visited.Has(start) {
			continue
		}
		next, err := t.next(start)
		if err != nil {
			return nil, err
		}
		if next < 0 {
			continue
		}
		t.visited.Put(start)
		o := Outline{start}
		for next >= 0 {
			o = append(o, next)
			t.visited.Put(next)
			if next, err = t.next(next); err != nil {
				return nil, err
			}
		}
		outlines = append(outlines, append(o, start))
	}
	return outlines, nil
}

// next returns the first unvisited boundary neighbour of v, or -1.
func (t *tracer) next(v int) (int, error) {
	nb := t.boundaryNeighbours(v)
	if len(nb) > 2 {
		return -1, fmt.Errorf("vertex %d has %d boundary neighbours: %w", v, len(nb), ErrNonManifold)
	}
	for _, b := range nb {
		if !t.visited.Has(b) {
			return b, nil
		}
	}
	return -1, nil
}

// boundaryNeighbours lists the distinct vertices joined to v by a boundary
// edge, in triangle emission order then corner order.
func (t *tracer) boundaryNeighbours(v int) []int {
	var out []int
	for _, ti := range t.m.incident[v] {
		for _, b := range t.m.Triangles[ti] {
			if b == v || !t.isBoundary(v, b) {
				continue
			}
			dup := false
			for _, seen := range out {
				dup = dup || seen == b
			}
			if !dup {
				out = append(out, b)
			}
		}
	}
	return out
}

// isBoundary reports whether exactly one triangle contains both a and b.
func (t *tracer) isBoundary(a, b int) bool {
	shared := 0
	for _, ti := range t.m.incident[a] {
		if t.m.Triangles[ti].Contains(b) {
			shared++
			if shared > 1 {
				return false
			}
		}
	}
	return shared == 1
}
