// Package contour turns a finished cave grid into geometry: a marching
// squares floor mesh covering every wall, the closed outlines of that mesh,
// and vertical wall strips extruded from the outlines.
package contour

import (
	"errors"
	"fmt"

	"cavegen/internal/cavemap"
)

// ErrInvalidCellSize reports a non-positive cell size.
var ErrInvalidCellSize = errors.New("invalid cell size")

// Corner bits of a square's configuration.
const (
	bottomLeft  = 1
	bottomRight = 2
	topRight    = 4
	topLeft     = 8
)

// point names one of the eight nodes a square can emit.
type point uint8

const (
	pTL point = iota
	pTR
	pBR
	pBL
	pCT // centre top
	pCR
	pCB
	pCL
)

// fans maps each configuration to the points of its polygon. The polygon is
// triangulated as a fan from its first point.
var fans = [16][]point{
	0:  nil,
	1:  {pCL, pCB, pBL},
	2:  {pBR, pCB, pCR},
	4:  {pTR, pCR, pCT},
	8:  {pTL, pCT, pCL},
	3:  {pCR, pBR, pBL, pCL},
	6:  {pCT, pTR, pBR, pCB},
	9:  {pTL, pCT, pCB, pBL},
	12: {pTL, pTR, pCR, pCL},
	5:  {pCT, pTR, pCR, pCB, pBL, pCL},
	10: {pTL, pCT, pCR, pBR, pCB, pCL},
	7:  {pCT, pTR, pBR, pBL, pCL},
	11: {pTL, pCT, pCR, pBR, pBL},
	13: {pTL, pTR, pCR, pCB, pBL},
	14: {pTL, pTR, pBR, pCB, pCL},
	15: {pTL, pTR, pBR, pBL},
}

// nodeKind distinguishes the three nodes owned by each grid cell: the
// control node at the cell centre and the midpoints above and to the right.
type nodeKind uint8

const (
	control nodeKind = iota
	above
	right
)

type node struct {
	x, y int
	kind nodeKind
}

// extractor holds per-node vertex assignments for one run.
type extractor struct {
	g       *cavemap.Grid
	size    float64
	originX float64
	originZ float64
	indices [3][]int // by nodeKind, row-major; -1 until first use
	mesh    *Mesh
}

// Extract runs marching squares over g. Each square spans four adjacent
// cell centres; every wall corner contributes to the solid fill. Nodes shared
// by neighbouring squares map to a single vertex.
func Extract(g *cavemap.Grid, cellSize float64) (*Mesh, error) {
	if !(cellSize > 0) {
		return nil, fmt.Errorf("cell size %v: %w", cellSize, ErrInvalidCellSize)
	}
	e := &extractor{
		g:       g,
		size:    cellSize,
		originX: -float64(g.Width) * cellSize / 2,
		originZ: -float64(g.Height) * cellSize / 2,
		mesh:    &Mesh{},
	}
	for k := range e.indices {
		e.indices[k] = make([]int, g.Width*g.Height)
		for i := range e.indices[k] {
			e.indices[k][i] = -1
		}
	}
	for y := 0; y < g.Height-1; y++ {
		for x := 0; x < g.Width-1; x++ {
			e.square(x, y)
		}
	}
	return e.mesh, nil
}

// Configuration returns the 4-bit corner configuration of square (x, y).
func Configuration(g *cavemap.Grid, x, y int) int {
	c := 0
	if g.IsWall(x, y+1) {
		c |= topLeft
	}
	if g.IsWall(x+1, y+1) {
		c |= topRight
	}
	if g.IsWall(x+1, y) {
		c |= bottomRight
	}
	if g.IsWall(x, y) {
		c |= bottomLeft
	}
	return c
}

func (e *extractor) square(x, y int) {
	config := Configuration(e.g, x, y)
	if config < 0 || config > 15 {
		panic(fmt.Sprintf("contour: square (%d,%d) has configuration %d", x, y, config))
	}
	e.mesh.Configs[config]++

	pts := fans[config]
	if len(pts) < 3 {
		return
	}
	vs := make([]int, len(pts))
	for i, p := range pts {
		vs[i] = e.vertex(e.resolve(x, y, p))
	}
	for i := 1; i+1 < len(vs); i++ {
		e.mesh.addTriangle(Triangle{vs[0], vs[i], vs[i+1]})
	}
}

// resolve maps a square-local point to the grid node that owns it.
func (e *extractor) resolve(x, y int, p point) node {
	switch p {
	case pTL:
		return node{x, y + 1, control}
	case pTR:
		return node{x + 1, y + 1, control}
	case pBR:
		return node{x + 1, y, control}
	case pBL:
		return node{x, y, control}
	case pCT:
		return node{x, y + 1, right}
	case pCR:
		return node{x + 1, y, above}
	case pCB:
		return node{x, y, right}
	case pCL:
		return node{x, y, above}
	}
	panic(fmt.Sprintf("contour: unknown point %d", p))
}

func (e *extractor) vertex(n node) int {
	i := n.y*e.g.Width + n.x
	if v := e.indices[n.kind][i]; v >= 0 {
		return v
	}
	v := e.mesh.addVertex(e.position(n))
	e.indices[n.kind][i] = v
	return v
}

func (e *extractor) position(n node) Vec3 {
	half := e.size / 2
	p := Vec3{
		X: e.originX + float64(n.x)*e.size + half,
		Z: e.originZ + float64(n.y)*e.size + half,
	}
	switch n.kind {
	case above:
		p.Z += half
	case right:
		p.X += half
	}
	return p
}
