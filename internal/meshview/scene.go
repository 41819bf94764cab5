// Package meshview draws a generated cave's floor mesh and outlines in a
// desktop window. The window itself needs the ebiten build tag; scene
// construction and projection build everywhere.
package meshview

import (
	"fmt"
	"math"

	"cavegen/internal/contour"
	"cavegen/internal/generate"
)

// Scene is everything a frame needs: the floor plan and the geometry
// derived from it.
type Scene struct {
	Result   *generate.Result
	Floor    *contour.Mesh
	Outlines []contour.Outline
}

// Build runs generation and contour extraction for one scene.
func Build(cfg *generate.Config, cellSize float64) (*Scene, error) {
	res, err := generate.Generate(cfg)
	if err != nil {
		return nil, err
	}
	floor, err := contour.Extract(res.Grid, cellSize)
	if err != nil {
		return nil, err
	}
	outlines, err := contour.Outlines(floor)
	if err != nil {
		return nil, fmt.Errorf("trace outlines for seed %q: %w", res.Seed, err)
	}
	return &Scene{Result: res, Floor: floor, Outlines: outlines}, nil
}

// Projection maps the mesh's horizontal plane onto window pixels. Mesh Z
// grows with the grid row, so row 0 ends up at the top of the window.
type Projection struct {
	Scale      float64
	MinX, MinZ float64
	OffX, OffY float64
}

// Fit returns the largest uniform projection that shows the whole mesh
// inside a w×h window with margin pixels on every side, centred.
func Fit(m *contour.Mesh, w, h, margin int) Projection {
	if m == nil || len(m.Vertices) == 0 {
		return Projection{Scale: 1}
	}
	minX, minZ := math.Inf(1), math.Inf(1)
	maxX, maxZ := math.Inf(-1), math.Inf(-1)
	for _, v := range m.Vertices {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minZ, maxZ = math.Min(minZ, v.Z), math.Max(maxZ, v.Z)
	}
	availW := float64(max(w-2*margin, 1))
	availH := float64(max(h-2*margin, 1))
	spanX, spanZ := maxX-minX, maxZ-minZ

	scale := 1.0
	switch {
	case spanX > 0 && spanZ > 0:
		scale = math.Min(availW/spanX, availH/spanZ)
	case spanX > 0:
		scale = availW / spanX
	case spanZ > 0:
		scale = availH / spanZ
	}
	return Projection{
		Scale: scale,
		MinX:  minX,
		MinZ:  minZ,
		OffX:  float64(margin) + (availW-spanX*scale)/2,
		OffY:  float64(margin) + (availH-spanZ*scale)/2,
	}
}

// Apply projects v to window coordinates. Height is ignored.
func (p Projection) Apply(v contour.Vec3) (float32, float32) {
	x := p.OffX + (v.X-p.MinX)*p.Scale
	y := p.OffY + (v.Z-p.MinZ)*p.Scale
	return float32(x), float32(y)
}

// Segments flattens outlines into projected line segments, four floats per
// segment: x0, y0, x1, y1.
func (p Projection) Segments(m *contour.Mesh, outlines []contour.Outline) []float32 {
	var segs []float32
	for _, o := range outlines {
		for i := 0; i+1 < len(o); i++ {
			x0, y0 := p.Apply(m.Vertices[o[i]])
			x1, y1 := p.Apply(m.Vertices[o[i+1]])
			segs = append(segs, x0, y0, x1, y1)
		}
	}
	return segs
}
