package generate

import (
	"math/rand"

	"cavegen/internal/cavemap"
)

// Initialize builds a width×height grid where each cell is Wall with
// probability fillPercent/100.
//
// One draw of rng.Intn(100) is consumed per cell in row-major order (y outer,
// x inner), including edge cells. With sealEdges the edge ring discards its
// draws and is forced to Wall, so sealing never shifts which draw lands on
// which interior cell. Changing width or height does.
func Initialize(width, height int, seed int64, fillPercent int, sealEdges bool) (*cavemap.Grid, error) {
	g, err := cavemap.New(width, height)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			draw := rng.Intn(100)
			if sealEdges && (x == 0 || y == 0 || x == width-1 || y == height-1) {
				g.Set(x, y, cavemap.Wall)
				continue
			}
			if draw < fillPercent {
				g.Set(x, y, cavemap.Wall)
			}
		}
	}
	return g, nil
}
