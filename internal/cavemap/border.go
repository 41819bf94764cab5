package cavemap

import "fmt"

// WithBorder returns a copy of g padded by size Wall cells on every side.
// A size of 0 returns a plain clone.
func WithBorder(g *Grid, size int) (*Grid, error) {
	if size < 0 {
		return nil, fmt.Errorf("border size %d: %w", size, ErrInvalidParameter)
	}
	if size == 0 {
		return g.Clone(), nil
	}
	out, err := New(g.Width+2*size, g.Height+2*size)
	if err != nil {
		return nil, err
	}
	out.Fill(Wall)
	for y := 0; y < g.Height; y++ {
		src := g.cells[y*g.Width : (y+1)*g.Width]
		dst := (y+size)*out.Width + size
		copy(out.cells[dst:dst+g.Width], src)
	}
	return out, nil
}
