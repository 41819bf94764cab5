// Package cavemap holds the binary wall/empty grid every generation stage
// reads and produces.
package cavemap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimensions is returned when a grid is requested with a
	// width or height below 1.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrInvalidParameter is returned for negative border sizes.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Grid is a fixed-size rectangle of cells stored in row-major order.
// Out-of-bounds reads report Wall.
type Grid struct {
	Width, Height int
	cells         []Cell
}

// New creates a Grid filled with Empty cells.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("grid %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return &Grid{Width: width, Height: height, cells: make([]Cell, width*height)}, nil
}

// MustNew is New for sizes known to be valid. It panics otherwise.
func MustNew(width, height int) *Grid {
	g, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return g
}

// Parse builds a grid from rows of '#' (wall) and any other rune (empty).
// Row 0 is y = 0. All rows must have the same length.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse: no rows: %w", ErrInvalidDimensions)
	}
	w := len([]rune(rows[0]))
	g, err := New(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("parse: row %d has %d cells, want %d: %w", y, len(runes), w, ErrInvalidDimensions)
		}
		for x, r := range runes {
			if r == '#' {
				g.cells[y*w+x] = Wall
			}
		}
	}
	return g, nil
}

// InBounds reports whether (x, y) is within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at (x, y), or Wall when (x, y) is outside the grid.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.Width+x]
}

// Set replaces the cell at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if g.InBounds(x, y) {
		g.cells[y*g.Width+x] = c
	}
}

// IsWall is a shorthand for At(x, y) == Wall.
func (g *Grid) IsWall(x, y int) bool { return g.At(x, y) == Wall }

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// Count returns how many cells equal c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.Width != o.Width || g.Height != o.Height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Rows renders each row as a string of '#' and '.' runes, y = 0 first.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		b.Reset()
		for x := 0; x < g.Width; x++ {
			b.WriteRune(g.cells[y*g.Width+x].Rune())
		}
		rows[y] = b.String()
	}
	return rows
}

// String returns Rows joined by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
