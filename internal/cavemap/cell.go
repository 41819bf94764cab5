package cavemap

// Cell is the value stored in one grid position.
type Cell uint8

const (
	Empty Cell = iota
	Wall
)

// Opposite returns Wall for Empty and Empty for Wall.
func (c Cell) Opposite() Cell {
	if c == Wall {
		return Empty
	}
	return Wall
}

// String returns a readable name for the cell value.
func (c Cell) String() string {
	if c == Wall {
		return "wall"
	}
	return "empty"
}

// Rune returns the ASCII glyph used by Grid.String.
func (c Cell) Rune() rune {
	if c == Wall {
		return '#'
	}
	return '.'
}

// Coord identifies a grid cell.
type Coord struct {
	X, Y int
}

// DistanceSq returns the squared Euclidean distance between c and o.
func (c Coord) DistanceSq(o Coord) int {
	dx, dy := c.X-o.X, c.Y-o.Y
	return dx*dx + dy*dy
}
