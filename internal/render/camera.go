package render

// Camera translates between grid coordinates and screen coordinates.
// Grid X is multiplied by TileWidth because wide glyphs occupy 2 terminal
// columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
	TileWidth  int // terminal columns per grid cell
}

// NewCamera creates a camera centered on (cx, cy).
func NewCamera(cx, cy, viewW, viewH, tileW int) *Camera {
	if tileW < 1 {
		tileW = 1
	}
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH, TileWidth: tileW}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so that grid position (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - (c.ViewWidth/c.TileWidth)/2
	c.OffsetY = cy - c.ViewHeight/2
}

// Scroll moves the view by (dx, dy) grid cells.
func (c *Camera) Scroll(dx, dy int) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// Clamp keeps a gridW×gridH grid on screen: the offset never runs past the
// far edge, and never negative. Grids smaller than the view sit at offset 0.
func (c *Camera) Clamp(gridW, gridH int) {
	cols := c.ViewWidth / c.TileWidth
	c.OffsetX = clamp(c.OffsetX, 0, max(0, gridW-cols))
	c.OffsetY = clamp(c.OffsetY, 0, max(0, gridH-c.ViewHeight))
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// WorldToScreen converts grid (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * c.TileWidth
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx+c.TileWidth <= c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to grid coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx/c.TileWidth + c.OffsetX, sy + c.OffsetY
}
