package render

import (
	"cavegen/internal/cavemap"
	"cavegen/internal/generate"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved at the bottom of the screen.
const hudRows = 5

// Renderer draws a generated cave onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  Theme

	// ShowEdges highlights room edge tiles.
	ShowEdges bool
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(h-hudRows, 1), theme.TileWidth()),
		theme:  theme,
	}
}

// Camera returns the renderer's camera.
func (r *Renderer) Camera() *Camera { return r.camera }

// Theme returns the active theme.
func (r *Renderer) Theme() Theme { return r.theme }

// SetTheme switches glyphs and keeps the view centred on the same cell.
func (r *Renderer) SetTheme(t Theme) {
	cx, cy := r.camera.ScreenToWorld(r.camera.ViewWidth/2, r.camera.ViewHeight/2)
	r.theme = t
	r.camera.TileWidth = t.TileWidth()
	r.camera.Center(cx, cy)
}

// Resize adapts the viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-hudRows, 1)
}

// CenterOn recenters the camera on grid position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// DrawFrame clears the screen and renders the cave grid.
func (r *Renderer) DrawFrame(res *generate.Result) {
	r.screen.Clear()
	if res == nil || res.Grid == nil {
		return
	}
	r.drawGrid(res)
}

// tileKind is what a cell is drawn as.
type tileKind uint8

const (
	tileWall tileKind = iota
	tileFloor
	tilePassage
	tileEdge
)

func (r *Renderer) classify(res *generate.Result) []tileKind {
	g := res.Grid
	kinds := make([]tileKind, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) == cavemap.Empty {
				kinds[y*g.Width+x] = tileFloor
			}
		}
	}
	mark := func(c cavemap.Coord, k tileKind) {
		if g.InBounds(c.X, c.Y) && g.At(c.X, c.Y) == cavemap.Empty {
			kinds[c.Y*g.Width+c.X] = k
		}
	}
	if r.ShowEdges {
		for i := range res.Rooms {
			for _, c := range res.Rooms[i].EdgeTiles {
				mark(c, tileEdge)
			}
		}
	}
	for _, p := range res.Passages {
		for _, c := range p.Cells {
			mark(c, tilePassage)
		}
	}
	return kinds
}

func (r *Renderer) drawGrid(res *generate.Result) {
	g := res.Grid
	kinds := r.classify(res)
	bg := tcell.StyleDefault.Background(tcell.ColorBlack)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			var glyph string
			var color tcell.Color
			switch kinds[y*g.Width+x] {
			case tileWall:
				glyph, color = r.theme.Wall, r.theme.WallColor
			case tileFloor:
				glyph, color = r.theme.Floor, r.theme.FloorColor
			case tilePassage:
				glyph, color = r.theme.Passage, r.theme.PassageColor
			case tileEdge:
				glyph, color = r.theme.Edge, r.theme.EdgeColor
			}
			style := bg
			if color != tcell.ColorDefault {
				style = style.Foreground(color)
			}
			r.putGlyph(sx, sy, glyph, style)
		}
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < r.camera.TileWidth {
		// Pad narrow glyphs in wide themes so columns line up.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
