package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Theme holds the glyphs and colors used to draw a cave.
// Emoji are rendered by the terminal with their own colors, so emoji themes
// rely on distinct glyphs for passages and edges instead of tinting.
type Theme struct {
	Name    string
	Wall    string
	Floor   string
	Passage string // carved corridor cells
	Edge    string // room cells touching a wall

	WallColor    tcell.Color
	FloorColor   tcell.Color
	PassageColor tcell.Color
	EdgeColor    tcell.Color
}

// TileWidth returns the number of terminal columns one cell takes.
func (t Theme) TileWidth() int {
	w := runewidth.StringWidth(t.Wall)
	for _, g := range []string{t.Floor, t.Passage, t.Edge} {
		w = max(w, runewidth.StringWidth(g))
	}
	return max(w, 1)
}

// Themes lists the built-in themes; the first is the default.
var Themes = []Theme{
	{
		Name:         "ascii",
		Wall:         "#",
		Floor:        ".",
		Passage:      ":",
		Edge:         ",",
		WallColor:    tcell.ColorGray,
		FloorColor:   tcell.ColorDarkGoldenrod,
		PassageColor: tcell.ColorLightYellow,
		EdgeColor:    tcell.ColorSandyBrown,
	},
	{
		Name:         "blocks",
		Wall:         "█",
		Floor:        " ",
		Passage:      "░",
		Edge:         "·",
		WallColor:    tcell.ColorSlateGray,
		FloorColor:   tcell.ColorBlack,
		PassageColor: tcell.ColorGoldenrod,
		EdgeColor:    tcell.ColorDimGray,
	},
	{
		// Brick walls over sand.
		Name:    "emoji",
		Wall:    "🧱",
		Floor:   "🟫",
		Passage: "🟨",
		Edge:    "🟧",
	},
}

// ThemeByName returns the named theme, or the default when unknown.
func ThemeByName(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}
