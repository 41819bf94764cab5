package render

import (
	"errors"
	"strings"
	"testing"

	"cavegen/internal/cavemap"
	"cavegen/internal/generate"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen() tcell.Screen {
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(40, 15)
	_ = ss.Init()
	return ss
}

func cell(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func row(s tcell.Screen, y, n int) string {
	var b strings.Builder
	for x := 0; x < n; x++ {
		b.WriteRune(cell(s, x, y))
	}
	return b.String()
}

func TestCameraWorldToScreen(t *testing.T) {
	tests := []struct {
		name    string
		tileW   int
		wx, wy  int
		sx, sy  int
		visible bool
	}{
		{"origin narrow", 1, 0, 0, 0, 0, true},
		{"wide tiles double x", 2, 3, 1, 6, 1, true},
		{"past right edge", 1, 20, 0, 20, 0, false},
		{"wide tile cut off", 2, 10, 0, 20, 0, false},
		{"negative", 1, -1, 0, -1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Camera{ViewWidth: 20, ViewHeight: 10, TileWidth: tt.tileW}
			sx, sy, vis := c.WorldToScreen(tt.wx, tt.wy)
			if sx != tt.sx || sy != tt.sy || vis != tt.visible {
				t.Errorf("WorldToScreen(%d,%d) = (%d,%d,%v), want (%d,%d,%v)",
					tt.wx, tt.wy, sx, sy, vis, tt.sx, tt.sy, tt.visible)
			}
			if vis {
				if wx, wy := c.ScreenToWorld(sx, sy); wx != tt.wx || wy != tt.wy {
					t.Errorf("ScreenToWorld round trip = (%d,%d)", wx, wy)
				}
			}
		})
	}
}

func TestCameraClamp(t *testing.T) {
	c := NewCamera(0, 0, 20, 10, 2) // 10 cells across
	c.Scroll(100, 100)
	c.Clamp(30, 25)
	if c.OffsetX != 20 || c.OffsetY != 15 {
		t.Errorf("offset = (%d,%d), want (20,15)", c.OffsetX, c.OffsetY)
	}
	c.Scroll(-100, -100)
	c.Clamp(30, 25)
	if c.OffsetX != 0 || c.OffsetY != 0 {
		t.Errorf("offset = (%d,%d), want (0,0)", c.OffsetX, c.OffsetY)
	}
	// Smaller than the view.
	c.Scroll(3, 3)
	c.Clamp(5, 5)
	if c.OffsetX != 0 || c.OffsetY != 0 {
		t.Errorf("small grid offset = (%d,%d), want (0,0)", c.OffsetX, c.OffsetY)
	}
}

func TestThemeTileWidth(t *testing.T) {
	if w := ThemeByName("ascii").TileWidth(); w != 1 {
		t.Errorf("ascii tile width = %d, want 1", w)
	}
	if w := ThemeByName("emoji").TileWidth(); w != 2 {
		t.Errorf("emoji tile width = %d, want 2", w)
	}
	if ThemeByName("nope").Name != Themes[0].Name {
		t.Error("unknown theme should fall back to the default")
	}
}

func TestDrawFrameGlyphs(t *testing.T) {
	g, err := cavemap.Parse(
		"#####",
		"#..##",
		"#####",
	)
	if err != nil {
		t.Fatal(err)
	}
	res := &generate.Result{
		Grid: g,
		Passages: []generate.Passage{{
			Cells: []cavemap.Coord{{X: 2, Y: 1}},
		}},
	}
	s := newSimScreen()
	r := NewRenderer(s, ThemeByName("ascii"))
	r.camera.OffsetX, r.camera.OffsetY = 0, 0
	r.DrawFrame(res)

	want := []string{"#####", "#.:##", "#####"}
	for y, w := range want {
		if got := row(s, y, 5); got != w {
			t.Errorf("row %d = %q, want %q", y, got, w)
		}
	}
}

func TestDrawFrameShowEdges(t *testing.T) {
	g, _ := cavemap.Parse(
		"#####",
		"#...#",
		"#####",
	)
	res := &generate.Result{
		Grid:  g,
		Rooms: []generate.Room{{EdgeTiles: []cavemap.Coord{{X: 1, Y: 1}}}},
	}
	s := newSimScreen()
	r := NewRenderer(s, ThemeByName("ascii"))
	r.camera.OffsetX, r.camera.OffsetY = 0, 0
	r.ShowEdges = true
	r.DrawFrame(res)
	if got := row(s, 1, 5); got != "#,..#" {
		t.Errorf("row 1 = %q, want %q", got, "#,..#")
	}
}

func TestDrawHUD(t *testing.T) {
	s := newSimScreen()
	r := NewRenderer(s, ThemeByName("ascii"))
	cfg := &generate.Config{Width: 64, Height: 48, FillPercent: 50, SmoothingIterations: 5,
		BorderSize: 1, PassageRadius: 1, ProcessRegions: true, ConnectAllRooms: true}
	r.DrawHUD(Status{
		Seed:     "abc",
		Config:   cfg,
		Rooms:    3,
		Passages: 2,
		Warnings: []error{errors.New("lonely room")},
		Messages: []string{"old", "regenerated"},
	})

	_, h := s.Size()
	hudY := h - hudRows
	if cell(s, 0, hudY) != '─' {
		t.Error("missing HUD separator")
	}
	status := row(s, hudY+1, 40)
	if !strings.HasPrefix(status, "seed abc  64x48  fill 50%") {
		t.Errorf("status line = %q", status)
	}
	if got := row(s, hudY+2, 13); got != "! lonely room" {
		t.Errorf("warning row = %q", got)
	}
	if got := row(s, h-1, 11); got != "regenerated" {
		t.Errorf("last message row = %q", got)
	}
}

func TestStatusLineRaw(t *testing.T) {
	s := Status{Seed: "1", Config: &generate.Config{Width: 3, Height: 4}}
	if line := s.StatusLine(); !strings.HasSuffix(line, "[raw]") {
		t.Errorf("status = %q, want the raw marker", line)
	}
}
