package render

import (
	"fmt"

	"cavegen/internal/generate"

	"github.com/gdamore/tcell/v2"
)

// Status is what the HUD reports about the current cave.
type Status struct {
	Seed     string
	Config   *generate.Config
	Rooms    int
	Passages int
	Warnings []error
	Messages []string
}

// StatusLine formats the seed and parameters on one line.
func (s Status) StatusLine() string {
	line := fmt.Sprintf("seed %s", s.Seed)
	if c := s.Config; c != nil {
		line += fmt.Sprintf("  %dx%d  fill %d%%  smooth %d  border %d  radius %d",
			c.Width, c.Height, c.FillPercent, c.SmoothingIterations, c.BorderSize, c.PassageRadius)
		if c.ProcessRegions {
			line += fmt.Sprintf("  rooms %d  passages %d", s.Rooms, s.Passages)
			if c.ConnectAllRooms {
				line += "  [all]"
			}
		} else {
			line += "  [raw]"
		}
	}
	return line
}

// DrawHUD renders the status bar, warnings and the message log at the
// bottom of the screen, then shows the frame.
func (r *Renderer) DrawHUD(s Status) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	// Separator line.
	r.drawHLine(hudY, tcell.ColorGray)
	r.drawText(0, hudY+1, s.StatusLine(), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	row := hudY + 2
	for _, w := range s.Warnings {
		if row >= screenH {
			break
		}
		r.drawText(0, row, "! "+w.Error(), tcell.StyleDefault.Foreground(tcell.ColorOrange))
		row++
	}

	// Message log fills whatever rows remain.
	room := screenH - row
	start := max(len(s.Messages)-room, 0)
	for _, msg := range s.Messages[start:] {
		r.drawText(0, row, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
		row++
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
