package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"cavegen/internal/preview"
	"cavegen/internal/render"
	"cavegen/internal/settings"
)

// Runs the terminal preview with default settings. cmd/cavegen has the
// full command set.
func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	theme := render.ThemeByName("blocks")
	preview.New(screen, settings.Default().GenerateConfig(logger), theme, logger).Run()
}
