//go:build ebiten

// Command caveview opens a window on a generated cave's wall mesh.
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"cavegen/internal/meshview"
	"cavegen/internal/settings"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file")
	seed := flag.String("seed", "", "seed (random when empty and the config asks for one)")
	width := flag.Int("window-width", 960, "window width in pixels")
	height := flag.Int("window-height", 720, "window height in pixels")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	s := settings.Default()
	if *configPath != "" {
		loaded, err := settings.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		s = loaded
	}
	if *seed != "" {
		s.Seed = *seed
		s.UseRandomSeed = false
	}

	viewer, err := meshview.New(*s.GenerateConfig(logger), s.CellSize, *width, *height, logger)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("caveview")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
