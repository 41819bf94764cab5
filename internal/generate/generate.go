// Package generate turns a seed and a set of tunables into a cave floor plan:
// random fill, cellular-automaton smoothing, region pruning, room
// connection and a sealing border. Every stage returns a new grid.
package generate

import (
	"fmt"

	"cavegen/internal/cavemap"
)

// Result is a finished floor plan. Room, edge tile and passage coordinates
// are in the bordered grid's space.
type Result struct {
	Grid      *cavemap.Grid
	Seed      string // seed actually used; replay it to get the same grid
	SeedValue int64
	Rooms     []Room
	Passages  []Passage
	// Warnings holds non-fatal conditions that match ErrNoRoomsGenerated or
	// ErrIncompleteConnectivity under errors.Is.
	Warnings []error
}

// Generate runs the full pipeline for cfg.
func Generate(cfg *Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.logger()

	seed := cfg.Seed
	if cfg.UseRandomSeed {
		seed = newSeed()
	}
	res := &Result{Seed: seed, SeedValue: SeedValue(seed)}

	g, err := Initialize(cfg.Width, cfg.Height, res.SeedValue, cfg.FillPercent, cfg.SealEdges)
	if err != nil {
		return nil, err
	}
	logger.Debug("grid initialised", "seed", seed, "width", cfg.Width, "height", cfg.Height,
		"fill_percent", cfg.FillPercent, "walls", g.Count(cavemap.Wall))

	g = Smooth(g, cfg.SmoothingIterations)
	logger.Debug("grid smoothed", "iterations", cfg.SmoothingIterations, "walls", g.Count(cavemap.Wall))

	if cfg.ProcessRegions {
		g = res.processRegions(g, cfg)
	}

	bordered, err := cavemap.WithBorder(g, cfg.BorderSize)
	if err != nil {
		return nil, err
	}
	res.Grid = bordered
	for i := range res.Rooms {
		res.Rooms[i].translate(cfg.BorderSize, cfg.BorderSize)
	}
	for i := range res.Passages {
		res.Passages[i].translate(cfg.BorderSize, cfg.BorderSize)
	}

	for _, w := range res.Warnings {
		logger.Warn("cave generated with warning", "seed", seed, "warning", w)
	}
	logger.Debug("cave generated", "seed", seed, "width", bordered.Width, "height", bordered.Height,
		"rooms", len(res.Rooms), "passages", len(res.Passages))
	return res, nil
}

// processRegions prunes small walls, then small rooms, then connects what
// is left. Wall pruning must come first: removing wall specks can merge open
// areas before their size is judged.
func (res *Result) processRegions(g *cavemap.Grid, cfg *Config) *cavemap.Grid {
	logger := cfg.logger()

	g, walls := Prune(g, cavemap.Wall, cfg.SmallWallThreshold)
	g, open := Prune(g, cavemap.Empty, cfg.SmallRoomThreshold)
	rooms := NewRooms(g, open)
	logger.Debug("regions pruned", "wall_regions", len(walls), "rooms", len(rooms))

	if len(rooms) == 0 {
		if cfg.ConnectAllRooms {
			res.Warnings = append(res.Warnings,
				fmt.Errorf("room threshold %d removed every open region: %w", cfg.SmallRoomThreshold, ErrNoRoomsGenerated))
		}
		return g
	}

	net := Connect(g, rooms, cfg.PassageRadius, cfg.ConnectAllRooms)
	res.Rooms, res.Passages = net.Rooms, net.Passages
	logger.Debug("rooms connected", "passages", len(net.Passages), "connect_all", cfg.ConnectAllRooms)

	if missing := net.Inaccessible(); len(missing) > 0 {
		res.Warnings = append(res.Warnings,
			fmt.Errorf("%d of %d rooms unreachable from the main room: %w", len(missing), len(rooms), ErrIncompleteConnectivity))
	} else if n := len(Regions(net.Grid, cavemap.Empty)); n > 1 {
		res.Warnings = append(res.Warnings,
			fmt.Errorf("passages of radius %d left %d separate open areas: %w", cfg.PassageRadius, n, ErrIncompleteConnectivity))
	}
	return net.Grid
}
