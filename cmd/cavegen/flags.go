package main

import (
	"cavegen/internal/settings"

	"github.com/spf13/pflag"
)

// paramFlags binds one flag per generation parameter. Only flags the user
// actually set override the settings file.
type paramFlags struct {
	v settings.Settings
}

func (p *paramFlags) register(fs *pflag.FlagSet) {
	d := settings.Default()
	fs.IntVar(&p.v.Width, "width", d.Width, "Grid width in cells")
	fs.IntVar(&p.v.Height, "height", d.Height, "Grid height in cells")
	fs.StringVar(&p.v.Seed, "seed", "", "Seed string; integers are used verbatim (random when unset)")
	fs.IntVar(&p.v.FillPercent, "fill", d.FillPercent, "Initial wall percentage 0-100")
	fs.BoolVar(&p.v.SealEdges, "seal-edges", d.SealEdges, "Force the outermost ring to wall before smoothing")
	fs.IntVar(&p.v.BorderSize, "border", d.BorderSize, "Wall rings added around the finished grid")
	fs.IntVar(&p.v.SmoothingIterations, "smooth", d.SmoothingIterations, "Cellular automaton passes")
	fs.BoolVar(&p.v.ProcessRegions, "regions", d.ProcessRegions, "Prune small regions and connect rooms")
	fs.IntVar(&p.v.SmallWallThreshold, "wall-threshold", d.SmallWallThreshold, "Wall regions smaller than this are opened")
	fs.IntVar(&p.v.SmallRoomThreshold, "room-threshold", d.SmallRoomThreshold, "Rooms smaller than this are filled")
	fs.BoolVar(&p.v.ConnectAllRooms, "connect-all", d.ConnectAllRooms, "Guarantee every room is reachable from the main room")
	fs.IntVar(&p.v.PassageRadius, "radius", d.PassageRadius, "Passage brush radius")
	fs.Float64Var(&p.v.CellSize, "cell-size", d.CellSize, "World size of one cell in meshes")
	fs.Float64Var(&p.v.WallHeight, "wall-height", d.WallHeight, "Extruded wall height in meshes")
}

func (p *paramFlags) apply(fs *pflag.FlagSet, s *settings.Settings) {
	set := func(name string, fn func()) {
		if fs.Changed(name) {
			fn()
		}
	}
	set("width", func() { s.Width = p.v.Width })
	set("height", func() { s.Height = p.v.Height })
	set("seed", func() {
		s.Seed = p.v.Seed
		s.UseRandomSeed = false
	})
	set("fill", func() { s.FillPercent = p.v.FillPercent })
	set("seal-edges", func() { s.SealEdges = p.v.SealEdges })
	set("border", func() { s.BorderSize = p.v.BorderSize })
	set("smooth", func() { s.SmoothingIterations = p.v.SmoothingIterations })
	set("regions", func() { s.ProcessRegions = p.v.ProcessRegions })
	set("wall-threshold", func() { s.SmallWallThreshold = p.v.SmallWallThreshold })
	set("room-threshold", func() { s.SmallRoomThreshold = p.v.SmallRoomThreshold })
	set("connect-all", func() { s.ConnectAllRooms = p.v.ConnectAllRooms })
	set("radius", func() { s.PassageRadius = p.v.PassageRadius })
	set("cell-size", func() { s.CellSize = p.v.CellSize })
	set("wall-height", func() { s.WallHeight = p.v.WallHeight })
}
