// Package settings loads cave generation parameters from YAML.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cavegen/internal/contour"
	"cavegen/internal/generate"

	"gopkg.in/yaml.v3"
)

// ErrInvalidParameter is returned by Validate for any out-of-range value.
var ErrInvalidParameter = generate.ErrInvalidParameter

// Settings is the full set of tunables, generation and geometry alike.
type Settings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Seed   string `yaml:"seed"`

	UseRandomSeed bool `yaml:"use_random_seed"`
	FillPercent   int  `yaml:"fill_percent"`
	SealEdges     bool `yaml:"seal_edges"`
	BorderSize    int  `yaml:"border_size"`

	SmoothingIterations int `yaml:"smoothing_iterations"`

	ProcessRegions     bool `yaml:"process_regions"`
	SmallWallThreshold int  `yaml:"small_wall_threshold"`
	SmallRoomThreshold int  `yaml:"small_room_threshold"`
	ConnectAllRooms    bool `yaml:"connect_all_rooms"`
	PassageRadius      int  `yaml:"passage_radius"`

	CellSize   float64 `yaml:"cell_size"`
	WallHeight float64 `yaml:"wall_height"`
}

// Default returns the stock parameters.
func Default() *Settings {
	return &Settings{
		Width:               64,
		Height:              48,
		UseRandomSeed:       true,
		FillPercent:         50,
		SealEdges:           true,
		BorderSize:          1,
		SmoothingIterations: 5,
		ProcessRegions:      true,
		SmallWallThreshold:  50,
		SmallRoomThreshold:  50,
		ConnectAllRooms:     true,
		PassageRadius:       1,
		CellSize:            1,
		WallHeight:          contour.DefaultWallHeight,
	}
}

// Load reads a YAML file and overlays it on Default. Unknown keys are an
// error so typos do not silently fall back to defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}
	s := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing settings YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks every value against its range.
func (s *Settings) Validate() error {
	if err := s.GenerateConfig(nil).Validate(); err != nil {
		return err
	}
	if !(s.CellSize > 0) {
		return fmt.Errorf("cell size %v: %w", s.CellSize, ErrInvalidParameter)
	}
	if !(s.WallHeight > 0) {
		return fmt.Errorf("wall height %v: %w", s.WallHeight, ErrInvalidParameter)
	}
	return nil
}

// GenerateConfig converts the settings for generate.Generate.
func (s *Settings) GenerateConfig(logger *slog.Logger) *generate.Config {
	return &generate.Config{
		Width:               s.Width,
		Height:              s.Height,
		Seed:                s.Seed,
		UseRandomSeed:       s.UseRandomSeed,
		FillPercent:         s.FillPercent,
		SealEdges:           s.SealEdges,
		BorderSize:          s.BorderSize,
		SmoothingIterations: s.SmoothingIterations,
		ProcessRegions:      s.ProcessRegions,
		SmallWallThreshold:  s.SmallWallThreshold,
		SmallRoomThreshold:  s.SmallRoomThreshold,
		ConnectAllRooms:     s.ConnectAllRooms,
		PassageRadius:       s.PassageRadius,
		Logger:              logger,
	}
}

// Marshal renders the settings as YAML.
func (s *Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
