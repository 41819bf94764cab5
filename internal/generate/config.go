package generate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"cavegen/internal/cavemap"
)

var (
	// ErrInvalidParameter reports a generation parameter outside its range.
	ErrInvalidParameter = cavemap.ErrInvalidParameter
	// ErrNoRoomsGenerated is a warning: room connection was requested but
	// pruning left no open region.
	ErrNoRoomsGenerated = errors.New("no rooms generated")
	// ErrIncompleteConnectivity is a warning: at least one room cannot be
	// reached from the main room.
	ErrIncompleteConnectivity = errors.New("incomplete connectivity")
)

// Config drives one cave generation.
type Config struct {
	Width, Height int

	// Seed is hashed to the PRNG seed unless it parses as an int64.
	Seed string
	// UseRandomSeed replaces Seed with a fresh value, reported in Result.Seed.
	UseRandomSeed bool

	FillPercent int // 0–100
	SealEdges   bool
	BorderSize  int

	SmoothingIterations int

	ProcessRegions     bool
	SmallWallThreshold int
	SmallRoomThreshold int
	ConnectAllRooms    bool
	PassageRadius      int

	// Logger receives per-stage debug records and warnings. Nil discards.
	Logger *slog.Logger
}

// Validate checks every parameter against its documented range.
func (c *Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("cave %dx%d: %w", c.Width, c.Height, cavemap.ErrInvalidDimensions)
	}
	checks := []struct {
		name string
		ok   bool
		val  int
	}{
		{"fill percent", c.FillPercent >= 0 && c.FillPercent <= 100, c.FillPercent},
		{"border size", c.BorderSize >= 0, c.BorderSize},
		{"smoothing iterations", c.SmoothingIterations >= 0, c.SmoothingIterations},
		{"small wall threshold", c.SmallWallThreshold >= 0, c.SmallWallThreshold},
		{"small room threshold", c.SmallRoomThreshold >= 0, c.SmallRoomThreshold},
		{"passage radius", c.PassageRadius >= 0, c.PassageRadius},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%s %d: %w", chk.name, chk.val, ErrInvalidParameter)
		}
	}
	return nil
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
