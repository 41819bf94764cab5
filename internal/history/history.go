// Package history keeps a JSON-lines log of resolved seeds and the
// parameters they were generated with, so a random cave can be replayed.
package history

import (
	"bufio"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cavegen/internal/generate"
)

const fileName = "history.jsonl"

// Entry is one recorded generation.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Seed      string    `json:"seed"`
	SeedValue int64     `json:"seed_value"`

	Width               int  `json:"width"`
	Height              int  `json:"height"`
	FillPercent         int  `json:"fill_percent"`
	SealEdges           bool `json:"seal_edges"`
	BorderSize          int  `json:"border_size"`
	SmoothingIterations int  `json:"smoothing_iterations"`
	ProcessRegions      bool `json:"process_regions"`
	SmallWallThreshold  int  `json:"small_wall_threshold"`
	SmallRoomThreshold  int  `json:"small_room_threshold"`
	ConnectAllRooms     bool `json:"connect_all_rooms"`
	PassageRadius       int  `json:"passage_radius"`

	Rooms    int      `json:"rooms"`
	Passages int      `json:"passages"`
	Warnings []string `json:"warnings,omitempty"`
}

// NewEntry records cfg with the seed res actually used.
func NewEntry(cfg *generate.Config, res *generate.Result) Entry {
	e := Entry{
		Timestamp:           time.Now().UTC(),
		Seed:                res.Seed,
		SeedValue:           res.SeedValue,
		Width:               cfg.Width,
		Height:              cfg.Height,
		FillPercent:         cfg.FillPercent,
		SealEdges:           cfg.SealEdges,
		BorderSize:          cfg.BorderSize,
		SmoothingIterations: cfg.SmoothingIterations,
		ProcessRegions:      cfg.ProcessRegions,
		SmallWallThreshold:  cfg.SmallWallThreshold,
		SmallRoomThreshold:  cfg.SmallRoomThreshold,
		ConnectAllRooms:     cfg.ConnectAllRooms,
		PassageRadius:       cfg.PassageRadius,
		Rooms:               len(res.Rooms),
		Passages:            len(res.Passages),
	}
	for _, w := range res.Warnings {
		e.Warnings = append(e.Warnings, w.Error())
	}
	return e
}

// Config rebuilds a generation config that reproduces the entry.
func (e Entry) Config() *generate.Config {
	return &generate.Config{
		Width:               e.Width,
		Height:              e.Height,
		Seed:                e.Seed,
		FillPercent:         e.FillPercent,
		SealEdges:           e.SealEdges,
		BorderSize:          e.BorderSize,
		SmoothingIterations: e.SmoothingIterations,
		ProcessRegions:      e.ProcessRegions,
		SmallWallThreshold:  e.SmallWallThreshold,
		SmallRoomThreshold:  e.SmallRoomThreshold,
		ConnectAllRooms:     e.ConnectAllRooms,
		PassageRadius:       e.PassageRadius,
	}
}

// Save appends e as a single JSON line to history.jsonl.
// Errors are logged but never returned; a disk problem must not stop generation.
func Save(e Entry, logger *slog.Logger) {
	dir, err := Dir()
	if err != nil {
		logger.Warn("history: cannot determine data dir", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("history: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, fileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("history: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(e)
	if err != nil {
		logger.Warn("history: cannot marshal JSON", "error", err)
		return
	}
	f.Write(data)         //nolint:errcheck
	f.Write([]byte("\n")) //nolint:errcheck
	logger.Debug("history: entry saved", "seed", e.Seed, "path", f.Name())
}

// Read returns up to limit of the most recent entries, oldest first.
// A limit of zero or less returns every entry. A missing file is not an
// error. Lines that do not decode are skipped.
func Read(limit int) ([]Entry, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(dir, fileName))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// Dir returns the directory where the history file is stored.
// Follows XDG Base Directory spec: $XDG_DATA_HOME/cavegen,
// defaulting to ~/.local/share/cavegen.
func Dir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "cavegen"), nil
}
