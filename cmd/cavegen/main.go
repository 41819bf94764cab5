// cavegen generates procedural cave maps from a seed. Build:
//
//	go build -o cavegen ./cmd/cavegen
//
// Usage:
//
//	./cavegen generate --seed granite --width 64 --height 48
//	./cavegen mesh --format obj --out cave.obj
//	./cavegen preview
//	./cavegen history --limit 5
package main

import (
	"io"
	"log/slog"
	"os"

	"cavegen/internal/settings"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool
	stderr     io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{stderr: os.Stderr}
	rootCmd := &cobra.Command{
		Use:           "cavegen",
		Short:         "Procedural cave generator: cellular automata, rooms and passages, marching-squares meshes",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.stderr = cmd.ErrOrStderr()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML settings file (flags override it)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log pipeline stages to stderr")

	rootCmd.AddCommand(generateCmd(a))
	rootCmd.AddCommand(meshCmd(a))
	rootCmd.AddCommand(previewCmd(a))
	rootCmd.AddCommand(historyCmd(a))
	return rootCmd
}

func (a *app) logger() *slog.Logger {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
}

// loadSettings reads the config file, if any, and applies changed flags.
func (a *app) loadSettings(cmd *cobra.Command, p *paramFlags) (*settings.Settings, error) {
	s := settings.Default()
	if a.configPath != "" {
		var err error
		if s, err = settings.Load(a.configPath); err != nil {
			return nil, err
		}
	}
	p.apply(cmd.Flags(), s)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
