package main

import (
	"fmt"
	"io"

	"cavegen/internal/export"
	"cavegen/internal/generate"
	"cavegen/internal/history"
	"cavegen/internal/settings"

	"github.com/spf13/cobra"
)

func generateCmd(a *app) *cobra.Command {
	var (
		params    paramFlags
		asJSON    bool
		noHistory bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a cave and print it as ASCII or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, res, err := a.run(cmd, &params, !noHistory)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return export.WriteJSON(out, export.NewDocument(res))
			}
			printGrid(out, res)
			printSummary(a.stderr, res)
			return nil
		},
	}
	params.register(cmd.Flags())
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the cave as JSON")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record the seed in the history file")
	return cmd
}

// run loads settings, generates and optionally records the result.
func (a *app) run(cmd *cobra.Command, params *paramFlags, record bool) (*settings.Settings, *generate.Result, error) {
	s, err := a.loadSettings(cmd, params)
	if err != nil {
		return nil, nil, err
	}
	logger := a.logger()
	cfg := s.GenerateConfig(logger)
	res, err := generate.Generate(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("generating cave: %w", err)
	}
	if record {
		history.Save(history.NewEntry(cfg, res), logger)
	}
	return s, res, nil
}

func printGrid(w io.Writer, res *generate.Result) {
	for _, row := range res.Grid.Rows() {
		fmt.Fprintln(w, row)
	}
}

func printSummary(w io.Writer, res *generate.Result) {
	fmt.Fprintf(w, "seed %s (%d)  %dx%d  rooms %d  passages %d\n",
		res.Seed, res.SeedValue, res.Grid.Width, res.Grid.Height, len(res.Rooms), len(res.Passages))
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "warning: %v\n", warn)
	}
}
