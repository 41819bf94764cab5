package main

import (
	"fmt"
	"io"

	"cavegen/internal/generate"
	"cavegen/internal/history"

	"github.com/spf13/cobra"
)

func historyCmd(a *app) *cobra.Command {
	var (
		limit  int
		replay int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently generated seeds, or replay one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := history.Read(limit)
			if err != nil {
				return fmt.Errorf("reading history: %w", err)
			}
			out := cmd.OutOrStdout()
			if replay == 0 {
				printHistory(out, entries)
				return nil
			}
			if replay < 0 || replay > len(entries) {
				return fmt.Errorf("no history entry %d (have %d)", replay, len(entries))
			}
			// 1 is the most recent.
			e := entries[len(entries)-replay]
			cfg := e.Config()
			cfg.Logger = a.logger()
			res, err := generate.Generate(cfg)
			if err != nil {
				return fmt.Errorf("replaying seed %s: %w", e.Seed, err)
			}
			printGrid(out, res)
			printSummary(a.stderr, res)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of entries to show (0 for all)")
	cmd.Flags().IntVar(&replay, "replay", 0, "Regenerate the Nth most recent entry (1 is newest)")
	return cmd
}

func printHistory(w io.Writer, entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "no caves recorded yet")
		return
	}
	for i, e := range entries {
		fmt.Fprintf(w, "%3d  %s  %-14s %4dx%-4d fill %3d%%  smooth %d  rooms %d  passages %d\n",
			len(entries)-i, e.Timestamp.Format("2006-01-02 15:04:05"), e.Seed,
			e.Width, e.Height, e.FillPercent, e.SmoothingIterations, e.Rooms, e.Passages)
		for _, warn := range e.Warnings {
			fmt.Fprintf(w, "       warning: %s\n", warn)
		}
	}
}
