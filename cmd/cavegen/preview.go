package main

import (
	"fmt"
	"io"

	"cavegen/internal/generate"
	"cavegen/internal/history"
	"cavegen/internal/preview"
	"cavegen/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

func previewCmd(a *app) *cobra.Command {
	var (
		params    paramFlags
		theme     string
		noHistory bool
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse caves interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadSettings(cmd, &params)
			if err != nil {
				return err
			}
			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("creating screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("initialising screen: %w", err)
			}
			defer screen.Fini()

			// Logging to stderr would scribble over the screen.
			a.stderr = io.Discard
			logger := a.logger()
			sess := preview.New(screen, s.GenerateConfig(logger), render.ThemeByName(theme), logger)
			if !noHistory {
				sess.OnGenerate = func(cfg *generate.Config, res *generate.Result) {
					history.Save(history.NewEntry(cfg, res), logger)
				}
			}
			sess.Run()
			return nil
		},
	}
	params.register(cmd.Flags())
	cmd.Flags().StringVarP(&theme, "theme", "t", "ascii", "Tile theme: ascii, blocks or emoji")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record seeds in the history file")
	return cmd
}
