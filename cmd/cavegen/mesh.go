package main

import (
	"fmt"
	"io"
	"os"

	"cavegen/internal/contour"
	"cavegen/internal/export"

	"github.com/spf13/cobra"
)

func meshCmd(a *app) *cobra.Command {
	var (
		params    paramFlags
		format    string
		outPath   string
		noHistory bool
	)
	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Generate a cave and export its floor and wall meshes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "obj" && format != "json" {
				return fmt.Errorf("unknown format %q: want obj or json", format)
			}
			s, res, err := a.run(cmd, &params, !noHistory)
			if err != nil {
				return err
			}

			floor, err := contour.Extract(res.Grid, s.CellSize)
			if err != nil {
				return err
			}
			outlines, err := contour.Outlines(floor)
			if err != nil {
				return fmt.Errorf("tracing outlines: %w", err)
			}
			walls, err := contour.Walls(floor, outlines, s.WallHeight)
			if err != nil {
				return err
			}
			a.logger().Debug("mesh built", "floor_vertices", len(floor.Vertices),
				"floor_triangles", len(floor.Triangles), "outlines", len(outlines),
				"wall_triangles", len(walls.Triangles))

			var out io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			if format == "obj" {
				err = export.WriteOBJ(out,
					export.Object{Name: "floor", Mesh: floor},
					export.Object{Name: "walls", Mesh: walls})
			} else {
				doc := export.NewDocument(res)
				doc.Floor = export.NewMeshJSON(floor)
				doc.Walls = export.NewMeshJSON(walls)
				err = export.WriteJSON(out, doc)
			}
			if err != nil {
				return err
			}
			printSummary(a.stderr, res)
			return nil
		},
	}
	params.register(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", "obj", "Output format: obj or json")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (stdout when empty)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record the seed in the history file")
	return cmd
}
