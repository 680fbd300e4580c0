// seehuhn.de/go/section - cross-section properties from vector drawings
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"github.com/spf13/cobra"

	"seehuhn.de/go/section"
	"seehuhn.de/go/section/pipeline"
)

var computeOpts struct {
	name       string
	depth      float64
	resolution float64
	out        string
	preview    string
	axis       string
	rule       string
	fill       int
}

var computeCmd = &cobra.Command{
	Use:   "compute <drawing.dxf>",
	Short: "Process a single drawing",
	Long: `Compute the section properties of a single drawing.

The depth is the real total height of the section. It fixes the size of
the grid cells, so that the drawing itself can use any unit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := &pipeline.Config{
			Fill: &computeOpts.fill,
			Axis: computeOpts.axis,
			Rule: computeOpts.rule,
			Jobs: []pipeline.Job{{
				Name:       computeOpts.name,
				Input:      args[0],
				Output:     computeOpts.out,
				Preview:    computeOpts.preview,
				Resolution: computeOpts.resolution,
				Depth:      computeOpts.depth,
			}},
		}
		if err := cfg.Normalize(""); err != nil {
			return err
		}
		return runJobs(cmd, cfg)
	},
}

func init() {
	flags := computeCmd.Flags()
	flags.Float64VarP(&computeOpts.depth, "depth", "d", 0, "real total height of the section (required)")
	flags.Float64VarP(&computeOpts.resolution, "resolution", "r", pipeline.DefaultResolution, "pixel size in drawing units")
	flags.StringVarP(&computeOpts.out, "out", "o", "", "write the grid as a georeferenced TIFF image")
	flags.StringVar(&computeOpts.preview, "preview", "", "write a PDF preview of the extracted geometry")
	flags.StringVar(&computeOpts.name, "name", "", "report label (default: the input base name)")
	flags.StringVar(&computeOpts.axis, "axis", section.AxisLegacy.String(), "horizontal cell coordinates: legacy or columns")
	flags.StringVar(&computeOpts.rule, "rule", section.EvenOdd.String(), "fill rule for polylines: evenodd or nonzero")
	flags.IntVar(&computeOpts.fill, "fill", pipeline.DefaultFill, "pixel value of covered grid cells, 1-255")
	_ = computeCmd.MarkFlagRequired("depth")

	rootCmd.AddCommand(computeCmd)
}
