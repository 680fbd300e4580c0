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

	"seehuhn.de/go/section/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run <jobs.yaml>",
	Short: "Process the drawings listed in a job table",
	Long: `Process every drawing listed in a YAML job table and print a report
for each of them. Drawings which fail are reported on stderr; the
remaining drawings are still processed.

Example job table:

  resolution: 0.1
  fill: 255
  jobs:
    - name: 01 i
      input: dxf/01_i.dxf
      output: tif/01_i.tif
      preview: pdf/01_i.pdf
      depth: 2100

Relative paths are taken relative to the directory of the job table.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := pipeline.LoadConfig(args[0])
		if err != nil {
			return err
		}
		return runJobs(cmd, cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
