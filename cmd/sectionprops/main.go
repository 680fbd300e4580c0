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

// Command sectionprops computes the section properties of cross-sections
// drawn in DXF files.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"seehuhn.de/go/section"
	"seehuhn.de/go/section/pipeline"
	"seehuhn.de/go/section/report"
)

var (
	accentFg    = lipgloss.Color("#7C3AED")
	headerStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sectionprops",
	Short: "Section properties of cross-sections drawn in DXF files",
	Long: `Compute area, centroid, second moments of area and section moduli
of cross-sections drawn in DXF files.

Lines and polylines of each drawing are rasterized into a binary grid,
which is then integrated cell by cell. The grid can be stored as a
georeferenced TIFF image, and the extracted geometry as a PDF preview.

Subcommands:
  run      - process every drawing listed in a YAML job table
  compute  - process a single drawing`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
		section.SetLogger(slog.New(h))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log the progress of every stage")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// printResult writes the report for one drawing.
func printResult(w io.Writer, res *pipeline.Result) error {
	if _, err := fmt.Fprintln(w, headerStyle.Render(report.Header(res.Job.Name))); err != nil {
		return err
	}
	return report.WriteBody(w, res.Properties)
}

// runJobs runs all jobs of cfg and prints a report for each successful one.
func runJobs(cmd *cobra.Command, cfg *pipeline.Config) error {
	out := cmd.OutOrStdout()
	err := cfg.Runner().RunAll(cfg.Jobs, func(res *pipeline.Result) error {
		section.Logger().Debug("done",
			slog.String("job", res.Job.Name),
			slog.Int("width", res.Width),
			slog.Int("height", res.Height),
			slog.Int("skipped", res.Skipped))
		return printResult(out, res)
	})
	if err != nil {
		return fmt.Errorf("not all drawings could be processed:\n%w", err)
	}
	return nil
}
