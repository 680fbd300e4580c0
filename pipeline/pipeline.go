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

// Package pipeline runs drawings through the stages read, extract,
// rasterize, write, preview and compute. Every drawing is processed with
// fresh state; a failure aborts only the drawing concerned.
package pipeline

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/section"
	"seehuhn.de/go/section/dxf"
	"seehuhn.de/go/section/georaster"
	"seehuhn.de/go/section/preview"
)

// Stage names a step of the pipeline.
type Stage string

// The pipeline stages, in order.
const (
	StageRead      Stage = "read"
	StageExtract   Stage = "extract"
	StageRasterize Stage = "rasterize"
	StageWrite     Stage = "write"
	StagePreview   Stage = "preview"
	StageCompute   Stage = "compute"
)

// StageError reports which drawing failed in which stage.
type StageError struct {
	Job   string
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Job, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Result is the outcome of a successful job.
type Result struct {
	Job        Job
	BBox       rect.Rect
	Width      int // grid width in pixels
	Height     int // grid height in pixels
	Skipped    int // number of unsupported drawing entities
	Properties section.Properties
}

// Runner runs jobs. The zero value is not usable; set Fill or use
// [NewRunner].
type Runner struct {
	Fill uint8
	Axis section.AxisConvention
	Rule section.FillRule

	// ReadDrawing and WriteRaster default to dxf.ReadFile and
	// georaster.Write.
	ReadDrawing func(name string) (*dxf.Drawing, error)
	WriteRaster func(name string, grid *image.Gray, ref section.Georef) error
}

// NewRunner returns a Runner with fill value 255, the even-odd rule and
// the legacy axis convention.
func NewRunner() *Runner {
	return &Runner{Fill: DefaultFill}
}

// Run processes a single job.
// Errors are of type *StageError.
func (r *Runner) Run(job Job) (*Result, error) {
	log := section.Logger().With(slog.String("job", job.Name))
	fail := func(stage Stage, err error) (*Result, error) {
		return nil, &StageError{Job: job.Name, Stage: stage, Err: err}
	}

	if err := job.Validate(); err != nil {
		return fail(StageRead, err)
	}

	read := r.ReadDrawing
	if read == nil {
		read = dxf.ReadFile
	}
	d, err := read(job.Input)
	if err != nil {
		return fail(StageRead, err)
	}
	log.Debug("read drawing", slog.String("input", job.Input), slog.Int("entities", len(d.Entities)))

	g := section.Extract(d.Entities)
	bbox, err := g.BBox()
	if err != nil {
		return fail(StageExtract, err)
	}
	log.Debug("extracted geometry",
		slog.Int("points", len(g.Points)),
		slog.Int("skipped", g.Skipped))

	ras := section.NewRasterizer(job.Resolution)
	ras.Fill = r.Fill
	ras.Rule = r.Rule
	grid, err := ras.Rasterize(g.Entities, bbox)
	if err != nil {
		return fail(StageRasterize, err)
	}

	if job.Output != "" {
		write := r.WriteRaster
		if write == nil {
			write = georaster.Write
		}
		// the writer gets its own copy, so that it cannot affect the
		// properties computed below
		err := write(job.Output, cloneGray(grid), section.NewGeoref(bbox, job.Resolution))
		if err != nil {
			return fail(StageWrite, err)
		}
		log.Debug("wrote raster", slog.String("output", job.Output))
	}

	if job.Preview != "" {
		if err := preview.WritePDF(job.Preview, g, bbox); err != nil {
			return fail(StagePreview, err)
		}
		log.Debug("wrote preview", slog.String("preview", job.Preview))
	}

	props, err := section.Calculator{Axis: r.Axis}.Compute(grid, job.Depth)
	if err != nil {
		return fail(StageCompute, err)
	}

	return &Result{
		Job:        job,
		BBox:       bbox,
		Width:      grid.Rect.Dx(),
		Height:     grid.Rect.Dy(),
		Skipped:    g.Skipped,
		Properties: props,
	}, nil
}

func cloneGray(m *image.Gray) *image.Gray {
	c := *m
	c.Pix = slices.Clone(m.Pix)
	return &c
}

// RunAll runs the jobs in order and calls emit for each successful one.
// Failed jobs are logged and skipped; the returned error joins all
// failures.
func (r *Runner) RunAll(jobs []Job, emit func(*Result) error) error {
	var errs []error
	for _, job := range jobs {
		res, err := r.Run(job)
		if err != nil {
			section.Logger().Error("drawing failed", slog.Any("err", err))
			errs = append(errs, err)
			continue
		}
		if err := emit(res); err != nil {
			return errors.Join(append(errs, err)...)
		}
	}
	return errors.Join(errs...)
}
