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

package pipeline

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/section"
	"seehuhn.de/go/section/dxf"
	"seehuhn.de/go/section/georaster"
	"seehuhn.de/go/section/testcases"
)

// writeDrawing stores entities as a DXF file in dir.
func writeDrawing(t *testing.T, dir, name string, ents []dxf.Entity) string {
	t.Helper()
	fname := filepath.Join(dir, name+".dxf")
	f, err := os.Create(fname)
	require.NoError(t, err)
	require.NoError(t, dxf.Write(f, ents))
	require.NoError(t, f.Close())
	return fname
}

func TestRunTestCases(t *testing.T) {
	dir := t.TempDir()
	r := NewRunner()
	for category, cases := range testcases.All {
		for _, tc := range cases {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				job := Job{
					Name:       name,
					Input:      writeDrawing(t, dir, name, tc.Entities),
					Output:     filepath.Join(dir, name+".tif"),
					Resolution: tc.Resolution,
					Depth:      tc.Depth,
				}
				res, err := r.Run(job)
				require.NoError(t, err)

				// the stored raster gives the same properties
				grid, err := georaster.ReadGray(job.Output)
				require.NoError(t, err)
				assert.Equal(t, res.Width, grid.Rect.Dx())
				assert.Equal(t, res.Height, grid.Rect.Dy())
				props, err := section.Compute(grid, tc.Depth)
				require.NoError(t, err)
				assert.Equal(t, res.Properties, props)

				ref, err := georaster.ReadWorldFile(georaster.WorldFileName(job.Output))
				require.NoError(t, err)
				assert.InDelta(t, res.BBox.LLx, ref.Origin.X, 1e-9)
				assert.InDelta(t, res.BBox.URy, ref.Origin.Y, 1e-9)
			})
		}
	}
}

func TestRunStages(t *testing.T) {
	dir := t.TempDir()
	rectangle := []dxf.Entity{
		&dxf.LWPolyline{Closed: true, Vertices: []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 0, Y: 2}}},
	}

	cases := []struct {
		name  string
		ents  []dxf.Entity
		job   Job
		stage Stage
		err   error
	}{
		{
			name:  "missing_file",
			job:   Job{Input: filepath.Join(dir, "missing.dxf"), Depth: 1, Resolution: 0.5},
			stage: StageRead,
			err:   os.ErrNotExist,
		},
		{
			name:  "annotations_only",
			ents:  []dxf.Entity{&dxf.Unknown{TypeName: "TEXT"}, &dxf.Unknown{TypeName: "CIRCLE"}},
			job:   Job{Depth: 1, Resolution: 0.5},
			stage: StageExtract,
			err:   section.ErrEmptyGeometry,
		},
		{
			name: "flat",
			ents: []dxf.Entity{
				&dxf.Line{Start: vec.Vec2{X: 0, Y: 0}, End: vec.Vec2{X: 10, Y: 0}},
			},
			job:   Job{Depth: 1, Resolution: 0.5},
			stage: StageRasterize,
			err:   section.ErrDegenerate,
		},
		{
			// both lines fall on the pixels cut off by truncation
			name: "bottom_right_lines",
			ents: []dxf.Entity{
				&dxf.Line{Start: vec.Vec2{X: 0, Y: 0}, End: vec.Vec2{X: 10, Y: 0}},
				&dxf.Line{Start: vec.Vec2{X: 10, Y: 0}, End: vec.Vec2{X: 10, Y: 10}},
			},
			job:   Job{Depth: 1, Resolution: 0.5},
			stage: StageCompute,
			err:   section.ErrEmptyRaster,
		},
		{
			name:  "bad_depth",
			ents:  rectangle,
			job:   Job{Depth: -1, Resolution: 0.5},
			stage: StageRead,
		},
		{
			name:  "unwritable_output",
			ents:  rectangle,
			job:   Job{Depth: 1, Resolution: 0.5, Output: filepath.Join(dir, "no", "such", "x.tif")},
			stage: StageWrite,
		},
	}

	r := NewRunner()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			job := c.job
			job.Name = c.name
			if job.Input == "" {
				job.Input = writeDrawing(t, dir, c.name, c.ents)
			}

			res, err := r.Run(job)
			assert.Nil(t, res)
			var se *StageError
			require.True(t, errors.As(err, &se), "got %v", err)
			assert.Equal(t, c.stage, se.Stage)
			assert.Equal(t, c.name, se.Job)
			if c.err != nil {
				assert.ErrorIs(t, err, c.err)
			}
		})
	}
}

func TestRunAllContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	rect := testcases.All["basic"][0]
	good := writeDrawing(t, dir, "good", rect.Entities)

	writeErr := errors.New("disk full")
	r := NewRunner()
	r.WriteRaster = func(name string, grid *image.Gray, ref section.Georef) error {
		// scribble over the grid; the calculator must not see this
		for i := range grid.Pix {
			grid.Pix[i] = 0
		}
		if strings.Contains(name, "fail") {
			return writeErr
		}
		return nil
	}

	jobs := []Job{
		{Name: "first", Input: good, Output: "ok.tif", Resolution: rect.Resolution, Depth: rect.Depth},
		{Name: "second", Input: good, Output: "fail.tif", Resolution: rect.Resolution, Depth: rect.Depth},
		{Name: "third", Input: good, Resolution: rect.Resolution, Depth: rect.Depth},
	}

	var done []string
	err := r.RunAll(jobs, func(res *Result) error {
		done = append(done, res.Job.Name)
		return nil
	})
	assert.ErrorIs(t, err, writeErr)
	assert.Equal(t, []string{"first", "third"}, done)
}
