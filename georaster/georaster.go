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

// Package georaster stores occupancy grids as georeferenced single-band
// TIFF files. The georeference is written to an ESRI world file next to
// the image (".tfw"), which GIS tools read together with the TIFF.
package georaster

import (
	"bufio"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/tiff"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/section"
)

// Write stores grid as an 8-bit grayscale TIFF file and writes the
// matching world file, see [WorldFileName].
func Write(name string, grid *image.Gray, ref section.Georef) error {
	if err := writeTIFF(name, grid); err != nil {
		return err
	}
	return writeWorldFile(WorldFileName(name), ref)
}

// WorldFileName returns the name of the world file belonging to the
// given image file: the extension is replaced by ".tfw".
func WorldFileName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".tfw"
}

func writeTIFF(name string, grid *image.Gray) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	err = tiff.Encode(w, grid, &tiff.Options{Compression: tiff.Uncompressed})
	if err != nil {
		return err
	}
	return w.Flush()
}

// writeWorldFile writes the six affine coefficients: pixel width, the two
// rotation terms, the (negative) pixel height and the world coordinates
// of the centre of pixel (0, 0).
func writeWorldFile(name string, ref section.Georef) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	M := ref.Transform()
	c := ref.PixelCenter(0, 0)
	for _, x := range []float64{M[0], M[1], M[2], M[3], c.X, c.Y} {
		_, err = fmt.Fprintln(f, strconv.FormatFloat(x, 'f', -1, 64))
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadWorldFile reads a world file written by [Write].
// Rotated or non-square pixels are rejected.
func ReadWorldFile(name string) (section.Georef, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return section.Georef{}, err
	}
	fields := strings.Fields(string(data))
	if len(fields) != 6 {
		return section.Georef{}, fmt.Errorf("%s: expected 6 values, found %d", name, len(fields))
	}
	var v [6]float64
	for i, s := range fields {
		v[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return section.Georef{}, fmt.Errorf("%s: %w", name, err)
		}
	}
	if v[1] != 0 || v[2] != 0 || v[3] != -v[0] {
		return section.Georef{}, fmt.Errorf("%s: unsupported pixel geometry", name)
	}

	ps := v[0]
	return section.Georef{
		Origin:    vec.Vec2{X: v[4] - ps/2, Y: v[5] + ps/2},
		PixelSize: ps,
	}, nil
}

// ReadGray reads a TIFF file as a grayscale image.
func ReadGray(name string) (img *image.Gray, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	m, err := tiff.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	if g, ok := m.(*image.Gray); ok {
		return g, nil
	}
	b := m.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(g, g.Rect, m, b.Min, draw.Src)
	return g, nil
}
