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

package section

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Georef relates pixel coordinates of a grid to world coordinates.
// Pixel (0, 0) has its top-left corner at Origin; pixels are squares of
// side PixelSize, columns grow towards +x and rows towards -y.
type Georef struct {
	Origin    vec.Vec2
	PixelSize float64
}

// NewGeoref returns the georeference of a grid produced by [Rasterize]
// for the given bounding box and resolution.
func NewGeoref(bbox rect.Rect, resolution float64) Georef {
	return Georef{
		Origin:    vec.Vec2{X: bbox.LLx, Y: bbox.URy},
		PixelSize: resolution,
	}
}

// Transform returns the affine map from pixel space (column, row) to
// world space.
func (g Georef) Transform() matrix.Matrix {
	return matrix.Matrix{g.PixelSize, 0, 0, -g.PixelSize, g.Origin.X, g.Origin.Y}
}

// PixelCenter returns the world coordinates of the centre of the given
// pixel.
func (g Georef) PixelCenter(col, row int) vec.Vec2 {
	M := g.Transform()
	x := float64(col) + 0.5
	y := float64(row) + 0.5
	return vec.Vec2{
		X: M[0]*x + M[2]*y + M[4],
		Y: M[1]*x + M[3]*y + M[5],
	}
}
