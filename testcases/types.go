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

// Package testcases contains cross-section drawings with known section
// properties, used by tests, benchmarks and the export commands.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/section/dxf"
)

// TestCase defines a single drawing and how to evaluate it.
type TestCase struct {
	Name       string       // lowercase a-z, 0-9 and _ only
	Entities   []dxf.Entity // the drawing, in world units
	Resolution float64      // pixel size in world units
	Depth      float64      // real total height of the section
	Want       Analytic     // closed-form values, zero value if unknown
}

// Analytic holds the exact section properties of the drawn shape.
// The raster values converge to these as the resolution gets finer.
type Analytic struct {
	Area float64
	Ix   float64
	Iy   float64
	YInf float64
}

// Known reports whether closed-form values are available.
func (a Analytic) Known() bool {
	return a.Area > 0
}

// lw builds a lightweight polyline from x, y coordinate pairs.
func lw(closed bool, xy ...float64) *dxf.LWPolyline {
	return &dxf.LWPolyline{Closed: closed, Vertices: pts(xy...)}
}

// line builds a LINE entity.
func line(x0, y0, x1, y1 float64) *dxf.Line {
	return &dxf.Line{Start: pt(x0, y0), End: pt(x1, y1)}
}

func pts(xy ...float64) []vec.Vec2 {
	res := make([]vec.Vec2, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, pt(xy[i], xy[i+1]))
	}
	return res
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
