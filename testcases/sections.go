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

package testcases

import "seehuhn.de/go/section/dxf"

var basicCases = []TestCase{
	{
		Name:       "rectangle",
		Entities:   []dxf.Entity{rectangle(0, 0, 20, 10)},
		Resolution: 0.5,
		Depth:      10,
		Want:       rectangleAnalytic(20, 10),
	},
	{
		// open POLYLINE repeating the first vertex
		Name: "rectangle_polyline",
		Entities: []dxf.Entity{
			&dxf.Polyline{Vertices: pts(0, 0, 20, 0, 20, 10, 0, 10, 0, 0)},
		},
		Resolution: 0.5,
		Depth:      10,
		Want:       rectangleAnalytic(20, 10),
	},
	{
		// only the outline is drawn, there is no filled interior
		Name: "rectangle_lines",
		Entities: []dxf.Entity{
			line(0, 0, 20, 0),
			line(20, 0, 20, 10),
			line(20, 10, 0, 10),
			line(0, 10, 0, 0),
		},
		Resolution: 0.5,
		Depth:      10,
	},
}

var profileCases = []TestCase{
	{
		// flanges 10 x 2, web 2 x 8
		Name: "i_section",
		Entities: []dxf.Entity{
			lw(true,
				0, 0, 10, 0, 10, 2, 6, 2, 6, 10, 10, 10,
				10, 12, 0, 12, 0, 10, 4, 10, 4, 2, 0, 2),
		},
		Resolution: 1.0 / 32,
		Depth:      12,
		Want: Analytic{
			Area: 56,
			Ix:   10*12*12*12/12.0 - 8*8*8*8/12.0,
			Iy:   2*2*10*10*10/12.0 + 8*2*2*2/12.0,
			YInf: 6,
		},
	},
	{
		// top flange 10 x 2, web 2 x 10
		Name: "t_section",
		Entities: []dxf.Entity{
			lw(true, 4, 0, 6, 0, 6, 10, 10, 10, 10, 12, 0, 12, 0, 10, 4, 10),
		},
		Resolution: 1.0 / 32,
		Depth:      12,
		Want: Analytic{
			Area: 40,
			Ix:   (2*10*10*10/12.0 + 20*3*3) + (10*2*2*2/12.0 + 20*3*3),
			Iy:   10*2*2*2/12.0 + 2*10*10*10/12.0,
			YInf: 8,
		},
	},
}

var mixedCases = []TestCase{
	{
		// annotation entities are ignored
		Name: "rectangle_annotated",
		Entities: []dxf.Entity{
			&dxf.Unknown{TypeName: "TEXT"},
			rectangle(0, 0, 20, 10),
			&dxf.Unknown{TypeName: "DIMENSION"},
		},
		Resolution: 0.5,
		Depth:      10,
		Want:       rectangleAnalytic(20, 10),
	},
	{
		// an open polyline is closed implicitly, the lid line lies on the
		// closing edge
		Name: "box_with_lid",
		Entities: []dxf.Entity{
			lw(false, 0, 8, 0, 0, 16, 0, 16, 8),
			line(0, 8, 16, 8),
		},
		Resolution: 0.25,
		Depth:      8,
		Want:       rectangleAnalytic(16, 8),
	},
}

// rectangle builds a closed LWPOLYLINE with corners (x0, y0), (x1, y1).
func rectangle(x0, y0, x1, y1 float64) *dxf.LWPolyline {
	return lw(true, x0, y0, x1, y0, x1, y1, x0, y1)
}

func rectangleAnalytic(b, h float64) Analytic {
	return Analytic{
		Area: b * h,
		Ix:   b * h * h * h / 12,
		Iy:   h * b * b * b / 12,
		YInf: h / 2,
	}
}
