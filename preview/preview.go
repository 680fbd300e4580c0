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

// Package preview draws the extracted geometry of a drawing into a
// single-page PDF file, for visual comparison with the raster.
package preview

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/section"
)

const (
	// pageSize is the length of the longer page side, in PDF points.
	pageSize = 576

	// margin is the blank border around the drawing, in PDF points.
	margin = 18
)

// WritePDF draws g onto a black page: polylines are filled white using
// the even-odd rule, segments are stroked white. The page shows the world
// rectangle bbox, scaled to fit, with y pointing up.
func WritePDF(name string, g section.Geometry, bbox rect.Rect) error {
	w := bbox.URx - bbox.LLx
	h := bbox.URy - bbox.LLy
	if !(w > 0 && h > 0) {
		return fmt.Errorf("%w: preview of a %gx%g drawing", section.ErrDegenerate, w, h)
	}
	s := pageSize / max(w, h)

	paper := &pdf.Rectangle{
		URx: w*s + 2*margin,
		URy: h*s + 2*margin,
	}
	page, err := document.CreateSinglePage(name, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// world coordinates to page coordinates
	page.Transform(matrix.Matrix{s, 0, 0, s, margin - bbox.LLx*s, margin - bbox.LLy*s})

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))
	page.SetLineWidth(1 / s)

	for _, e := range g.Entities {
		switch e := e.(type) {
		case section.Polyline:
			if len(e.Vertices) < 2 {
				continue
			}
			page.MoveTo(e.Vertices[0].X, e.Vertices[0].Y)
			for _, v := range e.Vertices[1:] {
				page.LineTo(v.X, v.Y)
			}
			page.ClosePath()
			page.FillEvenOdd()
		}
	}
	for _, e := range g.Entities {
		switch e := e.(type) {
		case section.Segment:
			page.MoveTo(e.P0.X, e.P0.Y)
			page.LineTo(e.P1.X, e.P1.Y)
			page.Stroke()
		}
	}

	return page.Close()
}
