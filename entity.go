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
	"log/slog"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/section/dxf"
)

// Entity is a drawing primitive in world coordinates.
// The variants are [Segment] and [Polyline].
type Entity interface {
	isEntity()
}

// Segment is a straight line between two points. It is drawn as a
// one pixel wide line.
type Segment struct {
	P0, P1 vec.Vec2
}

func (Segment) isEntity() {}

// Polyline is a sequence of vertices. It is rendered as a filled polygon,
// closed implicitly whether or not the last vertex repeats the first.
type Polyline struct {
	Vertices []vec.Vec2

	// Closed records the closed flag of the drawing entity. It does not
	// affect rasterization.
	Closed bool
}

func (Polyline) isEntity() {}

// Geometry is the result of [Extract].
type Geometry struct {
	// Points lists the vertex coordinates of all entities, in drawing
	// order. No points are interpolated along segments.
	Points []vec.Vec2

	// Entities holds the recognized entities, in drawing order.
	Entities []Entity

	// Skipped counts the drawing entities of unsupported types.
	Skipped int
}

// Extract converts DXF entities into drawing primitives.
// LINE becomes a [Segment], LWPOLYLINE and POLYLINE become a [Polyline].
// Entities of any other type are ignored.
func Extract(ents []dxf.Entity) Geometry {
	var g Geometry
	for _, e := range ents {
		switch e := e.(type) {
		case *dxf.Line:
			g.Points = append(g.Points, e.Start, e.End)
			g.Entities = append(g.Entities, Segment{P0: e.Start, P1: e.End})
		case *dxf.LWPolyline:
			g.addPolyline(e.Vertices, e.Closed)
		case *dxf.Polyline:
			g.addPolyline(e.Vertices, e.Closed)
		default:
			g.Skipped++
			Logger().Debug("skipping entity", slog.String("type", e.DXFType()))
		}
	}
	return g
}

func (g *Geometry) addPolyline(vertices []vec.Vec2, closed bool) {
	g.Points = append(g.Points, vertices...)
	g.Entities = append(g.Entities, Polyline{Vertices: slices.Clone(vertices), Closed: closed})
}

// BBox returns the bounding box of the extracted points.
func (g Geometry) BBox() (rect.Rect, error) {
	return BBoxOf(g.Points)
}

// BBoxOf returns the smallest rectangle containing all points.
// LLx/LLy hold the minimum and URx/URy the maximum coordinates.
// If there are no points, ErrEmptyGeometry is returned.
func BBoxOf(points []vec.Vec2) (rect.Rect, error) {
	if len(points) == 0 {
		return rect.Rect{}, ErrEmptyGeometry
	}

	bbox := rect.Rect{
		LLx: points[0].X, LLy: points[0].Y,
		URx: points[0].X, URy: points[0].Y,
	}
	for _, p := range points[1:] {
		bbox.LLx = min(bbox.LLx, p.X)
		bbox.LLy = min(bbox.LLy, p.Y)
		bbox.URx = max(bbox.URx, p.X)
		bbox.URy = max(bbox.URy, p.Y)
	}
	return bbox, nil
}
