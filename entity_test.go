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
	"errors"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/section/dxf"
)

func TestExtract(t *testing.T) {
	ents := []dxf.Entity{
		&dxf.Unknown{TypeName: "TEXT"},
		&dxf.Line{Start: vec.Vec2{X: 1, Y: 2}, End: vec.Vec2{X: 3, Y: 4}},
		&dxf.LWPolyline{Closed: true, Vertices: []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}},
		&dxf.Unknown{TypeName: "CIRCLE"},
		&dxf.Polyline{Vertices: []vec.Vec2{{X: -1, Y: -1}, {X: 5, Y: -1}}},
	}

	g := Extract(ents)
	if g.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", g.Skipped)
	}
	if len(g.Points) != 7 {
		t.Errorf("got %d points, want 7", len(g.Points))
	}
	if len(g.Entities) != 3 {
		t.Fatalf("got %d entities, want 3", len(g.Entities))
	}

	seg, ok := g.Entities[0].(Segment)
	if !ok || seg.P0 != (vec.Vec2{X: 1, Y: 2}) || seg.P1 != (vec.Vec2{X: 3, Y: 4}) {
		t.Errorf("entity 0 = %#v, want the segment", g.Entities[0])
	}
	for i, n := range map[int]int{1: 3, 2: 2} {
		pl, ok := g.Entities[i].(Polyline)
		if !ok || len(pl.Vertices) != n {
			t.Errorf("entity %d = %#v, want a polyline with %d vertices", i, g.Entities[i], n)
		}
	}
	if !g.Entities[1].(Polyline).Closed || g.Entities[2].(Polyline).Closed {
		t.Error("closed flags not carried over")
	}

	bbox, err := g.BBox()
	if err != nil {
		t.Fatal(err)
	}
	want := rect.Rect{LLx: -1, LLy: -1, URx: 5, URy: 4}
	if bbox != want {
		t.Errorf("bbox = %v, want %v", bbox, want)
	}
}

func TestExtractCopiesVertices(t *testing.T) {
	lw := &dxf.LWPolyline{Vertices: []vec.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}}}
	g := Extract([]dxf.Entity{lw})
	lw.Vertices[1] = vec.Vec2{X: 100, Y: 100}

	pl := g.Entities[0].(Polyline)
	if pl.Vertices[1] != (vec.Vec2{X: 2, Y: 0}) {
		t.Errorf("polyline changed with the drawing: %v", pl.Vertices)
	}
}

func TestExtractAnnotationsOnly(t *testing.T) {
	g := Extract([]dxf.Entity{&dxf.Unknown{TypeName: "MTEXT"}})
	if len(g.Entities) != 0 || g.Skipped != 1 {
		t.Errorf("got %d entities, %d skipped", len(g.Entities), g.Skipped)
	}
	if _, err := g.BBox(); !errors.Is(err, ErrEmptyGeometry) {
		t.Errorf("BBox: got %v, want ErrEmptyGeometry", err)
	}
}

func TestBBoxOf(t *testing.T) {
	cases := []struct {
		points []vec.Vec2
		want   rect.Rect
	}{
		{
			points: []vec.Vec2{{X: 3, Y: -2}},
			want:   rect.Rect{LLx: 3, LLy: -2, URx: 3, URy: -2},
		},
		{
			points: []vec.Vec2{{X: 3, Y: -2}, {X: -7, Y: 4}, {X: 1, Y: 9}},
			want:   rect.Rect{LLx: -7, LLy: -2, URx: 3, URy: 9},
		},
		{
			points: []vec.Vec2{{X: 1e6, Y: 1e6}, {X: 1e6 + 0.25, Y: 1e6 - 0.5}},
			want:   rect.Rect{LLx: 1e6, LLy: 1e6 - 0.5, URx: 1e6 + 0.25, URy: 1e6},
		},
	}
	for i, c := range cases {
		got, err := BBoxOf(c.points)
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if got != c.want {
			t.Errorf("%d: got %v, want %v", i, got, c.want)
		}
		for _, p := range c.points {
			if p.X < got.LLx || p.X > got.URx || p.Y < got.LLy || p.Y > got.URy {
				t.Errorf("%d: %v outside %v", i, p, got)
			}
		}
	}

	if _, err := BBoxOf(nil); !errors.Is(err, ErrEmptyGeometry) {
		t.Errorf("empty: got %v, want ErrEmptyGeometry", err)
	}
}
