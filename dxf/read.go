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

// Package dxf reads and writes the subset of ASCII DXF needed to describe
// a cross-section drawing: LINE, LWPOLYLINE and POLYLINE entities in the
// ENTITIES section. Entities of other types are returned as [Unknown].
package dxf

import (
	"io"
	"os"

	"seehuhn.de/go/geom/vec"
)

// Drawing holds the model space entities of a DXF file, in file order.
type Drawing struct {
	Entities []Entity
}

// ReadFile reads the DXF file with the given name.
func ReadFile(name string) (d *Drawing, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Read(f)
}

// record is the raw group list of one entity.
type record struct {
	typ  string
	tags []Tag
}

// paperSpace reports whether group 67 places the entity in paper space.
func (r *record) paperSpace() bool {
	for _, t := range r.tags {
		if t.Code == 67 {
			return t.Value == "1"
		}
	}
	return false
}

// flags returns the value of group 70, or 0 if there is none.
func (r *record) flags() (int, error) {
	for _, t := range r.tags {
		if t.Code == 70 {
			return t.AsInt()
		}
	}
	return 0, nil
}

// Read decodes an ASCII DXF stream. A stream without an ENTITIES section
// gives an empty Drawing. Paper space entities (group 67 set to 1) are
// skipped, together with the VERTEX and SEQEND records of a paper space
// POLYLINE.
func Read(r io.Reader) (*Drawing, error) {
	records, err := readEntityRecords(NewScanner(r))
	if err != nil {
		return nil, err
	}

	d := &Drawing{}
	for i := 0; i < len(records); i++ {
		rec := records[i]
		if rec.paperSpace() {
			if rec.typ == "POLYLINE" {
				i = skipVertices(records, i)
			}
			continue
		}

		switch rec.typ {
		case "LINE":
			l, err := decodeLine(rec.tags)
			if err != nil {
				return nil, err
			}
			d.Entities = append(d.Entities, l)

		case "LWPOLYLINE":
			p, err := decodeLWPolyline(rec.tags)
			if err != nil {
				return nil, err
			}
			d.Entities = append(d.Entities, p)

		case "POLYLINE":
			p := &Polyline{}
			for _, t := range rec.tags {
				switch t.Code {
				case 8:
					p.Layer = t.Value
				case 70:
					flags, err := t.AsInt()
					if err != nil {
						return nil, err
					}
					p.Closed = flags&polylineClosed != 0
				}
			}
			for i+1 < len(records) && records[i+1].typ == "VERTEX" {
				i++
				flags, err := records[i].flags()
				if err != nil {
					return nil, err
				}
				if flags&vertexFaceRecord != 0 {
					continue
				}
				v, err := decodePoint(records[i].tags, 10, 20)
				if err != nil {
					return nil, err
				}
				p.Vertices = append(p.Vertices, v)
			}
			if i+1 < len(records) && records[i+1].typ == "SEQEND" {
				i++
			}
			d.Entities = append(d.Entities, p)

		default:
			u := &Unknown{TypeName: rec.typ}
			for _, t := range rec.tags {
				if t.Code == 8 {
					u.Layer = t.Value
				}
			}
			d.Entities = append(d.Entities, u)
		}
	}
	return d, nil
}

// skipVertices returns the index of the last VERTEX or SEQEND record
// following the POLYLINE record at index i.
func skipVertices(records []record, i int) int {
	for i+1 < len(records) && records[i+1].typ == "VERTEX" {
		i++
	}
	if i+1 < len(records) && records[i+1].typ == "SEQEND" {
		i++
	}
	return i
}

// readEntityRecords splits the ENTITIES section into one record per
// entity. Other sections are skipped.
func readEntityRecords(s *Scanner) ([]record, error) {
	var records []record
	var cur *record
	flush := func() {
		if cur != nil {
			records = append(records, *cur)
			cur = nil
		}
	}

	section := ""
	wantName := false
loop:
	for s.Next() {
		t := s.LastTag
		switch {
		case t.Code == 0 && t.Value == "SECTION":
			flush()
			wantName = true
		case t.Code == 2 && wantName:
			section = t.Value
			wantName = false
		case t.Code == 0 && t.Value == "ENDSEC":
			flush()
			section = ""
		case t.Code == 0 && t.Value == "EOF":
			flush()
			break loop
		case t.Code == 0 && section == "ENTITIES":
			flush()
			cur = &record{typ: t.Value}
		case cur != nil:
			cur.tags = append(cur.tags, t)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	flush()
	return records, nil
}

func decodeLine(tags []Tag) (*Line, error) {
	l := &Line{}
	for _, t := range tags {
		if t.Code == 8 {
			l.Layer = t.Value
		}
	}
	var err error
	l.Start, err = decodePoint(tags, 10, 20)
	if err != nil {
		return nil, err
	}
	l.End, err = decodePoint(tags, 11, 21)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// decodeLWPolyline reads the vertex list of an LWPOLYLINE. Every group 10
// starts a new vertex, the following group 20 sets its y coordinate.
func decodeLWPolyline(tags []Tag) (*LWPolyline, error) {
	p := &LWPolyline{}
	for _, t := range tags {
		switch t.Code {
		case 8:
			p.Layer = t.Value
		case 70:
			flags, err := t.AsInt()
			if err != nil {
				return nil, err
			}
			p.Closed = flags&polylineClosed != 0
		case 10:
			x, err := t.AsFloat()
			if err != nil {
				return nil, err
			}
			p.Vertices = append(p.Vertices, vec.Vec2{X: x})
		case 20:
			y, err := t.AsFloat()
			if err != nil {
				return nil, err
			}
			if n := len(p.Vertices); n > 0 {
				p.Vertices[n-1].Y = y
			}
		}
	}
	return p, nil
}

// decodePoint returns the point stored in the groups xCode and yCode.
// Missing groups default to zero.
func decodePoint(tags []Tag, xCode, yCode int) (vec.Vec2, error) {
	var p vec.Vec2
	for _, t := range tags {
		switch t.Code {
		case xCode:
			x, err := t.AsFloat()
			if err != nil {
				return vec.Vec2{}, err
			}
			p.X = x
		case yCode:
			y, err := t.AsFloat()
			if err != nil {
				return vec.Vec2{}, err
			}
			p.Y = y
		}
	}
	return p, nil
}
