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

package dxf

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/vec"
)

// sample mixes all supported entity types with a CIRCLE, a HEADER section
// and CRLF line endings.
const sample = "  0\r\nSECTION\r\n  2\r\nHEADER\r\n  9\r\n$ACADVER\r\n  1\r\nAC1015\r\n  0\r\nENDSEC\r\n" +
	"  0\r\nSECTION\r\n  2\r\nENTITIES\r\n" +
	"  0\r\nLINE\r\n  8\r\nWEB\r\n 10\r\n1.5\r\n 20\r\n-2\r\n 30\r\n0\r\n 11\r\n4\r\n 21\r\n6.25\r\n 31\r\n0\r\n" +
	"  0\r\nCIRCLE\r\n  8\r\n0\r\n 10\r\n0\r\n 20\r\n0\r\n 40\r\n3\r\n" +
	"  0\r\nLWPOLYLINE\r\n  8\r\nFLANGE\r\n 90\r\n3\r\n 70\r\n1\r\n 10\r\n0\r\n 20\r\n0\r\n 10\r\n10\r\n 20\r\n0\r\n 10\r\n10\r\n 20\r\n5\r\n" +
	"  0\r\nPOLYLINE\r\n  8\r\n0\r\n 66\r\n1\r\n 70\r\n0\r\n 10\r\n0\r\n 20\r\n0\r\n" +
	"  0\r\nVERTEX\r\n  8\r\n0\r\n 10\r\n1\r\n 20\r\n2\r\n" +
	"  0\r\nVERTEX\r\n  8\r\n0\r\n 10\r\n3\r\n 20\r\n4\r\n" +
	"  0\r\nSEQEND\r\n" +
	"  0\r\nENDSEC\r\n  0\r\nEOF\r\n\r\n"

func TestRead(t *testing.T) {
	d, err := Read(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, d.Entities, 4)

	assert.Equal(t, &Line{
		Layer: "WEB",
		Start: vec.Vec2{X: 1.5, Y: -2},
		End:   vec.Vec2{X: 4, Y: 6.25},
	}, d.Entities[0])

	assert.Equal(t, &Unknown{TypeName: "CIRCLE", Layer: "0"}, d.Entities[1])
	assert.Equal(t, "CIRCLE", d.Entities[1].DXFType())

	assert.Equal(t, &LWPolyline{
		Layer:    "FLANGE",
		Closed:   true,
		Vertices: []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}},
	}, d.Entities[2])

	assert.Equal(t, &Polyline{
		Layer:    "0",
		Vertices: []vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}},
	}, d.Entities[3])
}

func TestReadNoEntities(t *testing.T) {
	const header = "0\nSECTION\n2\nHEADER\n0\nENDSEC\n0\nEOF\n"
	d, err := Read(strings.NewReader(header))
	require.NoError(t, err)
	assert.Empty(t, d.Entities)
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line int
	}{
		{"bad group code", "0\nSECTION\nX\nENTITIES\n", 3},
		{"bad number", "0\nSECTION\n2\nENTITIES\n0\nLINE\n10\nabc\n", 8},
		{"bad flags", "0\nSECTION\n2\nENTITIES\n0\nLWPOLYLINE\n70\n1.5\n", 8},
		{"missing value", "0\nSECTION\n2\n", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(c.in))
			require.Error(t, err)
			var syn *SyntaxError
			require.True(t, errors.As(err, &syn), "got %v", err)
			assert.Equal(t, c.line, syn.Line)
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	in := []Entity{
		&Line{Layer: "A", Start: vec.Vec2{X: 0.1, Y: 0.2}, End: vec.Vec2{X: 1e3, Y: -7.125}},
		&LWPolyline{Layer: "B", Closed: true, Vertices: []vec.Vec2{{X: 0, Y: 0}, {X: 1.0 / 3, Y: 0}, {X: 0, Y: 2}}},
		&Polyline{Layer: "C", Vertices: []vec.Vec2{{X: 5, Y: 5}, {X: 6, Y: 7}}},
		&Unknown{TypeName: "ARC", Layer: "D"},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, in))

	d, err := Read(buf)
	require.NoError(t, err)
	assert.Equal(t, in, d.Entities)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.dxf"))
	assert.Error(t, err)
}

// TestReadPaperSpace checks that entities with group 67 set to 1 are
// dropped, including the vertices of a paper space POLYLINE.
func TestReadPaperSpace(t *testing.T) {
	const in = "0\nSECTION\n2\nENTITIES\n" +
		"0\nLINE\n8\n0\n10\n0\n20\n0\n11\n1\n21\n1\n" +
		"0\nLINE\n67\n1\n8\nTITLE\n10\n500\n20\n500\n11\n600\n21\n600\n" +
		"0\nPOLYLINE\n67\n     1\n8\nFRAME\n66\n1\n70\n1\n" +
		"0\nVERTEX\n67\n1\n10\n400\n20\n400\n" +
		"0\nVERTEX\n67\n1\n10\n700\n20\n400\n" +
		"0\nSEQEND\n67\n1\n" +
		"0\nLWPOLYLINE\n67\n0\n90\n2\n10\n2\n20\n2\n10\n3\n20\n2\n" +
		"0\nENDSEC\n0\nEOF\n"

	d, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Entity{
		&Line{Layer: "0", Start: vec.Vec2{X: 0, Y: 0}, End: vec.Vec2{X: 1, Y: 1}},
		&LWPolyline{Vertices: []vec.Vec2{{X: 2, Y: 2}, {X: 3, Y: 2}}},
	}, d.Entities)
}

// TestReadPolyfaceMesh checks that the face records of a polyface mesh do
// not become polygon vertices.
func TestReadPolyfaceMesh(t *testing.T) {
	const in = "0\nSECTION\n2\nENTITIES\n" +
		"0\nPOLYLINE\n66\n1\n70\n64\n" +
		"0\nVERTEX\n70\n192\n10\n0\n20\n0\n" +
		"0\nVERTEX\n70\n192\n10\n4\n20\n0\n" +
		"0\nVERTEX\n70\n192\n10\n4\n20\n3\n" +
		"0\nVERTEX\n70\n128\n10\n0\n20\n0\n71\n1\n72\n2\n73\n3\n" +
		"0\nSEQEND\n" +
		"0\nENDSEC\n0\nEOF\n"

	d, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, d.Entities, 1)
	assert.Equal(t, []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}},
		d.Entities[0].(*Polyline).Vertices)
}

// TestReadVertexCount checks that the vertex count in group 90 is not
// trusted: the vertices present in the file are returned.
func TestReadVertexCount(t *testing.T) {
	const in = "0\nSECTION\n2\nENTITIES\n" +
		"0\nLWPOLYLINE\n90\n2\n70\n1\n" +
		"10\n0\n20\n0\n10\n4\n20\n0\n10\n4\n20\n3\n10\n0\n20\n3\n" +
		"0\nENDSEC\n0\nEOF\n"

	d, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, d.Entities, 1)
	pl := d.Entities[0].(*LWPolyline)
	assert.True(t, pl.Closed)
	assert.Len(t, pl.Vertices, 4)
}
