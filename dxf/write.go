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
	"bufio"
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// Write writes a minimal DXF file consisting of an ENTITIES section only.
// Coordinates are written with full precision, so that Read recovers them
// exactly.
func Write(w io.Writer, entities []Entity) error {
	gw := &groupWriter{w: bufio.NewWriter(w)}

	gw.group(0, "SECTION")
	gw.group(2, "ENTITIES")
	for _, e := range entities {
		switch e := e.(type) {
		case *Line:
			gw.group(0, "LINE")
			gw.group(8, layerName(e.Layer))
			gw.point(10, e.Start)
			gw.point(11, e.End)
		case *LWPolyline:
			gw.group(0, "LWPOLYLINE")
			gw.group(8, layerName(e.Layer))
			gw.group(90, strconv.Itoa(len(e.Vertices)))
			gw.group(70, closedFlag(e.Closed))
			for _, v := range e.Vertices {
				gw.group(10, formatFloat(v.X))
				gw.group(20, formatFloat(v.Y))
			}
		case *Polyline:
			gw.group(0, "POLYLINE")
			gw.group(8, layerName(e.Layer))
			gw.group(66, "1")
			gw.group(70, closedFlag(e.Closed))
			for _, v := range e.Vertices {
				gw.group(0, "VERTEX")
				gw.group(8, layerName(e.Layer))
				gw.point(10, v)
			}
			gw.group(0, "SEQEND")
		case *Unknown:
			gw.group(0, e.TypeName)
			gw.group(8, layerName(e.Layer))
		default:
			return fmt.Errorf("dxf: cannot write entity of type %T", e)
		}
	}
	gw.group(0, "ENDSEC")
	gw.group(0, "EOF")

	if gw.err != nil {
		return gw.err
	}
	return gw.w.Flush()
}

// groupWriter remembers the first write error.
type groupWriter struct {
	w   *bufio.Writer
	err error
}

func (gw *groupWriter) group(code int, value string) {
	if gw.err != nil {
		return
	}
	_, gw.err = fmt.Fprintf(gw.w, "%3d\n%s\n", code, value)
}

// point writes a 3D point with z = 0, using the group codes code,
// code+10 and code+20.
func (gw *groupWriter) point(code int, p vec.Vec2) {
	gw.group(code, formatFloat(p.X))
	gw.group(code+10, formatFloat(p.Y))
	gw.group(code+20, "0.0")
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func closedFlag(closed bool) string {
	if closed {
		return strconv.Itoa(polylineClosed)
	}
	return "0"
}

func layerName(name string) string {
	if name == "" {
		return "0"
	}
	return name
}
