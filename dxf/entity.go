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

import "seehuhn.de/go/geom/vec"

// Entity is a drawing entity from the ENTITIES section.
type Entity interface {
	// DXFType returns the entity type name, e.g. "LINE".
	DXFType() string
}

// Line is a LINE entity.
type Line struct {
	Layer      string
	Start, End vec.Vec2
}

func (*Line) DXFType() string { return "LINE" }

// LWPolyline is a lightweight polyline (LWPOLYLINE).
type LWPolyline struct {
	Layer    string
	Closed   bool
	Vertices []vec.Vec2
}

func (*LWPolyline) DXFType() string { return "LWPOLYLINE" }

// Polyline is a classic POLYLINE entity together with its VERTEX records.
type Polyline struct {
	Layer    string
	Closed   bool
	Vertices []vec.Vec2
}

func (*Polyline) DXFType() string { return "POLYLINE" }

// Unknown is an entity of a type this package does not decode.
type Unknown struct {
	TypeName string
	Layer    string
}

func (u *Unknown) DXFType() string { return u.TypeName }

const (
	// polylineClosed is bit 1 of group code 70 on (LW)POLYLINE entities.
	polylineClosed = 1

	// vertexFaceRecord is bit 128 of group code 70 on VERTEX entities. It
	// marks the face records of a polyface mesh, which carry vertex
	// indices instead of a position.
	vertexFaceRecord = 128
)
