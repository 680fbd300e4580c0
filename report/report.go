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

// Package report formats section properties as plain text.
package report

import (
	"fmt"
	"io"

	"seehuhn.de/go/section"
)

// Line is one labelled value of a report.
type Line struct {
	Label string
	Value float64
}

// Lines returns the reported quantities in report order.
func Lines(p section.Properties) []Line {
	return []Line{
		{"A", p.Area},
		{"Iy", p.Iy},
		{"Ix", p.Ix},
		{"yc, inf", p.YInf},
		{"yc, sup", p.YSup},
		{"Wc, inf", p.WInf},
		{"Wc, sup", p.WSup},
		{"Kc, inf", p.KInf},
		{"Kc, sup", p.KSup},
	}
}

// Header returns the title line for a report.
func Header(label string) string {
	return "====== " + label + " ======"
}

// Write writes the header and the values of p, four decimal places each,
// followed by two blank lines.
func Write(w io.Writer, label string, p section.Properties) error {
	if _, err := fmt.Fprintln(w, Header(label)); err != nil {
		return err
	}
	return WriteBody(w, p)
}

// WriteBody writes the values of p without a header.
func WriteBody(w io.Writer, p section.Properties) error {
	for _, l := range Lines(p) {
		if _, err := fmt.Fprintf(w, "%s: %.4f\n", l.Label, l.Value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "\n\n")
	return err
}
