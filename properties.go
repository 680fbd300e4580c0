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
	"fmt"
	"image"
	"iter"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Properties holds the section properties of a grid.
// All lengths use the unit of the depth passed to [Calculator.Compute].
type Properties struct {
	Area float64 // A
	Iy   float64 // second moment of area about the vertical centroidal axis
	Ix   float64 // second moment of area about the horizontal centroidal axis
	YInf float64 // distance from the centroid to the bottom fiber
	YSup float64 // distance from the centroid to the top fiber
	WInf float64 // section modulus for the bottom fiber, Ix/YInf
	WSup float64 // section modulus for the top fiber, Ix/YSup
	KInf float64 // WInf/Area
	KSup float64 // WSup/Area

	CentroidX float64 // depends on the AxisConvention
	CentroidY float64 // equal to YInf
	CellSize  float64 // side length of one pixel cell

	RowFirst int // first grid row containing a filled pixel
	RowLast  int // last grid row containing a filled pixel
}

// AxisConvention selects how horizontal cell coordinates are measured.
//
// Iy, and everything else in [Properties] except CentroidX, is the same
// under both conventions: Iy only depends on distances from the centroid,
// and these do not change under translation or reflection.
type AxisConvention int

const (
	// AxisLegacy measures the horizontal coordinate of column j as
	// (rowLast - j + 1)*cell - cell/2, using the last filled row where a
	// column bound would be expected. This reproduces the reference
	// results digit for digit, but CentroidX has no geometric meaning.
	AxisLegacy AxisConvention = iota

	// AxisColumns measures the horizontal coordinate of column j as
	// (j - colFirst + 1)*cell - cell/2, where colFirst is the first
	// column containing a filled pixel.
	AxisColumns
)

func (a AxisConvention) String() string {
	switch a {
	case AxisLegacy:
		return "legacy"
	case AxisColumns:
		return "columns"
	default:
		return fmt.Sprintf("AxisConvention(%d)", int(a))
	}
}

// Calculator integrates section properties over an occupancy grid.
// The zero value uses [AxisLegacy].
type Calculator struct {
	Axis AxisConvention
}

// Compute is a shortcut for Calculator{}.Compute.
func Compute(grid *image.Gray, depth float64) (Properties, error) {
	return Calculator{}.Compute(grid, depth)
}

// Compute returns the section properties of the filled pixels in grid.
//
// depth is the real total height of the section. Pixels are taken as
// square cells whose side is depth divided by the number of rows between
// the first and the last filled row, inclusive. Every non-zero pixel of
// the grid contributes one cell.
func (c Calculator) Compute(grid *image.Gray, depth float64) (Properties, error) {
	if grid == nil {
		return Properties{}, fmt.Errorf("%w: nil grid", ErrInvalidParameter)
	}
	if !(depth > 0) || math.IsInf(depth, 0) {
		return Properties{}, fmt.Errorf("%w: depth %g", ErrInvalidParameter, depth)
	}

	rowFirst, rowLast, ok := rowExtent(grid)
	if !ok {
		return Properties{}, ErrEmptyRaster
	}
	nRows := rowLast - rowFirst + 1
	if nRows <= 0 {
		return Properties{}, fmt.Errorf("%w: %d filled rows", ErrDegenerate, nRows)
	}
	cell := depth / float64(nRows)

	f := frame{cell: cell, rowLast: rowLast}
	if c.Axis == AxisColumns {
		f.colFirst, _, _ = colExtent(grid)
		f.columns = true
	}
	cells := f.cells(grid)

	c0, err := centroid(cells, cell)
	if err != nil {
		return Properties{}, err
	}
	ix, iy := secondMoments(cells, cell, c0.center)

	yInf := c0.center.Y
	ySup := depth - c0.center.Y
	if yInf == 0 || ySup == 0 {
		return Properties{}, fmt.Errorf("%w: centroid on an extreme fiber", ErrDegenerate)
	}
	wInf := ix / yInf
	wSup := ix / ySup

	return Properties{
		Area: c0.area,
		Iy:   iy,
		Ix:   ix,
		YInf: yInf,
		YSup: ySup,
		WInf: wInf,
		WSup: wSup,
		KInf: wInf / c0.area,
		KSup: wSup / c0.area,

		CentroidX: c0.center.X,
		CentroidY: c0.center.Y,
		CellSize:  cell,

		RowFirst: rowFirst,
		RowLast:  rowLast,
	}, nil
}

// frame maps grid indices to physical cell centres.
type frame struct {
	cell     float64
	rowLast  int
	colFirst int
	columns  bool
}

// cells iterates over the physical centres of all filled pixels of the
// grid, row by row.
func (f frame) cells(grid *image.Gray) iter.Seq[vec.Vec2] {
	return func(yield func(vec.Vec2) bool) {
		w, h := grid.Rect.Dx(), grid.Rect.Dy()
		for i := range h {
			row := grid.Pix[i*grid.Stride : i*grid.Stride+w]
			y := float64(f.rowLast-i+1)*f.cell - f.cell/2
			for j, v := range row {
				if v == 0 {
					continue
				}
				var x float64
				if f.columns {
					x = float64(j-f.colFirst+1)*f.cell - f.cell/2
				} else {
					x = float64(f.rowLast-j+1)*f.cell - f.cell/2
				}
				if !yield(vec.Vec2{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// firstMoments is the result of the centroid pass.
type firstMoments struct {
	area   float64
	center vec.Vec2
}

// centroid accumulates area and first moments over the cells.
func centroid(cells iter.Seq[vec.Vec2], cell float64) (firstMoments, error) {
	a := cell * cell
	var sumA, sumAx, sumAy float64
	for p := range cells {
		sumA += a
		sumAx += a * p.X
		sumAy += a * p.Y
	}
	if sumA == 0 {
		return firstMoments{}, fmt.Errorf("%w: zero area", ErrDegenerate)
	}
	return firstMoments{
		area:   sumA,
		center: vec.Vec2{X: sumAx / sumA, Y: sumAy / sumA},
	}, nil
}

// secondMoments accumulates the second moments of area of the cells about
// the axes through center, using the parallel axis theorem for each cell.
func secondMoments(cells iter.Seq[vec.Vec2], cell float64, center vec.Vec2) (ix, iy float64) {
	b, h := cell, cell
	for p := range cells {
		dy := p.Y - center.Y
		ix += b*h*h*h/12 + b*h*dy*dy
		dx := p.X - center.X
		iy += h*b*b*b/12 + h*b*dx*dx
	}
	return ix, iy
}

// rowExtent returns the first and the last row containing a non-zero
// pixel.
func rowExtent(grid *image.Gray) (first, last int, ok bool) {
	h := grid.Rect.Dy()
	first = -1
	for i := range h {
		if rowFilled(grid, i) {
			first = i
			break
		}
	}
	if first < 0 {
		return 0, 0, false
	}
	for i := h - 1; i >= first; i-- {
		if rowFilled(grid, i) {
			last = i
			break
		}
	}
	return first, last, true
}

// colExtent returns the first and the last column containing a non-zero
// pixel.
func colExtent(grid *image.Gray) (first, last int, ok bool) {
	w, h := grid.Rect.Dx(), grid.Rect.Dy()
	first, last = w, -1
	for i := range h {
		row := grid.Pix[i*grid.Stride : i*grid.Stride+w]
		for j, v := range row {
			if v != 0 {
				first = min(first, j)
				last = max(last, j)
			}
		}
	}
	if last < 0 {
		return 0, 0, false
	}
	return first, last, true
}

func rowFilled(grid *image.Gray, i int) bool {
	w := grid.Rect.Dx()
	for _, v := range grid.Pix[i*grid.Stride : i*grid.Stride+w] {
		if v != 0 {
			return true
		}
	}
	return false
}
