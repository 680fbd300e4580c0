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
	"cmp"
	"fmt"
	"image"
	"log/slog"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a polygon edge in pixel coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
	dir    int     // +1 for downward edges (y1 > y0), -1 for upward
}

// crossing is the intersection of an edge with a scanline.
type crossing struct {
	x   float64
	dir int
}

// FillRule identifies the rule used to decide which pixels lie inside a
// self-intersecting polygon.
type FillRule int

const (
	EvenOdd FillRule = iota
	NonZero
)

func (r FillRule) String() string {
	switch r {
	case EvenOdd:
		return "evenodd"
	case NonZero:
		return "nonzero"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// Rasterizer converts drawing entities into a binary occupancy grid.
// Pixels are either 0 (background) or Fill; there is no anti-aliasing.
//
// A Rasterizer can be reused for many drawings; internal buffers grow as
// needed but never shrink. A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Resolution is the side length of one pixel in world units.
	// Must be positive.
	Resolution float64

	// Fill is the value written into covered pixels. Must be non-zero.
	Fill uint8

	// Rule decides the interior of self-intersecting polylines.
	Rule FillRule

	// Internal buffers (reused across calls)
	edges     []edge        // edge list for the current polygon
	activeIdx []int         // indices of active edges
	crossings []crossing    // scanline crossings of the active edges
	pixels    []image.Point // polygon vertices in pixel coordinates
}

// NewRasterizer returns a Rasterizer with the given resolution, fill value
// 255 and the even-odd rule.
func NewRasterizer(resolution float64) *Rasterizer {
	return &Rasterizer{
		Resolution: resolution,
		Fill:       defaultFill,
		Rule:       EvenOdd,
	}
}

// Rasterize is a shortcut for creating a [Rasterizer] and calling its
// Rasterize method.
func Rasterize(entities []Entity, bbox rect.Rect, resolution float64, fill uint8) (*image.Gray, error) {
	r := NewRasterizer(resolution)
	r.Fill = fill
	return r.Rasterize(entities, bbox)
}

// GridSize returns the pixel dimensions of the grid covering bbox.
// Both extents are divided by the resolution and truncated, so that the
// grid can fall short of the true extent by up to one pixel per axis.
// Grids with more than 2^28 pixels are rejected with ErrInvalidParameter.
func GridSize(bbox rect.Rect, resolution float64) (width, height int, err error) {
	if !(resolution > 0) || math.IsInf(resolution, 0) {
		return 0, 0, fmt.Errorf("%w: resolution %g", ErrInvalidParameter, resolution)
	}
	dx := (bbox.URx - bbox.LLx) / resolution
	dy := (bbox.URy - bbox.LLy) / resolution
	if !(dx >= 0 && dy >= 0) || dx > maxGridSide || dy > maxGridSide {
		return 0, 0, fmt.Errorf("%w: extent %gx%g at resolution %g",
			ErrInvalidParameter, bbox.URx-bbox.LLx, bbox.URy-bbox.LLy, resolution)
	}

	width, height = int(dx), int(dy)
	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d grid for extent %gx%g at resolution %g",
			ErrDegenerate, width, height, bbox.URx-bbox.LLx, bbox.URy-bbox.LLy, resolution)
	}
	if int64(width)*int64(height) > maxGridPixels {
		return 0, 0, fmt.Errorf("%w: %dx%d grid exceeds %d pixels",
			ErrInvalidParameter, width, height, maxGridPixels)
	}
	return width, height, nil
}

// ToPixel maps a world point to the pixel containing it. The vertical
// axis is flipped: pixel row 0 holds the world points with y close to
// bbox.URy. The result may lie outside the grid.
func ToPixel(bbox rect.Rect, resolution float64, p vec.Vec2) image.Point {
	return image.Point{
		X: int(math.Floor((p.X - bbox.LLx) / resolution)),
		Y: int(math.Floor((bbox.URy - p.Y) / resolution)),
	}
}

// Rasterize draws the entities into a new grid covering bbox.
// Segments are drawn as one pixel wide lines, polylines are filled
// including their outline. Degenerate entities are drawn as far as
// possible and never cause an error.
func (r *Rasterizer) Rasterize(entities []Entity, bbox rect.Rect) (*image.Gray, error) {
	width, height, err := GridSize(bbox, r.Resolution)
	if err != nil {
		return nil, err
	}
	if r.Fill == 0 {
		return nil, fmt.Errorf("%w: fill value 0 is the background", ErrInvalidParameter)
	}

	grid := image.NewGray(image.Rect(0, 0, width, height))
	for _, e := range entities {
		switch e := e.(type) {
		case Segment:
			p0 := ToPixel(bbox, r.Resolution, e.P0)
			p1 := ToPixel(bbox, r.Resolution, e.P1)
			r.drawLine(grid, p0, p1)
		case Polyline:
			r.drawPolygon(grid, bbox, e.Vertices)
		}
	}

	Logger().Debug("rasterized",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("entities", len(entities)))
	return grid, nil
}

// drawPolygon fills the polygon with the given world vertices and then
// strokes its closed outline, so that pixels on the boundary are set.
func (r *Rasterizer) drawPolygon(grid *image.Gray, bbox rect.Rect, vertices []vec.Vec2) {
	if len(vertices) == 0 {
		return
	}

	r.pixels = r.pixels[:0]
	for _, v := range vertices {
		r.pixels = append(r.pixels, ToPixel(bbox, r.Resolution, v))
	}

	p := &path.Data{}
	p.MoveTo(toVec(r.pixels[0]))
	for _, q := range r.pixels[1:] {
		p.LineTo(toVec(q))
	}
	p.Close()
	r.fillPath(grid, p)

	n := len(r.pixels)
	for i, q := range r.pixels {
		r.drawLine(grid, q, r.pixels[(i+1)%n])
	}
}

func toVec(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// fillPath fills the interior of a path given in pixel coordinates.
// Pixel (x, y) is inside if the point (x, y) is inside the path
// according to r.Rule.
func (r *Rasterizer) fillPath(grid *image.Gray, p *path.Data) {
	yMin, yMax, ok := r.collectPathEdges(p, grid.Rect.Dy())
	if !ok {
		return // empty or degenerate path
	}

	// Sort edges by y_min
	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	// Active edge list (indices into r.edges)
	r.activeIdx = r.activeIdx[:0]
	nextEdge := 0

	for y := yMin; y < yMax; y++ {
		yf := float64(y)

		// Add edges that start at or above this scanline
		for nextEdge < len(r.edges) {
			e := &r.edges[nextEdge]
			if min(e.y0, e.y1) > yf {
				break
			}
			r.activeIdx = append(r.activeIdx, nextEdge)
			nextEdge++
		}

		// Collect crossings; edges cover the half-open interval [yMin, yMax)
		r.crossings = r.crossings[:0]
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				// Remove from active list (swap with last)
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}
			r.crossings = append(r.crossings, crossing{
				x:   e.x0 + e.dxdy*(yf-e.y0),
				dir: e.dir,
			})
			i++
		}
		if len(r.crossings) < 2 {
			continue
		}

		slices.SortFunc(r.crossings, func(a, b crossing) int {
			return cmp.Compare(a.x, b.x)
		})
		r.fillScanline(grid, y)
	}
}

// fillScanline sets the pixels of row y which lie between the sorted
// crossings in r.crossings, according to r.Rule.
func (r *Rasterizer) fillScanline(grid *image.Gray, y int) {
	switch r.Rule {
	case NonZero:
		winding := 0
		for i, c := range r.crossings[:len(r.crossings)-1] {
			winding += c.dir
			if winding != 0 {
				r.fillSpan(grid, y, c.x, r.crossings[i+1].x)
			}
		}
	default:
		for i := 0; i+1 < len(r.crossings); i += 2 {
			r.fillSpan(grid, y, r.crossings[i].x, r.crossings[i+1].x)
		}
	}
}

// fillSpan sets the pixels x of row y with xLeft <= x <= xRight.
func (r *Rasterizer) fillSpan(grid *image.Gray, y int, xLeft, xRight float64) {
	lo := max(int(math.Ceil(xLeft)), 0)
	hi := min(int(math.Floor(xRight)), grid.Rect.Dx()-1)
	if lo > hi {
		return
	}
	row := grid.Pix[y*grid.Stride:]
	for x := lo; x <= hi; x++ {
		row[x] = r.Fill
	}
}

// collectPathEdges walks the path and builds the edge list.
// Returns the range of scanlines touched by the edges, clamped to
// [0, height).
func (r *Rasterizer) collectPathEdges(p *path.Data, height int) (yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]

	var current vec.Vec2 // current point
	var subpath vec.Vec2 // subpath start

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			r.addEdge(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdClose:
			if current != subpath {
				r.addEdge(current, subpath)
			}
			current = subpath
		}
	}

	if len(r.edges) == 0 {
		return 0, 0, false
	}

	devYMin := math.Inf(+1)
	devYMax := math.Inf(-1)
	for _, e := range r.edges {
		devYMin = min(devYMin, e.y0, e.y1)
		devYMax = max(devYMax, e.y0, e.y1)
	}
	yMin = max(int(math.Ceil(devYMin)), 0)
	yMax = min(int(math.Ceil(devYMax)), height)
	if yMin >= yMax {
		return 0, 0, false
	}
	return yMin, yMax, true
}

// addEdge appends the edge from p0 to p1. Horizontal edges never cross a
// scanline and are skipped; the outline stroke covers them.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	dir := 1
	if dy < 0 {
		dir = -1
	}
	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
		dir:  dir,
	})
}

// drawLine sets the pixels of a one pixel wide line from p0 to p1, both
// included, using Bresenham's algorithm. Pixels outside the grid are
// skipped.
func (r *Rasterizer) drawLine(grid *image.Gray, p0, p1 image.Point) {
	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}

	w, h := grid.Rect.Dx(), grid.Rect.Dy()
	x, y := p0.X, p0.Y
	e := dx + dy
	for {
		if x >= 0 && x < w && y >= 0 && y < h {
			grid.Pix[y*grid.Stride+x] = r.Fill
		}
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Reset clears the internal buffers, preserving their capacity.
func (r *Rasterizer) Reset(resolution float64) {
	r.Resolution = resolution
	r.Fill = defaultFill
	r.Rule = EvenOdd

	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.crossings = r.crossings[:0]
	r.pixels = r.pixels[:0]
}

const (
	// defaultFill is the pixel value of covered pixels.
	defaultFill = 255

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to take part in the scanline fill.
	horizontalEdgeThreshold = 1e-10

	// maxGridSide bounds the grid dimensions, so that int conversion
	// cannot overflow.
	maxGridSide = 1 << 20

	// maxGridPixels bounds the grid area, i.e. the memory of the grid in
	// bytes.
	maxGridPixels = 1 << 28
)
