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

// Package section computes structural properties of a cross-section from
// a vector drawing.
//
// The drawing's line segments and polylines are rasterized into a binary
// occupancy grid (see [Rasterizer]); the grid is then integrated cell by
// cell to obtain area, centroid, second moments of area, section moduli
// and the related ratios (see [Calculator]).
//
// Row 0 of every grid is the top of the drawing, i.e. the row with the
// largest world y coordinate.
package section

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
)

var (
	// ErrEmptyGeometry is returned when a drawing has no vertices from
	// which a bounding box could be derived.
	ErrEmptyGeometry = errors.New("section: drawing contains no line or polyline vertices")

	// ErrEmptyRaster is returned when a grid has no filled pixel.
	ErrEmptyRaster = errors.New("section: grid contains no filled pixel")

	// ErrDegenerate is returned when a computation would divide by zero or
	// produce a grid without pixels.
	ErrDegenerate = errors.New("section: degenerate geometry")

	// ErrInvalidParameter is returned for a non-positive or non-finite
	// resolution or depth.
	ErrInvalidParameter = errors.New("section: invalid parameter")
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by this package and by the pipeline.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Levels used:
//   - [slog.LevelDebug]: per-stage progress, skipped entities, grid sizes
//   - [slog.LevelError]: a drawing failed and was skipped
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
