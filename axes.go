// seehuhn.de/go/axes - convenience helpers for configuring plot axes
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

package axes

import "image/color"

// Axes is the drawing surface of a plotting backend.
type Axes interface {
	SetTitle(title string)
	SetXLabel(label string)
	SetYLabel(label string)
	SetXLim(lim Limits)
	SetYLim(lim Limits)

	// SetXScale and SetYScale return an error if the backend does not
	// support the given scale.
	SetXScale(scale Scale) error
	SetYScale(scale Scale) error

	// Legend shows a legend for the labelled lines plotted so far.
	Legend()

	SetAspect(aspect Aspect)

	// Grid switches on the grid lines for the given ticks and axes.
	Grid(which Which, axis GridAxis)

	// Plot draws the line through the points (x[i], y[i]).
	// The slices must have the same length.  If style is nil, the backend
	// defaults are used.
	Plot(x, y []float64, style *LineStyle) error
}

// LineStyle describes how a line is drawn by [Axes.Plot].
type LineStyle struct {
	// Label is the legend entry of the line.
	Label string

	// Color is the line colour.  If this is nil, the backend chooses.
	Color color.Color

	// Width is the line width in PDF points (1/72 inch).  If this is zero,
	// the backend default is used.
	Width float64

	// Dashes (optional) is the dash pattern, in PDF points.
	Dashes []float64

	// Marker adds a marker at each data point.
	Marker bool

	// NoLine suppresses the line between the points.  Use this together
	// with Marker to obtain a scatter plot.
	NoLine bool
}

// Apply transfers the configured settings onto a.
//
// Settings with their zero value are skipped, except for the aspect ratio
// which is always applied.  The grid is applied only if an axis is selected.
func (s *Settings) Apply(a Axes) error {
	if s.Title != "" {
		a.SetTitle(s.Title)
	}
	if s.XLabel != "" {
		a.SetXLabel(s.XLabel)
	}
	if s.YLabel != "" {
		a.SetYLabel(s.YLabel)
	}
	if s.XLim != nil {
		a.SetXLim(*s.XLim)
	}
	if s.YLim != nil {
		a.SetYLim(*s.YLim)
	}
	if s.XScale != "" {
		if err := a.SetXScale(s.XScale); err != nil {
			return err
		}
	}
	if s.YScale != "" {
		if err := a.SetYScale(s.YScale); err != nil {
			return err
		}
	}
	if s.Legend {
		a.Legend()
	}
	a.SetAspect(s.Aspect)
	if s.Grid.Enabled() {
		which := s.Grid.Which
		if which == "" {
			which = WhichMajor
		}
		a.Grid(which, s.Grid.Axis)
	}
	return nil
}
