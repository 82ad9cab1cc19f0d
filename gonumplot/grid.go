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

package gonumplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"seehuhn.de/go/axes"
)

var (
	majorGridStyle = draw.LineStyle{
		Color: color.Gray{Y: 176},
		Width: vg.Points(0.5),
	}
	minorGridStyle = draw.LineStyle{
		Color:  color.Gray{Y: 208},
		Width:  vg.Points(0.25),
		Dashes: []vg.Length{vg.Points(1), vg.Points(1)},
	}
)

// gridPlotter draws grid lines at the tick marks of the axes.
// Unlike plotter.Grid, it can also draw lines at the minor ticks.
type gridPlotter struct {
	which axes.Which
	axis  axes.GridAxis
}

// Plot implements the [plot.Plotter] interface.
func (g *gridPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	if g.axis == axes.GridNone {
		return
	}
	trX, trY := plt.Transforms(&c)

	if g.axis == axes.GridX || g.axis == axes.GridBoth {
		for _, tk := range plt.X.Tick.Marker.Ticks(plt.X.Min, plt.X.Max) {
			sty, ok := g.style(tk)
			if !ok {
				continue
			}
			x := trX(tk.Value)
			c.StrokeLine2(sty, x, c.Min.Y, x, c.Max.Y)
		}
	}
	if g.axis == axes.GridY || g.axis == axes.GridBoth {
		for _, tk := range plt.Y.Tick.Marker.Ticks(plt.Y.Min, plt.Y.Max) {
			sty, ok := g.style(tk)
			if !ok {
				continue
			}
			y := trY(tk.Value)
			c.StrokeLine2(sty, c.Min.X, y, c.Max.X, y)
		}
	}
}

// style returns the line style for a grid line at the given tick, and false
// if no line is drawn there.
func (g *gridPlotter) style(tk plot.Tick) (draw.LineStyle, bool) {
	minor := tk.IsMinor()
	switch g.which {
	case axes.WhichMinor:
		return minorGridStyle, minor
	case axes.WhichBoth:
		if minor {
			return minorGridStyle, true
		}
		return majorGridStyle, true
	default:
		return majorGridStyle, !minor
	}
}
