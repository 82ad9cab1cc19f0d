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
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"seehuhn.de/go/axes"
)

// Axes draws onto a gonum plot.
type Axes struct {
	p *plot.Plot

	xlim, ylim *axes.Limits
	xlog, ylog bool
	aspect     axes.Aspect
	grid       *gridPlotter

	entries   []legendEntry
	legendLen int // number of entries already added to the legend
	numLines  int
}

var _ axes.Axes = (*Axes)(nil)

type legendEntry struct {
	label  string
	thumbs []plot.Thumbnailer
}

// New allocates a new, empty plot.
func New() *Axes {
	p := plot.New()
	p.Legend.Top = true

	grid := &gridPlotter{}
	p.Add(grid) // added first, so that the grid is drawn below the data

	return &Axes{
		p:    p,
		grid: grid,
	}
}

// Underlying returns the gonum plot.  This can be used to change settings
// which are not covered by the [axes.Axes] interface.
func (a *Axes) Underlying() *plot.Plot {
	return a.p
}

// SetTitle sets the plot title.
func (a *Axes) SetTitle(title string) {
	a.p.Title.Text = title
}

// SetXLabel sets the x-axis label.
func (a *Axes) SetXLabel(label string) {
	a.p.X.Label.Text = label
}

// SetYLabel sets the y-axis label.
func (a *Axes) SetYLabel(label string) {
	a.p.Y.Label.Text = label
}

// SetXLim fixes the x-range of the plot.
//
// gonum plots widen the axis range whenever data is added, so the limits
// are stored and applied when the plot is rendered.
func (a *Axes) SetXLim(lim axes.Limits) {
	a.xlim = &lim
}

// SetYLim fixes the y-range of the plot.
func (a *Axes) SetYLim(lim axes.Limits) {
	a.ylim = &lim
}

// SetXScale sets the scale of the x-axis.
// Only [axes.ScaleLinear] and [axes.ScaleLog] are supported.
func (a *Axes) SetXScale(scale axes.Scale) error {
	isLog, err := setScale(&a.p.X, scale)
	if err != nil {
		return err
	}
	a.xlog = isLog
	return nil
}

// SetYScale sets the scale of the y-axis.
// Only [axes.ScaleLinear] and [axes.ScaleLog] are supported.
func (a *Axes) SetYScale(scale axes.Scale) error {
	isLog, err := setScale(&a.p.Y, scale)
	if err != nil {
		return err
	}
	a.ylog = isLog
	return nil
}

func setScale(ax *plot.Axis, scale axes.Scale) (bool, error) {
	switch scale {
	case axes.ScaleLinear:
		ax.Scale = plot.LinearScale{}
		ax.Tick.Marker = plot.DefaultTicks{}
		return false, nil
	case axes.ScaleLog:
		ax.Scale = plot.LogScale{}
		ax.Tick.Marker = plot.LogTicks{Prec: -1}
		return true, nil
	}
	return false, &axes.InvalidSettingError{
		Field:   "scale",
		Message: fmt.Sprintf("scale %q is not supported by gonum plots", string(scale)),
	}
}

// Legend adds all labelled lines plotted so far to the legend.
func (a *Axes) Legend() {
	for _, e := range a.entries[a.legendLen:] {
		a.p.Legend.Add(e.label, e.thumbs...)
	}
	a.legendLen = len(a.entries)
}

// SetAspect sets the aspect ratio used by [Axes.Save] and [Axes.WriterTo].
func (a *Axes) SetAspect(aspect axes.Aspect) {
	a.aspect = aspect
}

// Grid switches on grid lines.
func (a *Axes) Grid(which axes.Which, axis axes.GridAxis) {
	a.grid.which = which
	a.grid.axis = axis
}

// Plot adds a line through the points (x[i], y[i]) to the plot.
func (a *Axes) Plot(x, y []float64, style *axes.LineStyle) error {
	if len(x) != len(y) {
		return fmt.Errorf("gonumplot: x and y have different lengths (%d vs %d)",
			len(x), len(y))
	}
	if style == nil {
		style = &axes.LineStyle{}
	}

	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}

	col := style.Color
	if col == nil {
		col = plotutil.Color(a.numLines)
	}
	a.numLines++

	var thumbs []plot.Thumbnailer
	if !style.NoLine {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = col
		if style.Width > 0 {
			line.Width = vg.Points(style.Width)
		}
		for _, d := range style.Dashes {
			line.Dashes = append(line.Dashes, vg.Points(d))
		}
		a.p.Add(line)
		thumbs = append(thumbs, line)
	}
	if style.Marker {
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		scatter.GlyphStyle = draw.GlyphStyle{
			Color:  col,
			Radius: vg.Points(2.5),
			Shape:  draw.CircleGlyph{},
		}
		a.p.Add(scatter)
		thumbs = append(thumbs, scatter)
	}

	if style.Label != "" && len(thumbs) > 0 {
		a.entries = append(a.entries, legendEntry{style.Label, thumbs})
	}
	return nil
}

var errLogRange = errors.New("gonumplot: log scale requires a positive data range")

// finish applies the stored axis limits.
func (a *Axes) finish() error {
	if a.xlim != nil {
		a.p.X.Min, a.p.X.Max = a.xlim.Min, a.xlim.Max
	}
	if a.ylim != nil {
		a.p.Y.Min, a.p.Y.Max = a.ylim.Min, a.ylim.Max
	}
	if a.xlog && !isPositiveRange(a.p.X.Min, a.p.X.Max) {
		return errLogRange
	}
	if a.ylog && !isPositiveRange(a.p.Y.Min, a.p.Y.Max) {
		return errLogRange
	}
	return nil
}

func isPositiveRange(a, b float64) bool {
	return a > 0 && b > 0 && !math.IsInf(a, 0) && !math.IsInf(b, 0)
}

// height returns the canvas height which gives the data area the requested
// aspect ratio.  Space taken by the axes and labels is ignored.
func (a *Axes) height(w, h vg.Length) vg.Length {
	if a.aspect == axes.AspectAuto {
		return h
	}
	dx := span(a.p.X.Min, a.p.X.Max, a.xlog)
	dy := span(a.p.Y.Min, a.p.Y.Max, a.ylog)
	ratio := float64(a.aspect) * dy / dx
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		return h
	}
	return vg.Length(float64(w) * ratio)
}

func span(min, max float64, isLog bool) float64 {
	if isLog {
		return math.Abs(math.Log10(max) - math.Log10(min))
	}
	return math.Abs(max - min)
}

// Draw draws the plot onto the given canvas.
// The aspect ratio is ignored, since the canvas size is given.
func (a *Axes) Draw(c draw.Canvas) error {
	if err := a.finish(); err != nil {
		return err
	}
	a.p.Draw(c)
	return nil
}

// Save writes the plot to a file.  The format is determined by the file name
// extension (e.g. ".pdf", ".png", ".svg").  If a fixed aspect ratio is set,
// h is replaced by the height which gives the requested ratio.
func (a *Axes) Save(w, h vg.Length, file string) error {
	if err := a.finish(); err != nil {
		return err
	}
	return a.p.Save(w, a.height(w, h), file)
}

// WriterTo returns an io.WriterTo which writes the plot in the given format
// (e.g. "pdf", "png", "svg").  The height is adjusted as for [Axes.Save].
func (a *Axes) WriterTo(w, h vg.Length, format string) (io.WriterTo, error) {
	if err := a.finish(); err != nil {
		return nil, err
	}
	return a.p.WriterTo(w, a.height(w, h), format)
}
