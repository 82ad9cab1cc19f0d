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

import (
	"fmt"
	"slices"
)

// A Recorder allows to record axes commands.
// The recorded commands can later be applied to a different [Axes],
// using the [Recorder.ApplyTo] method.
//
// Recorder implements the [Axes] interface.
type Recorder struct {
	cmds []*recordedCmd
}

var _ Axes = (*Recorder)(nil)

type recordedCmd struct {
	op   op
	args []any
}

type op int

const (
	opSetTitle op = iota
	opSetXLabel
	opSetYLabel
	opSetXLim
	opSetYLim
	opSetXScale
	opSetYScale
	opLegend
	opSetAspect
	opGrid
	opPlot
)

var opNames = []string{
	opSetTitle:  "SetTitle",
	opSetXLabel: "SetXLabel",
	opSetYLabel: "SetYLabel",
	opSetXLim:   "SetXLim",
	opSetYLim:   "SetYLim",
	opSetXScale: "SetXScale",
	opSetYScale: "SetYScale",
	opLegend:    "Legend",
	opSetAspect: "SetAspect",
	opGrid:      "Grid",
	opPlot:      "Plot",
}

func (o op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.cmds)
}

// Methods returns the method names of the recorded commands, in order.
func (r *Recorder) Methods() []string {
	res := make([]string, len(r.cmds))
	for i, cmd := range r.cmds {
		res[i] = cmd.op.String()
	}
	return res
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.cmds = r.cmds[:0]
}

// ApplyTo applies all recorded commands to the given axes.
// Replay stops at the first error.
func (r *Recorder) ApplyTo(a Axes) error {
	for _, cmd := range r.cmds {
		switch cmd.op {
		case opSetTitle:
			a.SetTitle(cmd.args[0].(string))
		case opSetXLabel:
			a.SetXLabel(cmd.args[0].(string))
		case opSetYLabel:
			a.SetYLabel(cmd.args[0].(string))
		case opSetXLim:
			a.SetXLim(cmd.args[0].(Limits))
		case opSetYLim:
			a.SetYLim(cmd.args[0].(Limits))
		case opSetXScale:
			if err := a.SetXScale(cmd.args[0].(Scale)); err != nil {
				return err
			}
		case opSetYScale:
			if err := a.SetYScale(cmd.args[0].(Scale)); err != nil {
				return err
			}
		case opLegend:
			a.Legend()
		case opSetAspect:
			a.SetAspect(cmd.args[0].(Aspect))
		case opGrid:
			a.Grid(cmd.args[0].(Which), cmd.args[1].(GridAxis))
		case opPlot:
			err := a.Plot(cmd.args[0].([]float64), cmd.args[1].([]float64),
				cmd.args[2].(*LineStyle))
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Recorder) record(o op, args ...any) {
	r.cmds = append(r.cmds, &recordedCmd{o, args})
}

// SetTitle records a title change.
func (r *Recorder) SetTitle(title string) {
	r.record(opSetTitle, title)
}

// SetXLabel records an x-axis label change.
func (r *Recorder) SetXLabel(label string) {
	r.record(opSetXLabel, label)
}

// SetYLabel records a y-axis label change.
func (r *Recorder) SetYLabel(label string) {
	r.record(opSetYLabel, label)
}

// SetXLim records new x-axis limits.
func (r *Recorder) SetXLim(lim Limits) {
	r.record(opSetXLim, lim)
}

// SetYLim records new y-axis limits.
func (r *Recorder) SetYLim(lim Limits) {
	r.record(opSetYLim, lim)
}

// SetXScale records a new x-axis scale.  Unknown scales are rejected.
func (r *Recorder) SetXScale(scale Scale) error {
	if err := scale.validate("xscale"); err != nil {
		return err
	}
	r.record(opSetXScale, scale)
	return nil
}

// SetYScale records a new y-axis scale.  Unknown scales are rejected.
func (r *Recorder) SetYScale(scale Scale) error {
	if err := scale.validate("yscale"); err != nil {
		return err
	}
	r.record(opSetYScale, scale)
	return nil
}

// Legend records a legend request.
func (r *Recorder) Legend() {
	r.record(opLegend)
}

// SetAspect records a new aspect ratio.
func (r *Recorder) SetAspect(aspect Aspect) {
	r.record(opSetAspect, aspect)
}

// Grid records a grid request.
func (r *Recorder) Grid(which Which, axis GridAxis) {
	r.record(opGrid, which, axis)
}

// Plot records a line.  The data and the style are copied.
func (r *Recorder) Plot(x, y []float64, style *LineStyle) error {
	if len(x) != len(y) {
		return newInvalidSettingError("plot data",
			"x and y have different lengths (%d vs %d)", len(x), len(y))
	}
	if style != nil {
		s := *style
		s.Dashes = slices.Clone(style.Dashes)
		style = &s
	}
	r.record(opPlot, slices.Clone(x), slices.Clone(y), style)
	return nil
}
