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

package main

import (
	"seehuhn.de/go/axes"
	"seehuhn.de/go/axes/gonumplot"
	"seehuhn.de/go/axes/linear"
)

// job describes one fit.
type job struct {
	settings *axes.Settings
	rng      linear.Interval
	start    float64
	template string
}

type result struct {
	axes  *gonumplot.Axes
	line  *linear.Line
	label string
	used  int
}

// run fits a line to the data and draws both into a new plot.
func (j *job) run(x, y []float64) (*result, error) {
	line, err := linear.Approx(x, y, j.rng, j.start)
	if err != nil {
		return nil, err
	}
	label, err := line.Format(j.template)
	if err != nil {
		return nil, err
	}

	a := gonumplot.New()
	err = a.Plot(x, y, &axes.LineStyle{
		Label:  "data",
		Marker: true,
		NoLine: true,
	})
	if err != nil {
		return nil, err
	}

	lo, hi := dataRange(x, j.rng.Min, j.rng.Max)
	err = j.settings.PlotFunc(a, line.Func(), &axes.FuncOptions{
		XLim:  &axes.Limits{Min: lo, Max: hi},
		Style: &axes.LineStyle{Label: label, Width: 1.5},
	})
	if err != nil {
		return nil, err
	}

	err = j.settings.Apply(a)
	if err != nil {
		return nil, err
	}

	used := 0
	for _, xi := range x {
		if j.rng.Contains(xi) {
			used++
		}
	}

	return &result{
		axes:  a,
		line:  line,
		label: label,
		used:  used,
	}, nil
}
