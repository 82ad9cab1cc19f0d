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

// Package gonumplot implements the [axes.Axes] interface on top of
// gonum.org/v1/plot.
//
// Typical use:
//
//	s := axes.NewSettings()
//	s.Title = "Decay"
//	s.XLim = &axes.Limits{Min: 0, Max: 5}
//
//	a := gonumplot.New()
//	err := s.PlotFunc(a, func(x float64) float64 { return math.Exp(-x) }, nil)
//	if err != nil {
//		// handle error
//	}
//	err = s.Apply(a)
//	if err != nil {
//		// handle error
//	}
//	err = a.Save(12*vg.Centimeter, 8*vg.Centimeter, "decay.pdf")
//
// The output format is chosen by the file name extension, as for
// [plot.Plot.Save].
package gonumplot
