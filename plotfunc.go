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

// DefaultSamples is the number of function evaluations used by
// [Settings.PlotFunc] if no other value is given.
const DefaultSamples = 200

// FuncOptions can be used to control [Settings.PlotFunc].
type FuncOptions struct {
	// XLim (optional) is the x-range to sample.  If this is nil,
	// Settings.XLim is used.
	XLim *Limits

	// Samples is the number of points where the function is evaluated.
	// If this is zero, DefaultSamples is used.
	Samples int

	// Style is passed on to Axes.Plot.
	Style *LineStyle
}

// PlotFunc evaluates f over an x-range and plots the result onto a.
//
// The range is taken from opt.XLim if given, otherwise from s.XLim.  If
// neither is set, [ErrNoLimits] is returned.  The sample points are
// geometrically spaced if s.XScale is [ScaleLog], and evenly spaced
// otherwise.
func (s *Settings) PlotFunc(a Axes, f func(float64) float64, opt *FuncOptions) error {
	if opt == nil {
		opt = &FuncOptions{}
	}

	lim := opt.XLim
	if lim == nil {
		lim = s.XLim
	}
	if lim == nil {
		return ErrNoLimits
	}
	if err := lim.validate("xlim"); err != nil {
		return err
	}

	n := opt.Samples
	if n == 0 {
		n = DefaultSamples
	} else if n < 0 {
		return newInvalidSettingError("samples", "must be positive, got %d", n)
	}

	var x []float64
	if s.XScale == ScaleLog {
		var err error
		x, err = Geomspace(lim.Min, lim.Max, n)
		if err != nil {
			return err
		}
	} else {
		x = Linspace(lim.Min, lim.Max, n)
	}

	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = f(xi)
	}
	return a.Plot(x, y, opt.Style)
}
