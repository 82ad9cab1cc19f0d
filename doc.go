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

// Package axes collects common axis configuration in one place and applies it
// to a plot.
//
// A [Settings] value holds the title, axis labels, axis limits, axis scales,
// legend, aspect ratio and grid of a plot.  [Settings.Apply] transfers the
// configured values onto any plotting backend which implements the [Axes]
// interface.  [Settings.PlotFunc] samples a function over the configured
// x-range and draws it.
//
// The package does not draw anything itself.  The sub-package
// seehuhn.de/go/axes/gonumplot implements [Axes] on top of
// gonum.org/v1/plot, and [Recorder] records calls so that they can be
// inspected or replayed later.
//
// Settings can be read from YAML files:
//
//	title: Growth
//	xlabel: time [s]
//	xlim: [1, 1000]
//	xscale: log
//	grid: [minor, y]
//
// See [LoadSettings] for details.
//
// The sub-package seehuhn.de/go/axes/linear provides numeric helpers for
// linear interpolation and approximation of scattered data points.
package axes
