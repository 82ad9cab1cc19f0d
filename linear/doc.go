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

// Package linear implements linear interpolation and approximation of
// scattered data points.
//
// [Sim] solves the equation of the straight line through two points for x.
// [Approx] fits a straight line through the extreme points of the data which
// fall into a given x-range:
//
//	line, err := linear.Approx(x, y, linear.Interval{Min: 0, Max: 3}, 0.5)
//	if err != nil {
//		// handle error
//	}
//	fmt.Println(line.Slope, line.Intercept())
//	label, err := line.Format("y = {slope:.2f} x + {slice:.2f}")
package linear
