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

package linear

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Sim returns the x-coordinate of the point with y-coordinate y on the
// straight line through p1 and p2.  Values of y outside the segment
// extrapolate the line.
//
// If p1.Y == p2.Y, the line is horizontal and [ErrHorizontal] is returned.
func Sim(p1, p2 vec.Vec2, y float64) (float64, error) {
	dy := p2.Y - p1.Y
	if dy == 0 {
		return math.NaN(), ErrHorizontal
	}
	return (-p1.X*(y-p2.Y) + p2.X*(y-p1.Y)) / dy, nil
}

// Interval is a closed range [Min, Max] of x-values.
type Interval struct {
	Min, Max float64
}

// Contains reports whether x lies in the closed interval.
func (r Interval) Contains(x float64) bool {
	return x >= r.Min && x <= r.Max
}

// isRange checks if the given values x and y are not NaN and satisfy x <= y.
// Infinite bounds are allowed.
func isRange(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsNaN(y) && x <= y
}

// lerp returns the point a fraction t of the way from a to b.
func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return vec.Vec2{
		X: t*b.X + (1-t)*a.X,
		Y: t*b.Y + (1-t)*a.Y,
	}
}
