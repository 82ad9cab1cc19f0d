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
	"cmp"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/vec"
)

// DefaultStart places the anchor of an approximating line halfway between
// the extreme points.
const DefaultStart = 0.5

// Line is the straight line y = Slope*(x - Anchor.X) + Anchor.Y.
type Line struct {
	Slope float64

	// Anchor is a point on the line.
	Anchor vec.Vec2
}

// At evaluates the line at x.
func (l *Line) At(x float64) float64 {
	return l.Slope*(x-l.Anchor.X) + l.Anchor.Y
}

// Intercept returns the value of the line at x = 0.
func (l *Line) Intercept() float64 {
	return -l.Slope*l.Anchor.X + l.Anchor.Y
}

// Func returns the line as a function of x.
func (l *Line) Func() func(float64) float64 {
	return l.At
}

// Approx approximates the data points (x[i], y[i]) inside the closed
// x-range rng by a straight line.
//
// The line passes through the points with the smallest and largest
// x-coordinate inside rng.  Among points with equal x-coordinates, the one
// listed first in the input is taken as the left end and the one listed last
// as the right end.  The anchor of the line is placed a fraction start of
// the way from the left to the right end; see [DefaultStart].
//
// An error is returned if x and y have different lengths, if rng is not a
// valid range, if fewer than two points lie inside rng, or if the two end
// points have the same x-coordinate.
func Approx(x, y []float64, rng Interval, start float64) (*Line, error) {
	if len(x) != len(y) {
		return nil, newInputError("data", "x and y have different lengths (%d vs %d)",
			len(x), len(y))
	}
	if !isRange(rng.Min, rng.Max) {
		return nil, newInputError("range", "[%g, %g] is not a valid range",
			rng.Min, rng.Max)
	}

	coords := make([]vec.Vec2, len(x))
	for i := range x {
		coords[i] = vec.Vec2{X: x[i], Y: y[i]}
	}
	slices.SortStableFunc(coords, func(a, b vec.Vec2) int {
		return cmp.Compare(a.X, b.X)
	})

	filtered := coords[:0]
	for _, c := range coords {
		if rng.Contains(c.X) {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) < 2 {
		return nil, &TooFewPointsError{Range: rng, Found: len(filtered)}
	}

	first := filtered[0]
	last := filtered[len(filtered)-1]
	dx := last.X - first.X
	if dx == 0 {
		return nil, ErrDegenerate
	}

	return &Line{
		Slope:  (last.Y - first.Y) / dx,
		Anchor: lerp(first, last, start),
	}, nil
}

// ApproxFormat is like [Approx], but returns the line formatted using the
// template tmpl.  See [Line.Format] for the template syntax.
func ApproxFormat(x, y []float64, rng Interval, start float64, tmpl string) (string, error) {
	l, err := Approx(x, y, rng, start)
	if err != nil {
		return "", err
	}
	return l.Format(tmpl)
}
