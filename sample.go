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
	"errors"
	"math"
)

// Linspace returns n evenly spaced values from a to b, inclusive.
// For n == 1 the result is [a], for n <= 0 the result is nil.
func Linspace(a, b float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	x := make([]float64, n)
	x[0] = a
	if n == 1 {
		return x
	}
	step := (b - a) / float64(n-1)
	for i := 1; i < n-1; i++ {
		x[i] = a + float64(i)*step
	}
	x[n-1] = b
	return x
}

var errGeomBounds = errors.New("axes: geometric sequence bounds must be non-zero and of the same sign")

// Geomspace returns n values from a to b, inclusive, which form a geometric
// sequence.  The bounds a and b must be non-zero and have the same sign.
// For n == 1 the result is [a], for n <= 0 the result is nil.
func Geomspace(a, b float64, n int) ([]float64, error) {
	if !sameSign(a, b) {
		return nil, errGeomBounds
	}
	if a < 0 {
		x, err := Geomspace(-a, -b, n)
		for i := range x {
			x[i] = -x[i]
		}
		return x, err
	}

	if n <= 0 {
		return nil, nil
	}
	x := make([]float64, n)
	x[0] = a
	if n == 1 {
		return x, nil
	}
	logA := math.Log(a)
	step := (math.Log(b) - logA) / float64(n-1)
	for i := 1; i < n-1; i++ {
		x[i] = math.Exp(logA + float64(i)*step)
	}
	x[n-1] = b
	return x, nil
}
