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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLinspace(t *testing.T) {
	type testCase struct {
		a, b float64
		n    int
		want []float64
	}
	testCases := []testCase{
		{0, 1, 5, []float64{0, 0.25, 0.5, 0.75, 1}},
		{1, 0, 3, []float64{1, 0.5, 0}},
		{-2, 2, 2, []float64{-2, 2}},
		{3, 7, 1, []float64{3}},
		{3, 7, 0, nil},
		{3, 7, -1, nil},
	}
	for i, tc := range testCases {
		got := Linspace(tc.a, tc.b, tc.n)
		if d := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("%d: Linspace(%g, %g, %d) (-want +got):\n%s", i, tc.a, tc.b, tc.n, d)
		}
	}
}

func TestGeomspace(t *testing.T) {
	type testCase struct {
		a, b float64
		n    int
		want []float64
	}
	testCases := []testCase{
		{1, 1000, 4, []float64{1, 10, 100, 1000}},
		{1000, 1, 4, []float64{1000, 100, 10, 1}},
		{-1, -100, 3, []float64{-1, -10, -100}},
		{2, 8, 3, []float64{2, 4, 8}},
		{5, 50, 1, []float64{5}},
	}
	for i, tc := range testCases {
		got, err := Geomspace(tc.a, tc.b, tc.n)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(tc.want, got, cmpopts.EquateApprox(1e-12, 0)); d != "" {
			t.Errorf("%d: Geomspace(%g, %g, %d) (-want +got):\n%s", i, tc.a, tc.b, tc.n, d)
		}
	}
}

func TestGeomspaceEndpoints(t *testing.T) {
	x, err := Geomspace(0.1, 7.3, 200)
	if err != nil {
		t.Fatal(err)
	}
	if x[0] != 0.1 || x[199] != 7.3 {
		t.Errorf("endpoints are %g and %g", x[0], x[199])
	}
	for i := 1; i < len(x); i++ {
		ratio := x[i] / x[i-1]
		if math.Abs(ratio-x[1]/x[0]) > 1e-9 {
			t.Fatalf("ratio %d is %g, want %g", i, ratio, x[1]/x[0])
		}
	}
}

func TestGeomspaceErrors(t *testing.T) {
	bounds := [][2]float64{{0, 1}, {1, 0}, {-1, 1}, {1, -1}, {0, 0}}
	for _, b := range bounds {
		_, err := Geomspace(b[0], b[1], 10)
		if err == nil {
			t.Errorf("Geomspace(%g, %g): expected an error", b[0], b[1])
		}
	}
}
