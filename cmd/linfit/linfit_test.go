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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/axes"
	"seehuhn.de/go/axes/linear"
)

func TestRun(t *testing.T) {
	s := axes.NewSettings()
	s.Title = "fit"
	j := &job{
		settings: s,
		rng:      linear.Interval{Min: 0, Max: 10},
		start:    linear.DefaultStart,
		template: "{slope:.1f} {slice:.1f}",
	}

	x := []float64{-1, 0, 1, 2, 3, 11}
	y := []float64{50, 1, 3, 5, 7, -50}
	res, err := j.run(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if res.label != "2.0 1.0" {
		t.Errorf("label = %q", res.label)
	}
	if res.used != 4 {
		t.Errorf("%d points used, want 4", res.used)
	}
	if got := res.axes.Underlying().Title.Text; got != "fit" {
		t.Errorf("title = %q", got)
	}
}

func TestRunTooFewPoints(t *testing.T) {
	j := &job{
		settings: axes.NewSettings(),
		rng:      linear.Interval{Min: math.Inf(-1), Max: math.Inf(1)},
		start:    linear.DefaultStart,
		template: "{slope}",
	}
	_, err := j.run([]float64{1}, []float64{2})
	if !errors.Is(err, &linear.TooFewPointsError{}) {
		t.Errorf("expected TooFewPointsError, got %v", err)
	}
}

func TestRunBadTemplate(t *testing.T) {
	j := &job{
		settings: axes.NewSettings(),
		rng:      linear.Interval{Min: 0, Max: 1},
		template: "{gradient}",
	}
	_, err := j.run([]float64{0, 1}, []float64{0, 1})
	if !errors.Is(err, &linear.InputError{}) {
		t.Errorf("expected InputError, got %v", err)
	}
}
