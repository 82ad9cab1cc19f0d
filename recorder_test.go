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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecorderReplay(t *testing.T) {
	r1 := &Recorder{}
	r1.SetTitle("a")
	r1.SetXLim(Limits{0, 1})
	if err := r1.SetYScale(ScaleLog); err != nil {
		t.Fatal(err)
	}
	r1.Grid(WhichBoth, GridX)
	if err := r1.Plot([]float64{1, 2}, []float64{3, 4}, &LineStyle{Dashes: []float64{2, 1}}); err != nil {
		t.Fatal(err)
	}
	r1.Legend()

	r2 := &Recorder{}
	if err := r1.ApplyTo(r2); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(r1.cmds, r2.cmds, cmp.AllowUnexported(recordedCmd{})); d != "" {
		t.Errorf("replay differs (-want +got):\n%s", d)
	}
}

func TestRecorderCopiesData(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}
	style := &LineStyle{Label: "data", Dashes: []float64{1, 1}}

	r := &Recorder{}
	if err := r.Plot(x, y, style); err != nil {
		t.Fatal(err)
	}
	x[0] = 100
	style.Label = "changed"
	style.Dashes[0] = 7

	args := r.cmds[0].args
	if got := args[0].([]float64)[0]; got != 1 {
		t.Errorf("recorded x[0] = %g, want 1", got)
	}
	got := args[2].(*LineStyle)
	if got.Label != "data" || got.Dashes[0] != 1 {
		t.Errorf("recorded style was modified: %+v", got)
	}
}

func TestRecorderPlotLengthMismatch(t *testing.T) {
	r := &Recorder{}
	err := r.Plot([]float64{1, 2}, []float64{1}, nil)
	if err == nil {
		t.Error("expected an error")
	}
	if r.Len() != 0 {
		t.Errorf("%d commands recorded", r.Len())
	}
}

func TestRecorderReset(t *testing.T) {
	r := &Recorder{}
	r.SetTitle("x")
	r.Legend()
	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len() = %d after Reset", r.Len())
	}
}

func TestOpString(t *testing.T) {
	if s := opGrid.String(); s != "Grid" {
		t.Errorf("opGrid.String() = %q", s)
	}
	if s := op(99).String(); s != "op(99)" {
		t.Errorf("op(99).String() = %q", s)
	}
}
