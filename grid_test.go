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
	"testing"
)

func TestParseGrid(t *testing.T) {
	type testCase struct {
		name string
		in   any
		want Grid
	}
	testCases := []testCase{
		{"nil", nil, Grid{Which: WhichMajor}},
		{"scalar", "both", Grid{Which: WhichMajor, Axis: GridBoth}},
		{"scalar x", "x", Grid{Which: WhichMajor, Axis: GridX}},
		{"empty string", "", Grid{Which: WhichMajor}},
		{"axis value", GridY, Grid{Which: WhichMajor, Axis: GridY}},
		{"true", true, Grid{Which: WhichMajor, Axis: GridBoth}},
		{"false", false, Grid{Which: WhichMajor}},
		{"array", [2]string{"minor", "y"}, Grid{Which: WhichMinor, Axis: GridY}},
		{"slice", []string{"minor", "y"}, Grid{Which: WhichMinor, Axis: GridY}},
		{"any slice", []any{"both", "x"}, Grid{Which: WhichBoth, Axis: GridX}},
		{"map", map[string]string{"which": "minor", "axis": "x"},
			Grid{Which: WhichMinor, Axis: GridX}},
		{"map axis only", map[string]string{"axis": "y"},
			Grid{Which: WhichMajor, Axis: GridY}},
		{"map which only", map[string]string{"which": "minor"},
			Grid{Which: WhichMinor}},
		{"map extra key", map[string]string{"axis": "y", "color": "red"},
			Grid{Which: WhichMajor, Axis: GridY}},
		{"any map", map[string]any{"which": "both", "axis": "both"},
			Grid{Which: WhichBoth, Axis: GridBoth}},
		{"any map nil axis", map[string]any{"which": "minor", "axis": nil},
			Grid{Which: WhichMinor}},
		{"grid", Grid{Which: WhichMinor, Axis: GridX}, Grid{Which: WhichMinor, Axis: GridX}},
		{"grid without which", Grid{Axis: GridX}, Grid{Which: WhichMajor, Axis: GridX}},
		{"nil grid pointer", (*Grid)(nil), Grid{Which: WhichMajor}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseGrid(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("ParseGrid(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseGridErrors(t *testing.T) {
	bad := []any{
		[]string{"major"},
		[]string{"major", "x", "y"},
		[]any{"major", 1},
		"z",
		[2]string{"often", "x"},
		map[string]any{"which": 7},
		map[string]any{"axis": true},
		3.5,
	}
	for _, in := range bad {
		_, err := ParseGrid(in)
		if err == nil {
			t.Errorf("ParseGrid(%v): expected an error", in)
			continue
		}
		if !errors.Is(err, &InvalidSettingError{}) {
			t.Errorf("ParseGrid(%v): unexpected error type %T", in, err)
		}
	}
}

func TestGridEnabled(t *testing.T) {
	if (Grid{Which: WhichMajor}).Enabled() {
		t.Error("grid without axis should be disabled")
	}
	if !(Grid{Axis: GridX}).Enabled() {
		t.Error("grid with axis should be enabled")
	}
}
