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
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestParseSettings(t *testing.T) {
	data := []byte(`
title: Growth
xlabel: time [s]
ylabel: size
xlim: [1, 1000]
ylim: [0, 10]
xscale: log
legend: false
aspect: equal
grid: [minor, y]
`)
	got, err := ParseSettings(data)
	if err != nil {
		t.Fatal(err)
	}
	want := &Settings{
		Title:  "Growth",
		XLabel: "time [s]",
		YLabel: "size",
		XLim:   &Limits{1, 1000},
		YLim:   &Limits{0, 10},
		XScale: ScaleLog,
		YScale: ScaleLinear,
		Legend: false,
		Aspect: AspectEqual,
		Grid:   Grid{Which: WhichMinor, Axis: GridY},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected settings (-want +got):\n%s", d)
	}
}

func TestParseSettingsEmpty(t *testing.T) {
	got, err := ParseSettings(nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(NewSettings(), got); d != "" {
		t.Errorf("unexpected settings (-want +got):\n%s", d)
	}
}

func TestParseSettingsGrid(t *testing.T) {
	type testCase struct {
		in   string
		want Grid
	}
	testCases := []testCase{
		{"grid: both", Grid{Which: WhichMajor, Axis: GridBoth}},
		{"grid: true", Grid{Which: WhichMajor, Axis: GridBoth}},
		{"grid: false", Grid{Which: WhichMajor}},
		{"grid: [minor, x]", Grid{Which: WhichMinor, Axis: GridX}},
		{"grid: {axis: y}", Grid{Which: WhichMajor, Axis: GridY}},
		{"grid: {which: both, axis: both}", Grid{Which: WhichBoth, Axis: GridBoth}},
		{"grid: null", Grid{Which: WhichMajor}},
	}
	for _, tc := range testCases {
		s, err := ParseSettings([]byte(tc.in))
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if s.Grid != tc.want {
			t.Errorf("%q: got %v, want %v", tc.in, s.Grid, tc.want)
		}
	}
}

func TestParseSettingsAspect(t *testing.T) {
	s, err := ParseSettings([]byte("aspect: 2.5"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Aspect != 2.5 {
		t.Errorf("aspect = %s, want 2.5", s.Aspect)
	}
}

func TestParseSettingsErrors(t *testing.T) {
	bad := []string{
		"xlim: [1, 2, 3]",
		"xlim: 5",
		"xscale: cubic",
		"aspect: tall",
		"aspect: [1, 2]",
		"grid: [major]",
		"grid: z",
		"colour: red",
		"title: [",
	}
	for _, in := range bad {
		if _, err := ParseSettings([]byte(in)); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plot.yaml")
	err := os.WriteFile(path, []byte("title: from file\nxlim: [0, 1]\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Title != "from file" || s.XLim == nil || *s.XLim != (Limits{0, 1}) {
		t.Errorf("unexpected settings %+v", s)
	}

	_, err = LoadSettings(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestSettingsYAMLRoundTrip(t *testing.T) {
	in := &settingsFile{
		Title: "T",
		XLim:  &Limits{-1, 1},
	}
	aspect := Aspect(3)
	in.Aspect = &aspect
	grid := Grid{Which: WhichMinor, Axis: GridX}
	in.Grid = &grid

	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		t.Fatal(err)
	}
	if s.Title != "T" || *s.XLim != (Limits{-1, 1}) || s.Aspect != 3 || s.Grid != grid {
		t.Errorf("unexpected settings %+v", s)
	}
}
