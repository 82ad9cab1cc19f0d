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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// settingsFile is the YAML representation of Settings.
// Pointer fields distinguish missing keys from zero values.
type settingsFile struct {
	Title  string  `yaml:"title"`
	XLabel string  `yaml:"xlabel"`
	YLabel string  `yaml:"ylabel"`
	XLim   *Limits `yaml:"xlim"`
	YLim   *Limits `yaml:"ylim"`
	XScale *Scale  `yaml:"xscale"`
	YScale *Scale  `yaml:"yscale"`
	Legend *bool   `yaml:"legend"`
	Aspect *Aspect `yaml:"aspect"`
	Grid   *Grid   `yaml:"grid"`
}

// LoadSettings reads plot settings from a YAML file.
//
// Keys which are missing from the file keep the values from [NewSettings].
// The recognized keys are title, xlabel, ylabel, xlim, ylim, xscale,
// yscale, legend, aspect and grid.  Limits are given as two-element lists,
// the aspect as "auto", "equal" or a number, and the grid in any of the
// forms understood by [ParseGrid].  Unknown keys are an error.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("axes: load settings: %w", err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		return nil, fmt.Errorf("axes: load settings %q: %w", path, err)
	}
	return s, nil
}

// ParseSettings decodes plot settings from YAML data.
// See [LoadSettings] for the format.
func ParseSettings(data []byte) (*Settings, error) {
	s := NewSettings()

	var file settingsFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(&file)
	if errors.Is(err, io.EOF) {
		return s, nil
	} else if err != nil {
		return nil, err
	}

	s.Title = file.Title
	s.XLabel = file.XLabel
	s.YLabel = file.YLabel
	s.XLim = file.XLim
	s.YLim = file.YLim
	if file.XScale != nil {
		s.XScale = *file.XScale
	}
	if file.YScale != nil {
		s.YScale = *file.YScale
	}
	if file.Legend != nil {
		s.Legend = *file.Legend
	}
	if file.Aspect != nil {
		s.Aspect = *file.Aspect
	}
	if file.Grid != nil {
		s.Grid = *file.Grid
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
// Limits are written as [min, max].
func (l *Limits) UnmarshalYAML(node *yaml.Node) error {
	var pair []float64
	if err := node.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return newInvalidSettingError("limits", "expected 2 values, got %d (line %d)",
			len(pair), node.Line)
	}
	l.Min, l.Max = pair[0], pair[1]
	return nil
}

// MarshalYAML implements the [yaml.Marshaler] interface.
func (l Limits) MarshalYAML() (any, error) {
	return []float64{l.Min, l.Max}, nil
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (a *Aspect) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return newInvalidSettingError("aspect", "expected a scalar (line %d)", node.Line)
	}
	x, err := ParseAspect(node.Value)
	if err != nil {
		return err
	}
	*a = x
	return nil
}

// MarshalYAML implements the [yaml.Marshaler] interface.
func (a Aspect) MarshalYAML() (any, error) {
	switch a {
	case AspectAuto, AspectEqual:
		return a.String(), nil
	}
	return float64(a), nil
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
// All forms understood by [ParseGrid] can be used.
func (g *Grid) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	grid, err := ParseGrid(v)
	if err != nil {
		return err
	}
	*g = grid
	return nil
}

// MarshalYAML implements the [yaml.Marshaler] interface.
func (g Grid) MarshalYAML() (any, error) {
	if !g.Enabled() {
		return nil, nil
	}
	return map[string]string{"which": string(g.Which), "axis": string(g.Axis)}, nil
}
