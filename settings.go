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
	"strconv"
)

// Settings describes the display configuration of a plot.
//
// Fields with their zero value are "not configured" and are left alone by
// [Settings.Apply].  Use [NewSettings] to obtain the usual defaults.
type Settings struct {
	Title  string
	XLabel string
	YLabel string

	// XLim and YLim (optional) fix the visible data range of the axes.
	XLim *Limits
	YLim *Limits

	// XScale and YScale select the axis scales.  The empty string leaves
	// the backend default in place.
	XScale Scale
	YScale Scale

	// Legend requests a legend for all labelled lines.
	Legend bool

	// Aspect is the ratio between one y-unit and one x-unit on the page.
	// It is always applied, so the zero value [AspectAuto] resets any
	// fixed aspect of the backend.
	Aspect Aspect

	// Grid selects the grid lines to draw.  If Grid.Axis is empty, no grid
	// is requested.
	Grid Grid
}

// NewSettings returns settings with linear scales, a legend, automatic
// aspect ratio and no grid.
func NewSettings() *Settings {
	return &Settings{
		XScale: ScaleLinear,
		YScale: ScaleLinear,
		Legend: true,
		Aspect: AspectAuto,
		Grid:   Grid{Which: WhichMajor},
	}
}

// Validate checks that all configured values can be applied to a plot.
func (s *Settings) Validate() error {
	if s.XLim != nil {
		if err := s.XLim.validate("xlim"); err != nil {
			return err
		}
	}
	if s.YLim != nil {
		if err := s.YLim.validate("ylim"); err != nil {
			return err
		}
	}
	if err := s.XScale.validate("xscale"); err != nil {
		return err
	}
	if err := s.YScale.validate("yscale"); err != nil {
		return err
	}
	if err := s.Aspect.validate(); err != nil {
		return err
	}
	return s.Grid.Validate()
}

// Limits is a range of data values along one axis.
type Limits struct {
	Min, Max float64
}

func (l *Limits) validate(field string) error {
	if !isPair(l.Min, l.Max) {
		return newInvalidSettingError(field, "limits must be finite, got [%g, %g]",
			l.Min, l.Max)
	}
	return nil
}

// Scale is the name of an axis scale.
type Scale string

// These are the scales known to this package.  Backends may support only
// a subset.
const (
	ScaleLinear Scale = "linear"
	ScaleLog    Scale = "log"
	ScaleSymLog Scale = "symlog"
	ScaleLogit  Scale = "logit"
)

func (s Scale) validate(field string) error {
	switch s {
	case "", ScaleLinear, ScaleLog, ScaleSymLog, ScaleLogit:
		return nil
	}
	return newInvalidSettingError(field, "unknown scale %q", string(s))
}

// Aspect is the ratio between the length of one y-unit and one x-unit on the
// page.
type Aspect float64

const (
	// AspectAuto lets the plot fill the available area.
	AspectAuto Aspect = 0

	// AspectEqual uses the same length for one unit on both axes.
	AspectEqual Aspect = 1
)

// String returns "auto", "equal" or the ratio as a decimal number.
func (a Aspect) String() string {
	switch a {
	case AspectAuto:
		return "auto"
	case AspectEqual:
		return "equal"
	}
	return strconv.FormatFloat(float64(a), 'g', -1, 64)
}

// ParseAspect converts "auto", "equal" or a positive decimal number into an
// Aspect.
func ParseAspect(s string) (Aspect, error) {
	switch s {
	case "auto", "":
		return AspectAuto, nil
	case "equal":
		return AspectEqual, nil
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, newInvalidSettingError("aspect", "cannot parse %q", s)
	}
	a := Aspect(x)
	if err := a.validate(); err != nil {
		return 0, err
	}
	return a, nil
}

func (a Aspect) validate() error {
	x := float64(a)
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return newInvalidSettingError("aspect", "must be auto or a positive number, got %g", x)
	}
	return nil
}
