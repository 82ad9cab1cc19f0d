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

// Grid selects which grid lines are drawn.
type Grid struct {
	// Which selects the tick marks the grid lines are attached to.
	Which Which

	// Axis selects the axis whose ticks get grid lines.  The empty value
	// means that no grid is drawn.
	Axis GridAxis
}

// Which selects major ticks, minor ticks or both.
type Which string

// These are the valid values for [Grid.Which].
const (
	WhichMajor Which = "major"
	WhichMinor Which = "minor"
	WhichBoth  Which = "both"
)

// GridAxis selects the axes of a grid.
type GridAxis string

// These are the valid values for [Grid.Axis].
const (
	GridNone GridAxis = ""
	GridX    GridAxis = "x"
	GridY    GridAxis = "y"
	GridBoth GridAxis = "both"
)

// Enabled reports whether any grid lines are requested.
func (g Grid) Enabled() bool {
	return g.Axis != GridNone
}

// Validate checks that Which and Axis have one of the known values.
// An empty Which is allowed and stands for [WhichMajor].
func (g Grid) Validate() error {
	switch g.Which {
	case "", WhichMajor, WhichMinor, WhichBoth:
	default:
		return newInvalidSettingError("grid", "unknown tick selection %q", string(g.Which))
	}
	switch g.Axis {
	case GridNone, GridX, GridY, GridBoth:
	default:
		return newInvalidSettingError("grid", "unknown axis %q", string(g.Axis))
	}
	return nil
}

// ParseGrid normalizes the different ways of describing a grid.
//
// The following values are understood:
//   - nil: no grid
//   - a bool: true draws major grid lines on both axes, false draws no grid
//   - a string or GridAxis: major grid lines for the given axis
//   - a two-element []string, [2]string or []any: which ticks and which axis
//   - a map[string]string or map[string]any with optional "which" and "axis"
//     keys; missing keys keep the defaults and other keys are ignored
//   - a Grid or *Grid
//
// The resulting grid uses [WhichMajor] unless a different value is given.
func ParseGrid(v any) (Grid, error) {
	g := Grid{Which: WhichMajor}

	switch v := v.(type) {
	case nil:
		// no grid
	case Grid:
		g = v
	case *Grid:
		if v != nil {
			g = *v
		}
	case bool:
		if v {
			g.Axis = GridBoth
		}
	case string:
		g.Axis = GridAxis(v)
	case GridAxis:
		g.Axis = v
	case [2]string:
		g.Which, g.Axis = Which(v[0]), GridAxis(v[1])
	case []string:
		if len(v) != 2 {
			return Grid{}, newInvalidSettingError("grid", "expected 2 elements, got %d", len(v))
		}
		g.Which, g.Axis = Which(v[0]), GridAxis(v[1])
	case []any:
		if len(v) != 2 {
			return Grid{}, newInvalidSettingError("grid", "expected 2 elements, got %d", len(v))
		}
		which, ok1 := v[0].(string)
		axis, ok2 := v[1].(string)
		if !ok1 || !ok2 {
			return Grid{}, newInvalidSettingError("grid", "elements must be strings, got %v", v)
		}
		g.Which, g.Axis = Which(which), GridAxis(axis)
	case map[string]string:
		if which, ok := v["which"]; ok {
			g.Which = Which(which)
		}
		if axis, ok := v["axis"]; ok {
			g.Axis = GridAxis(axis)
		}
	case map[string]any:
		if which, ok := v["which"]; ok {
			s, isString := which.(string)
			if !isString {
				return Grid{}, newInvalidSettingError("grid", "which must be a string, got %v", which)
			}
			g.Which = Which(s)
		}
		if axis, ok := v["axis"]; ok && axis != nil {
			s, isString := axis.(string)
			if !isString {
				return Grid{}, newInvalidSettingError("grid", "axis must be a string, got %v", axis)
			}
			g.Axis = GridAxis(s)
		}
	default:
		return Grid{}, newInvalidSettingError("grid", "unsupported value of type %T", v)
	}

	if g.Which == "" {
		g.Which = WhichMajor
	}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}
