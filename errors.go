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
	"fmt"
)

// ErrNoLimits is returned by [Settings.PlotFunc] when neither the call nor
// the settings specify an x-range.
var ErrNoLimits = errors.New("axes: x limits not defined")

// InvalidSettingError is returned when a setting has a value which cannot be
// applied to a plot.
type InvalidSettingError struct {
	Field   string
	Message string
}

func (e *InvalidSettingError) Error() string {
	return fmt.Sprintf("axes: invalid %s: %s", e.Field, e.Message)
}

func (e *InvalidSettingError) Is(target error) bool {
	_, ok := target.(*InvalidSettingError)
	return ok
}

func newInvalidSettingError(field, format string, args ...any) *InvalidSettingError {
	return &InvalidSettingError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
