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

package linear

import (
	"errors"
	"fmt"
)

var (
	// ErrHorizontal is returned by [Sim] when both points have the same
	// y-coordinate.
	ErrHorizontal = errors.New("linear: line through the points is horizontal")

	// ErrDegenerate is returned by [Approx] when the extreme points of the
	// selected data have the same x-coordinate.
	ErrDegenerate = errors.New("linear: extreme points have the same x-coordinate")
)

// InputError is returned when an argument does not have the required form.
type InputError struct {
	Arg     string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("linear: invalid %s: %s", e.Arg, e.Message)
}

func (e *InputError) Is(target error) bool {
	_, ok := target.(*InputError)
	return ok
}

func newInputError(arg, format string, args ...any) *InputError {
	return &InputError{
		Arg:     arg,
		Message: fmt.Sprintf(format, args...),
	}
}

// TooFewPointsError is returned by [Approx] when fewer than two data points
// lie inside the requested range.
type TooFewPointsError struct {
	Range Interval
	Found int
}

func (e *TooFewPointsError) Error() string {
	return fmt.Sprintf("linear: at least 2 points must be in the range [%g, %g], but found %d",
		e.Range.Min, e.Range.Max, e.Found)
}

func (e *TooFewPointsError) Is(target error) bool {
	_, ok := target.(*TooFewPointsError)
	return ok
}
