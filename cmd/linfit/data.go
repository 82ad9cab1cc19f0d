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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// readData reads two columns of numbers.  Columns are separated by white
// space or commas, and everything after a "#" is ignored.  Columns after the
// second are ignored.
func readData(r io.Reader) (x, y []float64, err error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line, _, _ := strings.Cut(scanner.Text(), "#")
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return unicode.IsSpace(r) || r == ','
		})
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("line %d: expected two columns", lineNo)
		}

		xi, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		yi, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		x = append(x, xi)
		y = append(y, yi)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// dataRange returns the smallest and largest value of x inside [lo, hi].
func dataRange(x []float64, lo, hi float64) (float64, float64) {
	min, max := hi, lo
	for _, xi := range x {
		if xi < lo || xi > hi {
			continue
		}
		if xi < min {
			min = xi
		}
		if xi > max {
			max = xi
		}
	}
	return min, max
}
