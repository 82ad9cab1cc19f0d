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
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Format substitutes the parameters of the line into the template tmpl.
//
// The template may contain the fields {slope}, {slice} and {intercept}, where
// slice and intercept both denote the value of the line at x = 0.  A field
// can carry a format specification after a colon, for example {slope:.3f}.
// The specification consists of an optional sign ("+", "-" or " "), an
// optional "0" for zero padding, an optional width, an optional precision
// ".n" and an optional type, one of "e", "E", "f", "F", "g", "G" or "%".
// Without a specification the shortest representation which reads back to
// the same value is used, always with a decimal point or exponent, e.g.
// "1.0" or "2.5e-07".  Literal braces are written as "{{" and "}}".
func (l *Line) Format(tmpl string) (string, error) {
	values := map[string]float64{
		"slope":     l.Slope,
		"slice":     l.Intercept(),
		"intercept": l.Intercept(),
	}

	var b strings.Builder
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", newInputError("template", "unmatched '{' at position %d", i)
			}
			field := tmpl[i+1 : i+1+end]
			name, spec, _ := strings.Cut(field, ":")
			val, ok := values[name]
			if !ok {
				return "", newInputError("template", "unknown field %q", name)
			}
			s, err := formatValue(val, spec)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
			i += end + 1
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", newInputError("template", "single '}' at position %d", i)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

var specRe = regexp.MustCompile(`^([+\- ]?)(0?)([0-9]*)(?:\.([0-9]+))?([eEfFgG%]?)$`)

// formatValue formats x according to the format specification spec.
func formatValue(x float64, spec string) (string, error) {
	if spec == "" {
		return shortest(x), nil
	}

	m := specRe.FindStringSubmatch(spec)
	if m == nil {
		return "", newInputError("template", "unsupported format specification %q", spec)
	}
	sign, zero, width, prec, verb := m[1], m[2], m[3], m[4], m[5]
	if sign == "-" {
		sign = ""
	}

	switch verb {
	case "":
		if prec == "" {
			s := shortest(x)
			if sign != "" && !strings.HasPrefix(s, "-") {
				s = sign + s
			}
			return pad(s, width, zero != ""), nil
		}
		verb = "g"
	case "g", "G":
		if prec == "" {
			prec = "6"
		}
	case "F":
		verb = "f"
	case "%":
		// The width applies to the whole field, including the percent sign.
		s := fmt.Sprintf("%"+sign+"."+precOrDefault(prec)+"f", 100*x) + "%"
		return pad(s, width, zero != ""), nil
	}

	format := "%" + sign + zero + width
	if prec != "" {
		format += "." + prec
	}
	return fmt.Sprintf(format+verb, x), nil
}

func precOrDefault(prec string) string {
	if prec == "" {
		return "6"
	}
	return prec
}

// pad right-aligns s in a field of the given width.
func pad(s, width string, zero bool) string {
	w, err := strconv.Atoi(width)
	if err != nil || len(s) >= w {
		return s
	}
	fill := strings.Repeat(" ", w-len(s))
	if !zero {
		return fill + s
	}
	fill = strings.Repeat("0", w-len(s))
	if s != "" && (s[0] == '-' || s[0] == '+' || s[0] == ' ') {
		return s[:1] + fill + s[1:]
	}
	return fill + s
}

// shortest returns the shortest decimal representation of x which reads back
// to the same value.  Numbers in the range 1e-4 <= |x| < 1e16 use positional
// notation with at least one digit after the decimal point, all other
// numbers use exponential notation.
func shortest(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}

	e := strconv.FormatFloat(x, 'e', -1, 64)
	exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if err != nil {
		return e
	}
	if x != 0 && (exp < -4 || exp >= 16) {
		return e
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
