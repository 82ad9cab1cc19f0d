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

// Linfit approximates two-column data by a straight line and draws the data
// together with the fitted line.
//
// Usage:
//
//	linfit [options] data.txt
//
// The data file holds x and y values in two columns, separated by white space
// or commas.  If no file name or "-" is given, the data is read from
// standard input.  Plot settings like the title, axis labels and scales can
// be read from a YAML file using the -config option.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot/vg"

	"seehuhn.de/go/axes"
	"seehuhn.de/go/axes/linear"
)

var (
	configFile = flag.String("config", "", "read plot settings from this YAML `file`")
	rangeMin   = flag.Float64("min", math.Inf(-1), "ignore data with x smaller than this")
	rangeMax   = flag.Float64("max", math.Inf(1), "ignore data with x larger than this")
	start      = flag.Float64("start", linear.DefaultStart, "position of the anchor point between the extreme points")
	template   = flag.String("fmt", "y = {slope:.4g} x {slice:+.4g}", "legend `template` for the fitted line")
	output     = flag.String("o", "linfit.pdf", "output `file`, or \"-\" for standard output")
	format     = flag.String("format", "png", "image format when writing to standard output")
	width      = flag.Float64("width", 12, "image width in cm")
	height     = flag.Float64("height", 9, "image height in cm")
	lang       = flag.String("lang", "en", "language `tag` used for the summary")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] data.txt\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	toStdout := *output == "-"
	if toStdout && term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("refusing to write image data to a terminal")
	}

	var in io.Reader = os.Stdin
	if fname := flag.Arg(0); fname != "" && fname != "-" {
		f, err := os.Open(fname)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}
	x, y, err := readData(in)
	if err != nil {
		log.Fatal(err)
	}

	settings := axes.NewSettings()
	if *configFile != "" {
		settings, err = axes.LoadSettings(*configFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	j := &job{
		settings: settings,
		rng:      linear.Interval{Min: *rangeMin, Max: *rangeMax},
		start:    *start,
		template: *template,
	}
	res, err := j.run(x, y)
	if err != nil {
		log.Fatal(err)
	}

	w := vg.Length(*width) * vg.Centimeter
	h := vg.Length(*height) * vg.Centimeter
	summary := os.Stdout
	if toStdout {
		summary = os.Stderr
		wt, err := res.axes.WriterTo(w, h, *format)
		if err != nil {
			log.Fatal(err)
		}
		_, err = wt.WriteTo(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		err = res.axes.Save(w, h, *output)
		if err != nil {
			log.Fatal(err)
		}
	}

	p := message.NewPrinter(language.Make(*lang))
	p.Fprintf(summary, "%d of %d points used\n", res.used, len(x))
	p.Fprintf(summary, "slope:     %f\n", res.line.Slope)
	p.Fprintf(summary, "intercept: %f\n", res.line.Intercept())
	fmt.Fprintln(summary, res.label)
}
