// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package datecoords

import (
	"fmt"
	"strings"

	"github.com/jcodagnone/datemap/spatial"
	"github.com/jcodagnone/datemap/utils/textutils"
)

// Options tunes a run of the pipeline.
type Options struct {
	// Reverse reverses the characters of each date before extraction.
	Reverse bool
}

// Result holds the outcome of a successful run.
type Result struct {
	Dates [2]string        `json:"dates"`
	Sets  [2]CoordinateSet `json:"sets"`
	Pairs []spatial.Point  `json:"pairs"`
}

// Renderer places points on a map.
type Renderer interface {
	// Clear removes every point placed by a previous run.
	Clear()
	// Render places one marker per point and fits the view around them.
	Render(points []spatial.Point) error
}

// ParseInput splits raw into its two dates. Empty comma separated parts are
// ignored; anything other than exactly two dates is a malformed input.
func ParseInput(raw string) ([2]string, error) {
	var dates [2]string

	n := 0

	for _, part := range strings.Split(textutils.Normalize(raw), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if n < len(dates) {
			dates[n] = part
		}

		n++
	}

	if n != len(dates) {
		return [2]string{}, newError(ErrMalformedInput, raw)
	}

	return dates, nil
}

// Run derives the map points hidden in the two dates of raw.
func Run(raw string, opts Options) (*Result, error) {
	dates, err := ParseInput(raw)
	if err != nil {
		return nil, err
	}

	return run(dates, opts)
}

func run(dates [2]string, opts Options) (*Result, error) {
	res := &Result{Dates: dates}

	for i, date := range dates {
		if opts.Reverse {
			date = Reverse(date)
			res.Dates[i] = date
		}

		res.Sets[i] = Extract(date)
		if res.Sets[i].Empty() {
			return nil, newError(ErrNoCoordinates, date)
		}
	}

	res.Pairs = Combine(res.Sets[0], res.Sets[1])
	if len(res.Pairs) == 0 {
		return nil, newError(ErrNoValidPairs, strings.Join(res.Dates[:], ", "))
	}

	return res, nil
}

// Plot runs the pipeline on raw and hands the points to r. A malformed input
// leaves r untouched; any other run starts by clearing r, and r only renders
// when there is at least one point.
func Plot(r Renderer, raw string, opts Options) (*Result, error) {
	dates, err := ParseInput(raw)
	if err != nil {
		return nil, err
	}

	r.Clear()

	res, err := run(dates, opts)
	if err != nil {
		return nil, err
	}

	if err := r.Render(res.Pairs); err != nil {
		return nil, fmt.Errorf("rendering %d points: %w", len(res.Pairs), err)
	}

	return res, nil
}
