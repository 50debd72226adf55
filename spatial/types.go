// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

// Package spatial holds the geographic primitives shared by the extractor,
// the render layer and the HTTP API.
package spatial

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Decimals is the number of decimal places coordinates are rounded to.
const Decimals = 6

// Point represents a geographical point with latitude and longitude.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("POINT(%f %f)", p.Lng, p.Lat)
}

// Key returns the "lat,lng" rendering used for popups, links and dedup.
// Coordinates are printed with the shortest decimal representation.
func (p Point) Key() string {
	return FormatCoord(p.Lat) + "," + FormatCoord(p.Lng)
}

// Rounded returns p with both coordinates rounded to Decimals places.
func (p Point) Rounded() Point {
	return Point{Lat: Round(p.Lat), Lng: Round(p.Lng)}
}

// FormatCoord renders a coordinate with the shortest decimal representation,
// never using an exponent.
func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Round rounds v to Decimals places, going through the decimal rendering so
// that the result is the float closest to the printed value. Exact ties are
// rounded away from zero. Negative zero is folded into zero.
func Round(v float64) float64 {
	abs := math.Abs(v)
	if isTie(abs) {
		abs = math.Nextafter(abs, math.Inf(1))
	}

	r, err := strconv.ParseFloat(strconv.FormatFloat(abs, 'f', Decimals, 64), 64)
	if err != nil {
		return v
	}

	if r == 0 {
		return 0
	}

	return math.Copysign(r, v)
}

// isTie reports whether the exact decimal expansion of v lies halfway
// between two multiples of 10^-Decimals.
func isTie(v float64) bool {
	// 1074 digits hold the exact expansion of any float64
	exact := strconv.FormatFloat(v, 'f', 1074, 64)

	dot := strings.IndexByte(exact, '.')
	if dot < 0 {
		return false
	}

	return strings.TrimRight(exact[dot+1+Decimals:], "0") == "5"
}
