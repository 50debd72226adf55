// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

// Package datecoords derives geographic coordinates from the digits of two
// dates: every date becomes a run of digits, every run is split with a
// decimal point at each position, and the values of one date are used as
// latitudes against the longitudes of the other.
package datecoords

import (
	"strconv"
	"strings"

	"github.com/jcodagnone/datemap/spatial"
)

// CoordinateSet holds the latitude and longitude candidates of one date, in
// the order they were first produced.
type CoordinateSet struct {
	Lats []float64 `json:"lats"`
	Lons []float64 `json:"lons"`
}

// Empty reports whether the set has neither latitudes nor longitudes.
func (c CoordinateSet) Empty() bool {
	return len(c.Lats) == 0 && len(c.Lons) == 0
}

// DigitRun concatenates the digits of the day, month and year fields of a
// D.M.Y date. It reports false when date has fewer than three fields. Fields
// are not validated: anything shaped like X.Y.Z is accepted.
func DigitRun(date string) (string, bool) {
	parts := strings.Split(date, ".")
	if len(parts) < 3 {
		return "", false
	}

	var sb strings.Builder

	for _, part := range parts[:3] {
		for _, r := range strings.TrimSpace(part) {
			if r >= '0' && r <= '9' {
				sb.WriteRune(r)
			}
		}
	}

	return sb.String(), true
}

// SplitBase returns the digits the decimal point is inserted into: digits
// without its leading zeros, unless that leaves fewer than two characters.
func SplitBase(digits string) string {
	if stripped := strings.TrimLeft(digits, "0"); len(stripped) >= 2 {
		return stripped
	}

	return digits
}

// parseCandidate parses a candidate value, reporting false when it is not a
// number.
func parseCandidate(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// SplitDecimals returns the values obtained by inserting a decimal point at
// every inner position of the split base of digits, without duplicates.
func SplitDecimals(digits string) []float64 {
	base := SplitBase(digits)
	if len(base) < 2 {
		return nil
	}

	set := newOrderedSet[float64](len(base) - 1)

	for i := 1; i < len(base); i++ {
		if v, ok := parseCandidate(base[:i] + "." + base[i:]); ok {
			set.add(v)
		}
	}

	return set.values
}

// Candidates returns every value derived from date, before the latitude and
// longitude filters.
func Candidates(date string) []float64 {
	digits, ok := DigitRun(date)
	if !ok {
		return nil
	}

	return SplitDecimals(digits)
}

// Extract converts a date into its latitude (<= 90) and longitude (<= 180)
// candidates. A date that does not have three fields yields an empty set.
func Extract(date string) CoordinateSet {
	var set CoordinateSet

	for _, v := range Candidates(date) {
		if v <= spatial.MaxLat {
			set.Lats = append(set.Lats, v)
		}

		if v <= spatial.MaxLng {
			set.Lons = append(set.Lons, v)
		}
	}

	return set
}
