// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import "math"

// Bounds is a rectangular area delimited by its south-west and north-east corners.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
	valid bool
}

// BoundsOf returns the smallest Bounds holding every point.
func BoundsOf(points []Point) Bounds {
	var b Bounds
	for _, p := range points {
		b = b.Extend(p)
	}

	return b
}

// IsValid reports whether at least one point was added to b.
func (b Bounds) IsValid() bool {
	return b.valid
}

// Extend returns b grown to hold p.
func (b Bounds) Extend(p Point) Bounds {
	if !b.valid {
		return Bounds{South: p.Lat, West: p.Lng, North: p.Lat, East: p.Lng, valid: true}
	}

	b.South = math.Min(b.South, p.Lat)
	b.West = math.Min(b.West, p.Lng)
	b.North = math.Max(b.North, p.Lat)
	b.East = math.Max(b.East, p.Lng)

	return b
}

// Pad returns b extended on every side by ratio times its height and width,
// the same way a Leaflet LatLngBounds is padded before fitting the view.
func (b Bounds) Pad(ratio float64) Bounds {
	if !b.valid {
		return b
	}

	heightBuffer := math.Abs(b.South-b.North) * ratio
	widthBuffer := math.Abs(b.West-b.East) * ratio

	return Bounds{
		South: b.South - heightBuffer,
		West:  b.West - widthBuffer,
		North: b.North + heightBuffer,
		East:  b.East + widthBuffer,
		valid: true,
	}
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Point) bool {
	return b.valid &&
		p.Lat >= b.South && p.Lat <= b.North &&
		p.Lng >= b.West && p.Lng <= b.East
}

