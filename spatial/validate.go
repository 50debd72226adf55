// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import "fmt"

const (
	MaxLat = 90.0
	MaxLng = 180.0
)

// InRange reports whether lat and lng are valid WGS84 coordinates.
func InRange(lat, lng float64) bool {
	return lat >= -MaxLat && lat <= MaxLat && lng >= -MaxLng && lng <= MaxLng
}

// ValidateCoordinates verifies that lat and lng are within the global limits.
func ValidateCoordinates(lat, lng float64) error {
	if lat < -MaxLat || lat > MaxLat {
		return fmt.Errorf("latitude must be between -90 and 90 (got: %f)", lat)
	}

	if lng < -MaxLng || lng > MaxLng {
		return fmt.Errorf("longitude must be between -180 and 180 (got: %f)", lng)
	}

	return nil
}

// Validate verifies that p holds valid coordinates.
func (p Point) Validate() error {
	return ValidateCoordinates(p.Lat, p.Lng)
}
