// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"fmt"

	"github.com/uber/h3-go/v4"
)

const (
	MinCellResolution = 0
	MaxCellResolution = 15
)

// Cell returns the hexadecimal H3 index of the cell holding p at the given
// resolution.
func (p Point) Cell(res int) (string, error) {
	if res < MinCellResolution || res > MaxCellResolution {
		return "", fmt.Errorf("h3 resolution must be between %d and %d (got: %d)", MinCellResolution, MaxCellResolution, res)
	}

	cell, err := h3.LatLngToCell(h3.NewLatLng(p.Lat, p.Lng), res)
	if err != nil {
		return "", fmt.Errorf("error converting to h3 cell at res %d: %w", res, err)
	}

	return cell.String(), nil
}
