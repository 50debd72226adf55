// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package datecoords

import "slices"

// Reverse returns s with its characters in reverse order, so that
// "01.02.2023" becomes "3202.20.10".
func Reverse(s string) string {
	r := []rune(s)
	slices.Reverse(r)

	return string(r)
}
