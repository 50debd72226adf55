// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package datecoords

import "github.com/jcodagnone/datemap/spatial"

// signs lists the sign variants applied to every (lat, lon) pair, in order.
var signs = [4][2]float64{
	{1, 1},
	{-1, 1},
	{1, -1},
	{-1, -1},
}

// Combine pairs the latitudes of a with the longitudes of b, then the
// latitudes of b with the longitudes of a. Every pair is expanded into its
// four sign variants; variants out of range are dropped and the rest are
// rounded to six decimals. The result keeps the first occurrence of every
// rounded point, in generation order.
func Combine(a, b CoordinateSet) []spatial.Point {
	set := newOrderedSet[spatial.Point](4 * (len(a.Lats)*len(b.Lons) + len(b.Lats)*len(a.Lons)))

	cross(set, a.Lats, b.Lons)
	cross(set, b.Lats, a.Lons)

	return set.values
}

func cross(set *orderedSet[spatial.Point], lats, lons []float64) {
	for _, lat := range lats {
		for _, lon := range lons {
			for _, s := range signs {
				p := spatial.Point{Lat: s[0] * lat, Lng: s[1] * lon}
				if !spatial.InRange(p.Lat, p.Lng) {
					continue
				}

				set.add(p.Rounded())
			}
		}
	}
}
