// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package render

// FeatureCollection represents a GeoJSON collection of markers.
type FeatureCollection struct {
	Type     string    `json:"type"`
	BBox     []float64 `json:"bbox,omitempty"`
	Features []Feature `json:"features"`
}

// Feature represents a single GeoJSON feature.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// Geometry represents a GeoJSON point geometry.
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [Lng, Lat]
}

// GeoJSON encodes the markers of l, with the padded viewport as bbox.
func (l *Layer) GeoJSON() FeatureCollection {
	fc := FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, 0, len(l.markers)),
	}

	if vp := l.viewport; vp.IsValid() {
		fc.BBox = []float64{vp.West, vp.South, vp.East, vp.North}
	}

	for _, m := range l.markers {
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{m.Point.Lng, m.Point.Lat},
			},
			Properties: map[string]any{
				"popup":      string(m.Popup),
				"search_url": m.SearchURL,
				"h3_cell":    m.Cell,
			},
		})
	}

	return fc
}
