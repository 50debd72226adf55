// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

// Package render places coordinate pairs on a map: it owns the marker state
// of the current run, builds the marker popups and fits the viewport.
package render

import (
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/jcodagnone/datemap/spatial"
)

const (
	// DefaultSearchURL is the map search service linked from every popup.
	DefaultSearchURL = "https://www.google.com/maps/search/"
	// DefaultSearchZoom is the zoom level of the search link.
	DefaultSearchZoom = 12
	// DefaultCellResolution is the H3 resolution attached to markers.
	DefaultCellResolution = 7
	// ViewportPadding is the ratio the markers bounds are padded by.
	ViewportPadding = 0.2
)

// Options configures a Layer.
type Options struct {
	SearchURL      string
	SearchZoom     int
	CellResolution int
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		SearchURL:      DefaultSearchURL,
		SearchZoom:     DefaultSearchZoom,
		CellResolution: DefaultCellResolution,
	}
}

// Marker is a point placed on the map.
type Marker struct {
	Point     spatial.Point `json:"point"`
	Popup     template.HTML `json:"popup"`
	SearchURL string        `json:"search_url"`
	Cell      string        `json:"h3_cell"`
}

// Layer holds the markers of the current run and the viewport fitted around
// them. The zero value is not usable, use NewLayer.
type Layer struct {
	options  Options
	markers  []Marker
	viewport spatial.Bounds
}

// NewLayer returns an empty Layer. An empty SearchURL or a zero SearchZoom
// take their default.
func NewLayer(options Options) (*Layer, error) {
	defaults := DefaultOptions()

	if options.SearchURL == "" {
		options.SearchURL = defaults.SearchURL
	}

	if options.SearchZoom == 0 {
		options.SearchZoom = defaults.SearchZoom
	}

	if _, err := url.Parse(options.SearchURL); err != nil {
		return nil, fmt.Errorf("parsing search url: %w", err)
	}

	if options.CellResolution < spatial.MinCellResolution || options.CellResolution > spatial.MaxCellResolution {
		return nil, fmt.Errorf("invalid h3 resolution %d", options.CellResolution)
	}

	return &Layer{options: options}, nil
}

// Clear removes every marker and resets the viewport.
func (l *Layer) Clear() {
	l.markers = nil
	l.viewport = spatial.Bounds{}
}

// Render replaces the markers with one per point and fits the viewport
// around them. Points out of range are rejected and leave the layer cleared.
func (l *Layer) Render(points []spatial.Point) error {
	l.Clear()

	markers := make([]Marker, 0, len(points))

	for _, p := range points {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("marker %s: %w", p.Key(), err)
		}

		cell, err := p.Cell(l.options.CellResolution)
		if err != nil {
			return fmt.Errorf("marker %s: %w", p.Key(), err)
		}

		search := l.SearchURL(p)

		popup, err := Popup(p, search)
		if err != nil {
			return fmt.Errorf("marker %s: %w", p.Key(), err)
		}

		markers = append(markers, Marker{
			Point:     p,
			Popup:     popup,
			SearchURL: search,
			Cell:      cell,
		})
	}

	l.markers = markers
	l.viewport = spatial.BoundsOf(points).Pad(ViewportPadding)

	return nil
}

// Markers returns the markers currently placed.
func (l *Layer) Markers() []Marker {
	return l.markers
}

// Viewport returns the padded bounds of the markers. It is not valid when
// there are no markers.
func (l *Layer) Viewport() spatial.Bounds {
	return l.viewport
}

// SearchURL returns the map search link for p, built from the literal
// rounded coordinates: <base><lat>,<lng>/@<lat>,<lng>,<zoom>z.
func (l *Layer) SearchURL(p spatial.Point) string {
	base := l.options.SearchURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	key := p.Key()

	return base + key + "/@" + key + "," + strconv.Itoa(l.options.SearchZoom) + "z"
}

var popupTemplate = template.Must(template.New("popup").Parse(
	`{{.Key}} - <a href="{{.URL}}" target="_blank">Google Maps</a>`,
))

// Popup returns the HTML shown when a marker is clicked.
func Popup(p spatial.Point, searchURL string) (template.HTML, error) {
	var sb strings.Builder

	err := popupTemplate.Execute(&sb, struct {
		Key string
		URL string
	}{p.Key(), searchURL})
	if err != nil {
		return "", fmt.Errorf("rendering popup: %w", err)
	}

	return template.HTML(sb.String()), nil // #nosec G203 - escaped by html/template
}
