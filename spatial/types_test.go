// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"already short", 14.101966, 14.101966},
		{"more than six decimals", 1.4101966, 1.410197},
		{"seven decimals", 0.5031987, 0.503199},
		{"negative", -141.01966, -141.01966},
		{"integer", 11, 11},
		{"negative zero", math.Copysign(0, -1), 0},
		{"tie rounds up", 1.0078125, 1.007813},
		{"negative tie rounds away from zero", -1.0078125, -1.007813},
		{"tie on an even digit", 0.0390625, 0.039063},
		{"exact six decimals", 10.078125, 10.078125},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Round(test.in)
			assert.Equal(t, test.expected, got)
			assert.False(t, math.Signbit(got) && got == 0, "negative zero leaked")
		})
	}
}

func TestPointKey(t *testing.T) {
	assert.Equal(t, "14.101966,-5.031987", Point{Lat: 14.101966, Lng: -5.031987}.Key())
	assert.Equal(t, "0.000001,180", Point{Lat: 0.000001, Lng: 180}.Key())
	assert.Equal(t, "1.11,-11.1", Point{Lat: 1.1100000001, Lng: -11.1}.Rounded().Key())
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "origin", lat: 0, lng: 0},
		{name: "north boundary", lat: 90, lng: 0},
		{name: "south-west corner", lat: -90, lng: -180},
		{name: "east boundary", lat: 0, lng: 180},
		{name: "latitude too high", lat: 90.000001, lng: 0, wantErr: true},
		{name: "latitude too low", lat: -91, lng: 0, wantErr: true},
		{name: "longitude too high", lat: 0, lng: 180.5, wantErr: true},
		{name: "longitude too low", lat: 0, lng: -181, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := Point{Lat: test.lat, Lng: test.lng}.Validate()
			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, !test.wantErr, InRange(test.lat, test.lng))
		})
	}
}

func TestBounds(t *testing.T) {
	var empty Bounds
	assert.False(t, empty.IsValid())
	assert.False(t, empty.Pad(0.2).IsValid())
	assert.False(t, empty.Contains(Point{}))

	b := BoundsOf([]Point{
		{Lat: 10, Lng: 20},
		{Lat: -10, Lng: 40},
		{Lat: 0, Lng: 30},
	})
	require.True(t, b.IsValid())
	assert.InDelta(t, -10, b.South, 1e-9)
	assert.InDelta(t, 10, b.North, 1e-9)
	assert.InDelta(t, 20, b.West, 1e-9)
	assert.InDelta(t, 40, b.East, 1e-9)

	padded := b.Pad(0.2)
	assert.InDelta(t, -14, padded.South, 1e-9)
	assert.InDelta(t, 14, padded.North, 1e-9)
	assert.InDelta(t, 16, padded.West, 1e-9)
	assert.InDelta(t, 44, padded.East, 1e-9)
	assert.True(t, padded.Contains(Point{Lat: 13, Lng: 43}))
	assert.False(t, b.Contains(Point{Lat: 13, Lng: 43}))

	single := BoundsOf([]Point{{Lat: 5, Lng: 5}}).Pad(0.2)
	assert.True(t, single.Contains(Point{Lat: 5, Lng: 5}))
}

func TestCell(t *testing.T) {
	p := Point{Lat: 14.101966, Lng: 5.031987}

	cell, err := p.Cell(7)
	require.NoError(t, err)
	assert.Len(t, cell, 15)

	again, err := p.Cell(7)
	require.NoError(t, err)
	assert.Equal(t, cell, again)

	coarse, err := p.Cell(0)
	require.NoError(t, err)
	assert.NotEqual(t, cell, coarse)

	_, err = p.Cell(16)
	assert.Error(t, err)
	_, err = p.Cell(-1)
	assert.Error(t, err)
}
