// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package datecoords

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jcodagnone/datemap/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		input    string
		expected [2]string
		wantErr  bool
	}{
		{input: "14.10.1966, 05.03.1987", expected: [2]string{"14.10.1966", "05.03.1987"}},
		{input: "  1.1.1 ,1.1.1  ", expected: [2]string{"1.1.1", "1.1.1"}},
		{input: "1.1.1,,1.1.1,", expected: [2]string{"1.1.1", "1.1.1"}},
		{input: "１.１.１，２.２.２", expected: [2]string{"1.1.1", "2.2.2"}},
		{input: "14.10.1966", wantErr: true},
		{input: "1.1.1, 2.2.2, 3.3.3", wantErr: true},
		{input: " , ", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			dates, err := ParseInput(test.input)
			if test.wantErr {
				require.Error(t, err)
				assert.True(t, IsMalformedInput(err))
				assert.Equal(t, [2]string{}, dates)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, dates)
		})
	}
}

func TestRun(t *testing.T) {
	res, err := Run("14.10.1966, 05.03.1987", Options{})
	require.NoError(t, err)

	assert.Equal(t, [2]string{"14.10.1966", "05.03.1987"}, res.Dates)
	assert.Equal(t, Extract("14.10.1966"), res.Sets[0])
	assert.Equal(t, Extract("05.03.1987"), res.Sets[1])
	assert.Equal(t, Combine(res.Sets[0], res.Sets[1]), res.Pairs)
	assert.Contains(t, res.Pairs, spatial.Point{Lat: 14.101966, Lng: 5.031987})
}

func TestRunIsIdempotent(t *testing.T) {
	for _, reverse := range []bool{false, true} {
		t.Run(fmt.Sprintf("reverse=%v", reverse), func(t *testing.T) {
			first, err := Run("14.10.1966, 05.03.1987", Options{Reverse: reverse})
			require.NoError(t, err)

			second, err := Run("14.10.1966, 05.03.1987", Options{Reverse: reverse})
			require.NoError(t, err)

			if diff := cmp.Diff(first.Pairs, second.Pairs); diff != "" {
				t.Errorf("second run differs (-first +second):\n%s", diff)
			}
		})
	}
}

func TestRunReverse(t *testing.T) {
	res, err := Run("01.02.2023, 1.1.1", Options{Reverse: true})
	require.NoError(t, err)

	assert.Equal(t, [2]string{"3202.20.10", "1.1.1"}, res.Dates)
	assert.Equal(t, Extract("3202.20.10"), res.Sets[0])
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		input   string
		reverse bool
		check   func(error) bool
		target  error
	}{
		{"14.10.1966", false, IsMalformedInput, ErrMalformedInput},
		{"14.10.1966, 05.03.1987, 1.1.1", false, IsMalformedInput, ErrMalformedInput},
		{"a.b.c, 1.1.1", false, IsNoCoordinates, ErrNoCoordinates},
		{"1.1.1, 14.10", false, IsNoCoordinates, ErrNoCoordinates},
		{"1.1, 2.2", true, IsNoCoordinates, ErrNoCoordinates},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			res, err := Run(test.input, Options{Reverse: test.reverse})
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, test.check(err), "unexpected error type %v", TypeOf(err))
			assert.ErrorIs(t, err, test.target)
			assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), test.target)
		})
	}
}

func TestErrorTypes(t *testing.T) {
	assert.Equal(t, ErrorTypeUnknown, TypeOf(errors.New("boom")))
	assert.Equal(t, "no_valid_pairs", ErrorTypeNoValidPairs.String())
	assert.Equal(t, "ErrorType(42)", ErrorType(42).String())
	assert.True(t, IsNoValidPairs(newError(ErrNoValidPairs, "x")))
	assert.False(t, errors.Is(ErrNoValidPairs, ErrNoCoordinates))
	assert.Equal(t, `expected two dates separated by a comma: "14.10.1966"`, newError(ErrMalformedInput, "14.10.1966").Error())
	assert.Equal(t, "no valid coordinates found", ErrNoValidPairs.Error())
}

type recordingRenderer struct {
	calls  []string
	points []spatial.Point
	err    error
}

func (r *recordingRenderer) Clear() {
	r.calls = append(r.calls, "clear")
	r.points = nil
}

func (r *recordingRenderer) Render(points []spatial.Point) error {
	r.calls = append(r.calls, "render")
	r.points = points

	return r.err
}

func TestPlot(t *testing.T) {
	r := &recordingRenderer{}

	res, err := Plot(r, "1.1.1, 1.1.1", Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"clear", "render"}, r.calls)
	assert.Len(t, r.points, 16)
	assert.Equal(t, res.Pairs, r.points)
}

func TestPlotMalformedLeavesRendererUntouched(t *testing.T) {
	r := &recordingRenderer{points: []spatial.Point{{Lat: 1, Lng: 1}}}

	_, err := Plot(r, "14.10.1966", Options{})
	require.Error(t, err)
	assert.True(t, IsMalformedInput(err))
	assert.Empty(t, r.calls)
	assert.Len(t, r.points, 1)
}

func TestPlotNoCoordinatesClearsWithoutRendering(t *testing.T) {
	r := &recordingRenderer{points: []spatial.Point{{Lat: 1, Lng: 1}}}

	_, err := Plot(r, "x.y.z, 1.1.1", Options{})
	require.Error(t, err)
	assert.True(t, IsNoCoordinates(err))
	assert.Equal(t, []string{"clear"}, r.calls)
	assert.Empty(t, r.points)
}

func TestPlotRenderError(t *testing.T) {
	r := &recordingRenderer{err: assert.AnError}

	res, err := Plot(r, "1.1.1, 1.1.1", Options{})
	require.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, res)
}
