// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jcodagnone/datemap/datecoords"
	"github.com/jcodagnone/datemap/render"
	"github.com/jcodagnone/datemap/spatial"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const (
	formatTable   = "table"
	formatJSON    = "json"
	formatGeoJSON = "geojson"
)

type pointsOptions struct {
	Reverse bool
	Format  string
}

var pointsOpts = &pointsOptions{}

var errSomeFailed = errors.New("some inputs could not be plotted")

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatGeoJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected %s, %s or %s)", format, formatTable, formatJSON, formatGeoJSON)
	}
}

// plotInput runs one input through a fresh layer.
func plotInput(input string, reverse bool) (*datecoords.Result, *render.Layer, error) {
	layer, err := render.NewLayer(cfg.RenderOptions())
	if err != nil {
		return nil, nil, err
	}

	res, err := datecoords.Plot(layer, input, datecoords.Options{Reverse: reverse})
	if err != nil {
		return nil, nil, err
	}

	return res, layer, nil
}

type pointsJSON struct {
	Dates   [2]string                  `json:"dates"`
	Sets    [2]datecoords.CoordinateSet `json:"sets"`
	Markers []render.Marker            `json:"markers"`
	Bounds  spatial.Bounds             `json:"bounds"`
}

func writePoints(w io.Writer, format string, res *datecoords.Result, layer *render.Layer) error {
	switch format {
	case formatJSON:
		return json.NewEncoder(w).Encode(pointsJSON{
			Dates:   res.Dates,
			Sets:    res.Sets,
			Markers: layer.Markers(),
			Bounds:  layer.Viewport(),
		})
	case formatGeoJSON:
		return json.NewEncoder(w).Encode(layer.GeoJSON())
	default:
		for _, m := range layer.Markers() {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				spatial.FormatCoord(m.Point.Lat),
				spatial.FormatCoord(m.Point.Lng),
				m.Cell,
				m.SearchURL,
			); err != nil {
				return err
			}
		}

		return nil
	}
}

// pointsWriter plots inputs one at a time, writing results to out and
// notices to errOut.
type pointsWriter struct {
	out    io.Writer
	errOut io.Writer
	failed bool
}

func (pw *pointsWriter) plot(input string) error {
	res, layer, err := plotInput(input, pointsOpts.Reverse)
	if err != nil {
		if datecoords.TypeOf(err) == datecoords.ErrorTypeUnknown {
			return err
		}

		fmt.Fprintf(pw.errOut, "%s\t%s\n", input, printer().Error(err))
		pw.failed = true

		return nil
	}

	if err := writePoints(pw.out, pointsOpts.Format, res, layer); err != nil {
		return fmt.Errorf("writing points: %w", err)
	}

	return nil
}

func (pw *pointsWriter) err() error {
	if pw.failed {
		return errSomeFailed
	}

	return nil
}

var pointsCmd = &cobra.Command{
	Use:   "points [D.M.Y, D.M.Y]",
	Short: "Print the map points derived from two dates",
	Long: `Prints one line per point: latitude, longitude, H3 cell and map search link.
Without arguments, reads one pair of dates per line from stdin.

$ datemap points 1.1.1, 1.1.1
1.11	1.11	<h3 cell>	https://www.google.com/maps/search/1.11,1.11/@1.11,1.11,12z
…
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFormat(pointsOpts.Format); err != nil {
			return err
		}

		pw := &pointsWriter{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()}

		if len(args) > 0 {
			if err := pw.plot(strings.Join(args, " ")); err != nil {
				return err
			}

			return pw.err()
		}

		if isatty.IsTerminal(os.Stdin.Fd()) {
			fmt.Fprintln(os.Stderr, "Enter two dates per line, DD.MM.YYYY, DD.MM.YYYY…")
		}

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			if err := pw.plot(line); err != nil {
				return err
			}
		}

		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		return pw.err()
	},
}

func init() {
	rootCmd.AddCommand(pointsCmd)
	pointsCmd.Flags().BoolVar(
		&pointsOpts.Reverse,
		"reverse",
		false,
		"Reverse the characters of each date before extracting coordinates",
	)
	pointsCmd.Flags().StringVar(
		&pointsOpts.Format,
		"format",
		formatTable,
		"Output format: table, json or geojson",
	)
}
