// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jcodagnone/datemap/datecoords"
	"github.com/jcodagnone/datemap/render"
	"github.com/jcodagnone/datemap/utils/textutils"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

type batchOptions struct {
	Reverse bool
}

var batchOpts = &batchOptions{}

// BatchRecord is one output line of the batch command.
type BatchRecord struct {
	Line      int                       `json:"line"`
	Input     string                    `json:"input"`
	Dates     [2]string                 `json:"dates,omitempty"`
	Points    *render.FeatureCollection `json:"points,omitempty"`
	Error     string                    `json:"error,omitempty"`
	ErrorType string                    `json:"error_type,omitempty"`
}

// BatchMetrics counts the outcome of a batch run.
type BatchMetrics struct {
	Inputs int
	Points int
	Failed int
}

func readBatchInputs(r io.Reader) ([]BatchRecord, error) {
	var records []BatchRecord

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		records = append(records, BatchRecord{Line: n, Input: line})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return records, nil
}

// runBatch plots every record and writes them as JSON lines to out.
func runBatch(records []BatchRecord, reverse bool, out io.Writer, bar *progressbar.ProgressBar) (BatchMetrics, error) {
	metrics := BatchMetrics{Inputs: len(records)}
	p := printer()
	enc := json.NewEncoder(out)

	for _, rec := range records {
		res, layer, err := plotInput(rec.Input, reverse)

		switch {
		case err == nil:
			fc := layer.GeoJSON()
			rec.Dates = res.Dates
			rec.Points = &fc
			metrics.Points += len(res.Pairs)
		case datecoords.TypeOf(err) != datecoords.ErrorTypeUnknown:
			rec.Error = p.Error(err)
			rec.ErrorType = datecoords.TypeOf(err).String()
			metrics.Failed++
		default:
			return metrics, fmt.Errorf("line %d: %w", rec.Line, err)
		}

		if err := enc.Encode(rec); err != nil {
			return metrics, fmt.Errorf("writing line %d: %w", rec.Line, err)
		}

		if bar == nil {
			log.Printf("Plotted line %d", rec.Line)
		} else if err := bar.Add(1); err != nil {
			return metrics, fmt.Errorf("updating progress bar for line %d: %w", rec.Line, err)
		}
	}

	return metrics, nil
}

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Plot one pair of dates per line, writing GeoJSON lines",
	Long: `Reads a file (or stdin when the file is "-") with one pair of dates per line and
writes one JSON object per line with the GeoJSON points of that pair or the
notice explaining why it could not be plotted. Empty lines and lines starting
with # are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()

		if args[0] != "-" {
			f, err := os.Open(args[0]) // #nosec G304 - path is provided by the user
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer f.Close()

			in = f
		}

		records, err := readBatchInputs(in)
		if err != nil {
			return err
		}

		var bar *progressbar.ProgressBar
		if isatty.IsTerminal(os.Stderr.Fd()) {
			bar = progressbar.NewOptions(len(records),
				progressbar.OptionSetDescription("Plotting "+args[0]),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}

		metrics, err := runBatch(records, batchOpts.Reverse, cmd.OutOrStdout(), bar)

		log.Printf(
			"Batch complete - %s points from %s inputs, %s failed",
			textutils.FormatInt(int64(metrics.Points)),
			textutils.FormatInt(int64(metrics.Inputs)),
			textutils.FormatInt(int64(metrics.Failed)),
		)

		return err
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().BoolVar(
		&batchOpts.Reverse,
		"reverse",
		false,
		"Reverse the characters of each date before extracting coordinates",
	)
}
