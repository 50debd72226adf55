// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcodagnone/datemap/datecoords"
	"github.com/jcodagnone/datemap/spatial"
	"github.com/spf13/cobra"
)

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Dev tools",
}

func formatValues(values []float64) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = spatial.FormatCoord(v)
	}

	return "[" + strings.Join(s, " ") + "]"
}

func writeExtraction(w io.Writer, date string) error {
	digits, ok := datecoords.DigitRun(date)
	if !ok {
		_, err := fmt.Fprintf(w, "%s\tnot a D.M.Y date\n", date)

		return err
	}

	set := datecoords.Extract(date)

	_, err := fmt.Fprintf(w, "%s\n  digits:     %s\n  base:       %s\n  candidates: %s\n  lats:       %s\n  lons:       %s\n",
		date,
		digits,
		datecoords.SplitBase(digits),
		formatValues(datecoords.Candidates(date)),
		formatValues(set.Lats),
		formatValues(set.Lons),
	)

	return err
}

var debugExtractCmd = &cobra.Command{
	Use:   "extract <date>...",
	Short: "Show how coordinates are extracted from a date",
	Long: `Prints the digit run, the split base, every candidate value and the
latitude and longitude candidates of each date.

$ datemap debug extract 14.10.1966
14.10.1966
  digits:     14101966
  base:       14101966
  candidates: [1.4101966 14.101966 141.01966 1410.1966 14101.966 141019.66 1410196.6]
  lats:       [1.4101966 14.101966]
  lons:       [1.4101966 14.101966 141.01966]
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, date := range args {
			if err := writeExtraction(cmd.OutOrStdout(), date); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.AddCommand(debugExtractCmd)
}
