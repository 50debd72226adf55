// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/jcodagnone/datemap/config"
	"github.com/jcodagnone/datemap/notice"
	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

type rootOptions struct {
	EnvFile        string
	Lang           string
	CellResolution int
}

var (
	rootOpts = &rootOptions{}
	cfg      config.Config
)

var rootCmd = &cobra.Command{
	Use:   "datemap",
	Short: "plot the coordinates hidden in the digits of two dates",
	Long: `
datemap takes two dates in D.M.Y form, splits their digits with a decimal point
at every position, and pairs the latitudes of one date with the longitudes of
the other (and vice versa, with every sign combination) to find map points.
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error

		cfg, err = config.Load(rootOpts.EnvFile)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		flags := cmd.Flags()
		if flags.Changed("lang") {
			cfg.Lang = rootOpts.Lang
		}

		if flags.Changed("h3-res") {
			cfg.CellResolution = rootOpts.CellResolution
		}

		return nil
	},
}

// printer returns the notice printer for the configured language.
func printer() *notice.Printer {
	return notice.NewPrinter(cfg.Lang)
}

var Version = "dev"

func Execute(version string) {
	Version = version
	rootCmd.Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&rootOpts.EnvFile,
		"env-file",
		".env",
		"File with DATEMAP_* variables to load before reading the environment",
	)
	rootCmd.PersistentFlags().StringVar(
		&rootOpts.Lang,
		"lang",
		config.DefaultLang,
		"Language of the notices (en, es, ru)",
	)
	rootCmd.PersistentFlags().IntVar(
		&rootOpts.CellResolution,
		"h3-res",
		config.Default().CellResolution,
		"H3 resolution of the cell attached to every point",
	)
}
