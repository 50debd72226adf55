// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/jcodagnone/datemap/config"
	"github.com/jcodagnone/datemap/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the interactive map web server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("addr") {
			cfg.Addr = serveAddr
		}

		s, err := server.NewServer(cfg)
		if err != nil {
			return fmt.Errorf("configuring server: %w", err)
		}

		fmt.Println("🗺️  DateMap server starting...")
		fmt.Printf("📍 Open http://%s in your browser\n", cfg.Addr)

		return s.Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", config.DefaultAddr, "Address to listen on")
}
