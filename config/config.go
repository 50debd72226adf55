// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

// Package config reads the DateMap settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jcodagnone/datemap/render"
	"github.com/joho/godotenv"
)

const (
	DefaultAddr    = "localhost:8080"
	DefaultLang    = "en"
	DefaultTileURL = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png?lang=en"
)

// Config holds the settings shared by the CLI and the server.
type Config struct {
	Addr           string
	Lang           string
	SearchURL      string
	SearchZoom     int
	CellResolution int
	TileURL        string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:           DefaultAddr,
		Lang:           DefaultLang,
		SearchURL:      render.DefaultSearchURL,
		SearchZoom:     render.DefaultSearchZoom,
		CellResolution: render.DefaultCellResolution,
		TileURL:        DefaultTileURL,
	}
}

// Load reads the given .env files (".env" when none) into the environment,
// without overriding variables already set, and returns the resulting
// settings. Missing files are not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Printf("No %s file found (using environment variables)", f)

				continue
			}

			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the DATEMAP_* variables returned by getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv("DATEMAP_ADDR"); v != "" {
		cfg.Addr = v
	}

	if v := getenv("DATEMAP_LANG"); v != "" {
		cfg.Lang = v
	}

	if v := getenv("DATEMAP_SEARCH_URL"); v != "" {
		cfg.SearchURL = v
	}

	if v := getenv("DATEMAP_TILE_URL"); v != "" {
		cfg.TileURL = v
	}

	var err error

	if cfg.SearchZoom, err = intVar(getenv, "DATEMAP_SEARCH_ZOOM", cfg.SearchZoom); err != nil {
		return Config{}, err
	}

	if cfg.CellResolution, err = intVar(getenv, "DATEMAP_H3_RES", cfg.CellResolution); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func intVar(getenv func(string) string, key string, fallback int) (int, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer (got: %q): %w", key, v, err)
	}

	return n, nil
}

// RenderOptions returns the options of the map layer.
func (c Config) RenderOptions() render.Options {
	return render.Options{
		SearchURL:      c.SearchURL,
		SearchZoom:     c.SearchZoom,
		CellResolution: c.CellResolution,
	}
}
