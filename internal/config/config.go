// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package config provides configuration structures and defaults for edfview.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	edf "github.com/OpenPSG/edfview"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	View    ViewConfig    `mapstructure:"view"`    // Window selection
	Plot    PlotConfig    `mapstructure:"plot"`    // PNG rendering
	Logging LoggingConfig `mapstructure:"logging"` // Logging
}

// ViewConfig selects which part of a recording is shown.
type ViewConfig struct {
	Budget       int     `mapstructure:"budget"`        // Maximum points drawn per signal
	Span         int     `mapstructure:"span"`          // Samples visible per signal, 0 means Budget
	StartSeconds float64 `mapstructure:"start_seconds"` // Scroll offset from the start of the recording
	Channels     []int   `mapstructure:"channels"`      // Signal indices to show, empty means all
}

// PlotConfig contains PNG rendering parameters.
type PlotConfig struct {
	Width  int    `mapstructure:"width"`  // Image width in pixels
	Height int    `mapstructure:"height"` // Image height in pixels
	Output string `mapstructure:"output"` // Output file path
}

// LoggingConfig contains logging configuration parameters.
type LoggingConfig struct {
	Verbose bool `mapstructure:"verbose"` // Log per-signal diagnostics
}

// DefaultConfig returns a configuration with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		View: ViewConfig{
			Budget:       1000, // Enough points for a full-width trace
			Span:         0,    // Same as the budget
			StartSeconds: 0,    // Start of the recording
		},
		Plot: PlotConfig{
			Width:  1600,
			Height: 900,
			Output: "edfview.png",
		},
	}
}

// New returns a viper instance with the defaults registered. If cfgFile is
// empty edfview.yaml is searched for in the working directory and in
// $HOME/.config/edfview; a missing file is not an error. Environment
// variables prefixed with EDFVIEW_ override file values, e.g.
// EDFVIEW_VIEW_BUDGET.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("view.budget", def.View.Budget)
	v.SetDefault("view.span", def.View.Span)
	v.SetDefault("view.start_seconds", def.View.StartSeconds)
	v.SetDefault("view.channels", def.View.Channels)
	v.SetDefault("plot.width", def.Plot.Width)
	v.SetDefault("plot.height", def.Plot.Height)
	v.SetDefault("plot.output", def.Plot.Output)
	v.SetDefault("logging.verbose", def.Logging.Verbose)

	v.SetEnvPrefix("EDFVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		return v, nil
	}

	v.SetConfigName("edfview")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "edfview"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return v, nil
}

// Load decodes the configuration held by v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration can be used to render a window.
func (c *Config) Validate() error {
	if c.View.Budget < 1 {
		return fmt.Errorf("invalid view budget: %d (must be at least 1)", c.View.Budget)
	}
	if c.View.Span < 0 {
		return fmt.Errorf("invalid view span: %d (must not be negative)", c.View.Span)
	}
	if c.View.StartSeconds < 0 {
		return fmt.Errorf("invalid view start: %gs (must not be negative)", c.View.StartSeconds)
	}
	for _, ch := range c.View.Channels {
		if ch < 0 {
			return fmt.Errorf("invalid channel index: %d", ch)
		}
	}
	if c.Plot.Width < 1 || c.Plot.Height < 1 {
		return fmt.Errorf("invalid plot size: %dx%d", c.Plot.Width, c.Plot.Height)
	}
	return nil
}

// Window returns the span and budget used for every signal.
func (c *Config) Window() edf.Window {
	span := c.View.Span
	if span == 0 {
		span = c.View.Budget
	}
	return edf.Window{Span: span, Budget: c.View.Budget}
}

// Start returns the scroll offset.
func (c *Config) Start() time.Duration {
	return time.Duration(c.View.StartSeconds * float64(time.Second))
}

// SelectChannels returns the configured signal indices, or all signals of
// hdr when none are configured.
func (c *Config) SelectChannels(hdr *edf.Header) ([]int, error) {
	if len(c.View.Channels) == 0 {
		all := make([]int, hdr.SignalCount)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	for _, ch := range c.View.Channels {
		if ch >= hdr.SignalCount {
			return nil, fmt.Errorf("%w: %d (recording has %d signals)", edf.ErrChannelIndex, ch, hdr.SignalCount)
		}
	}
	return c.View.Channels, nil
}
