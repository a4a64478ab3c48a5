// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// edfview inspects EDF recordings and renders windows of their signals.
package main

import (
	"log"
	"os"

	edf "github.com/OpenPSG/edfview"
	"github.com/OpenPSG/edfview/internal/config"
	"github.com/spf13/cobra"
)

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"budget":   "view.budget",
	"span":     "view.span",
	"start":    "view.start_seconds",
	"channels": "view.channels",
	"width":    "plot.width",
	"height":   "plot.height",
	"output":   "plot.output",
	"verbose":  "logging.verbose",
}

// app holds the state shared by one command tree.
type app struct {
	cfgFile string         // Configuration file path
	cfg     *config.Config // Loaded before any subcommand runs
}

func newRootCmd() *cobra.Command {
	a := &app{}
	def := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "edfview",
		Short: "Inspect and render EDF biosignal recordings",
		Long: `edfview decodes European Data Format (EDF) recordings and shows a
window of each signal, reduced to a bounded number of points.

The window starts --start seconds into the recording and covers --span
samples of each signal (default: --budget). Windows longer than --budget
are decimated by keeping every n-th sample.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.loadConfig,
	}

	cmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./edfview.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log per-signal diagnostics")
	cmd.PersistentFlags().IntP("budget", "b", def.View.Budget, "maximum points per signal")
	cmd.PersistentFlags().Int("span", def.View.Span, "samples visible per signal (0 means the budget)")
	cmd.PersistentFlags().Float64P("start", "s", def.View.StartSeconds, "window start in seconds")
	cmd.PersistentFlags().IntSlice("channels", nil, "signal indices to show (default all)")

	cmd.AddCommand(newInfoCmd(a), newWindowCmd(a), newPlotCmd(a), newVersionCmd())
	return cmd
}

// loadConfig merges the config file, environment and the flags of the
// executing command into a.cfg.
func (a *app) loadConfig(cmd *cobra.Command, args []string) error {
	v, err := config.New(a.cfgFile)
	if err != nil {
		return err
	}

	for name, key := range flagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return err
			}
		}
	}

	a.cfg, err = config.Load(v)
	return err
}

// loadRecording reads a recording and logs anything a viewer should know
// before trusting its time axis.
func (a *app) loadRecording(name string) (*edf.Recording, error) {
	rec, err := edf.ReadFile(name)
	if err != nil {
		return nil, err
	}

	hdr := rec.Header
	if a.cfg.Logging.Verbose {
		log.Printf("edf: %s: %d signals, %d records of %s", name, hdr.SignalCount, hdr.DataRecords, hdr.DataRecordDuration)
	}
	for _, i := range hdr.RateMismatch() {
		log.Printf("edf: signal %d %q has %d samples per record, signal 0 has %d",
			i, hdr.Signals[i].Label, hdr.Signals[i].SamplesPerRecord, hdr.Signals[0].SamplesPerRecord)
	}

	return rec, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("edfview: ")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
