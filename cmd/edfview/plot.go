// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/OpenPSG/edfview/internal/config"
	"github.com/OpenPSG/edfview/internal/render"
	"github.com/spf13/cobra"
)

func newPlotCmd(a *app) *cobra.Command {
	def := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "Render the signal windows as a stacked PNG montage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.loadRecording(args[0])
			if err != nil {
				return err
			}

			channels, err := a.cfg.SelectChannels(rec.Header)
			if err != nil {
				return err
			}

			traces, err := render.Traces(rec, channels, a.cfg.Start(), a.cfg.Window())
			if err != nil {
				return err
			}

			f, err := os.Create(a.cfg.Plot.Output)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}

			if err := render.Montage(f, traces, a.cfg.Plot.Width, a.cfg.Plot.Height); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			if a.cfg.Logging.Verbose {
				log.Printf("plot: wrote %d signals to %s", len(traces), a.cfg.Plot.Output)
			}
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", def.Plot.Output, "output PNG file")
	cmd.Flags().Int("width", def.Plot.Width, "image width in pixels")
	cmd.Flags().Int("height", def.Plot.Height, "image height in pixels")
	return cmd
}
