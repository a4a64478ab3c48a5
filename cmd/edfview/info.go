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
	"path/filepath"

	"github.com/OpenPSG/edfview/internal/render"
	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Show the header and signal table of a recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.loadRecording(args[0])
			if err != nil {
				return err
			}

			summaries := render.Summarize(rec)
			if a.cfg.Logging.Verbose {
				for _, s := range summaries {
					if s.MeanErr != nil {
						log.Printf("edf: signal %d %q: %v", s.Index, s.Signal.Label, s.MeanErr)
						continue
					}
					log.Printf("edf: signal %d %q: mean %g %s over %d samples",
						s.Index, s.Signal.Label, s.Mean, s.Signal.PhysicalDimension, s.Samples)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.HeaderBlock(filepath.Base(args[0]), rec.Header))
			fmt.Fprintln(out, render.ChannelTable(summaries))
			return nil
		},
	}
}
