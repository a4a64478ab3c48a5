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
	"github.com/OpenPSG/edfview/internal/render"
	"github.com/spf13/cobra"
)

func newWindowCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "window FILE",
		Short: "Print the decimated window of each signal",
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

			return render.WriteTraces(cmd.OutOrStdout(), format, traces)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", render.FormatText, "output format (text, csv, json)")
	return cmd
}
