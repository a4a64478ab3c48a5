// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package render

import (
	"fmt"
	"strconv"
	"strings"

	edf "github.com/OpenPSG/edfview"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(12)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// HeaderBlock formats the recording level header fields.
func HeaderBlock(name string, hdr *edf.Header) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(name))
	sb.WriteString("\n")

	row := func(key, value string) {
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(key), value))
		sb.WriteString("\n")
	}

	row("Version", string(hdr.Version))
	row("Patient", hdr.PatientID)
	row("Recording", hdr.RecordingID)
	if hdr.StartTime.IsZero() {
		row("Start", "unknown")
	} else {
		row("Start", hdr.StartTime.Format("2006-01-02 15:04:05"))
	}
	row("Records", fmt.Sprintf("%d x %s", hdr.DataRecords, hdr.DataRecordDuration))
	row("Duration", hdr.TotalDuration().String())
	row("Signals", strconv.Itoa(hdr.SignalCount))
	row("Rate", fmt.Sprintf("%g Hz", hdr.SamplingRate()))

	return sb.String()
}

// ChannelTable formats signal summaries as a table.
func ChannelTable(summaries []ChannelSummary) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Label", "Unit", "Physical", "Digital", "Samples/rec", "Rate (Hz)", "Mean").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, s := range summaries {
		mean := "n/a"
		if s.MeanErr == nil {
			mean = strconv.FormatFloat(s.Mean, 'f', 3, 64)
		}

		t.Row(
			strconv.Itoa(s.Index),
			s.Signal.Label,
			s.Signal.PhysicalDimension,
			fmt.Sprintf("%g..%g", s.Signal.PhysicalMin, s.Signal.PhysicalMax),
			fmt.Sprintf("%d..%d", s.Signal.DigitalMin, s.Signal.DigitalMax),
			strconv.Itoa(s.Signal.SamplesPerRecord),
			fmt.Sprintf("%g", s.Rate),
			mean,
		)
	}

	return t.String()
}
