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
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Output formats understood by WriteTraces.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

type jsonTrace struct {
	Label  string    `json:"label"`
	Start  int       `json:"start"`
	End    int       `json:"end"`
	Times  []float64 `json:"times"`
	Values []float64 `json:"values"`
}

// WriteTraces writes the points of each trace in the given format. JSON
// cannot represent the NaN values of a degenerate signal and fails on them.
func WriteTraces(w io.Writer, format string, traces []Trace) error {
	switch format {
	case FormatText:
		return writeText(w, traces)
	case FormatCSV:
		return writeCSV(w, traces)
	case FormatJSON:
		out := make([]jsonTrace, len(traces))
		for i, tr := range traces {
			out[i] = jsonTrace{
				Label:  tr.Label,
				Start:  tr.Window.Start,
				End:    tr.Window.End,
				Times:  tr.Times(),
				Values: tr.Window.Values,
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown output format %q (must be text, csv or json)", format)
	}
}

func writeText(w io.Writer, traces []Trace) error {
	for _, tr := range traces {
		if _, err := fmt.Fprintf(w, "%s [%d, %d) %d points\n", tr.Label, tr.Window.Start, tr.Window.End, len(tr.Window.Values)); err != nil {
			return err
		}
		times := tr.Times()
		for i, v := range tr.Window.Values {
			if _, err := fmt.Fprintf(w, "%10.4f %g\n", times[i], v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeCSV(w io.Writer, traces []Trace) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"label", "time", "value"}); err != nil {
		return err
	}
	for _, tr := range traces {
		times := tr.Times()
		for i, v := range tr.Window.Values {
			err := cw.Write([]string{
				tr.Label,
				strconv.FormatFloat(times[i], 'f', -1, 64),
				strconv.FormatFloat(v, 'f', -1, 64),
			})
			if err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
