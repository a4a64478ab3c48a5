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
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	edf "github.com/OpenPSG/edfview"
	"github.com/wcharczuk/go-chart/v2"
)

// traceHeight is the share of a signal's row used by its trace.
const traceHeight = 0.8

// Trace is a decimated window of one signal, ready to draw.
type Trace struct {
	Label  string
	Rate   float64 // Sampling rate in Hz
	Window edf.RenderWindow[float64]
}

// Times returns the time in seconds of each point of the trace.
func (tr Trace) Times() []float64 {
	n := len(tr.Window.Values)
	stride := 1
	if n > 0 && tr.Window.End-tr.Window.Start > n {
		stride = (tr.Window.End - tr.Window.Start) / n
	}

	times := make([]float64, n)
	for i := range times {
		times[i] = float64(tr.Window.Start+i*stride) / tr.Rate
	}
	return times
}

// Traces builds one trace per channel, windowed at offset.
func Traces(rec *edf.Recording, channels []int, offset time.Duration, w edf.Window) ([]Trace, error) {
	traces := make([]Trace, 0, len(channels))
	for _, ch := range channels {
		win, err := rec.Window(ch, offset, w)
		if err != nil {
			return nil, err
		}

		sig := rec.Header.Signals[ch]
		traces = append(traces, Trace{
			Label:  sig.Label,
			Rate:   float64(sig.SamplesPerRecord) / rec.Header.DataRecordDuration.Seconds(),
			Window: win,
		})
	}
	return traces, nil
}

// Montage draws the traces as a stacked PNG, first trace at the top. Each
// trace is scaled to its own row, so amplitudes are not comparable across
// rows.
func Montage(w io.Writer, traces []Trace, width, height int) error {
	var series []chart.Series
	var ticks []chart.Tick

	for i, tr := range traces {
		row := float64(len(traces) - 1 - i)
		ticks = append(ticks, chart.Tick{Value: row, Label: tr.Label})

		if len(tr.Window.Values) < 2 {
			continue
		}

		series = append(series, chart.ContinuousSeries{
			Name:    tr.Label,
			Style:   chart.Style{StrokeWidth: 1},
			XValues: tr.Times(),
			YValues: normalize(tr.Window.Values, row),
		})
	}

	if len(series) == 0 {
		return errors.New("no signal has enough points to draw")
	}

	graph := chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      chart.XAxis{Name: "Time (s)"},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(len(traces)) - 0.5},
			Ticks: ticks,
		},
		Series: series,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("error rendering montage: %w", err)
	}
	return nil
}

// normalize maps values into a band of height traceHeight centred on row.
// Flat or non-finite windows are drawn on the row centre line.
func normalize(values []float64, row float64) []float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	out := make([]float64, len(values))
	if !(hi > lo) {
		for i := range out {
			out[i] = row
		}
		return out
	}

	mid := (hi + lo) / 2
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out[i] = row
			continue
		}
		out[i] = row + traceHeight*(v-mid)/(hi-lo)
	}
	return out
}
