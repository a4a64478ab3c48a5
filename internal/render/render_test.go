// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package render_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"image/png"
	"strings"
	"testing"
	"time"

	edf "github.com/OpenPSG/edfview"
	"github.com/OpenPSG/edfview/internal/edftest"
	"github.com/OpenPSG/edfview/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecording(t *testing.T) *edf.Recording {
	t.Helper()

	hdr := edf.Header{
		Version:            edf.Version0,
		PatientID:          "Patient X",
		RecordingID:        "Recording 1",
		StartTime:          time.Date(2024, 3, 1, 22, 15, 0, 0, time.UTC),
		DataRecords:        10,
		DataRecordDuration: time.Second,
		Signals: []edf.Signal{
			{Label: "EEG Fpz-Cz", PhysicalDimension: "uV", PhysicalMin: -500, PhysicalMax: 500, DigitalMin: -2048, DigitalMax: 2047, SamplesPerRecord: 100},
			{Label: "Resp", PhysicalDimension: "mV", PhysicalMin: -1, PhysicalMax: 1, DigitalMin: -100, DigitalMax: 100, SamplesPerRecord: 10},
			{Label: "Marker", PhysicalMin: 0, PhysicalMax: 1, DigitalMin: 0, DigitalMax: 0, SamplesPerRecord: 1},
		},
	}

	b := edftest.MustEncode(hdr, [][]int16{
		edftest.Sine(1000, 50, 2000),
		edftest.Sine(100, 25, 100),
		make([]int16, 10),
	})

	rec, err := edf.Read(bytes.NewReader(b))
	require.NoError(t, err)
	return rec
}

func TestSummarize(t *testing.T) {
	summaries := render.Summarize(testRecording(t))
	require.Len(t, summaries, 3)

	assert.Equal(t, 100.0, summaries[0].Rate)
	assert.Equal(t, 1000, summaries[0].Samples)
	require.NoError(t, summaries[0].MeanErr)
	assert.InDelta(t, 0.0, summaries[0].Mean, 0.5)

	assert.Equal(t, 10.0, summaries[1].Rate)
	assert.ErrorIs(t, summaries[2].MeanErr, edf.ErrDegenerateCalibration)
}

func TestHeaderBlockAndChannelTable(t *testing.T) {
	rec := testRecording(t)

	block := render.HeaderBlock("test.edf", rec.Header)
	assert.Contains(t, block, "test.edf")
	assert.Contains(t, block, "Patient X")
	assert.Contains(t, block, "2024-03-01 22:15:00")
	assert.Contains(t, block, "10s")

	tbl := render.ChannelTable(render.Summarize(rec))
	for _, want := range []string{"EEG Fpz-Cz", "Resp", "Marker", "-500..500", "-2048..2047", "n/a"} {
		assert.Contains(t, tbl, want)
	}
}

func TestTraces(t *testing.T) {
	rec := testRecording(t)

	traces, err := render.Traces(rec, []int{0, 1}, 2*time.Second, edf.Window{Span: 400, Budget: 100})
	require.NoError(t, err)
	require.Len(t, traces, 2)

	eeg := traces[0]
	assert.Equal(t, "EEG Fpz-Cz", eeg.Label)
	assert.Equal(t, 200, eeg.Window.Start)
	assert.Equal(t, 600, eeg.Window.End)
	require.Len(t, eeg.Window.Values, 100)

	times := eeg.Times()
	assert.Equal(t, 2.0, times[0])
	assert.InDelta(t, 2.04, times[1], 1e-9)

	// Resp has 100 samples, all inside the span.
	resp := traces[1]
	assert.Equal(t, 0, resp.Window.Start)
	assert.Len(t, resp.Window.Values, 100)
	assert.InDelta(t, 9.9, resp.Times()[99], 1e-9)

	_, err = render.Traces(rec, []int{3}, 0, edf.Window{Span: 10, Budget: 10})
	assert.ErrorIs(t, err, edf.ErrChannelIndex)
}

func TestMontage(t *testing.T) {
	rec := testRecording(t)

	traces, err := render.Traces(rec, []int{0, 1, 2}, 0, edf.Window{Span: 1000, Budget: 200})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Montage(&buf, traces, 640, 480))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestMontageNothingToDraw(t *testing.T) {
	var buf bytes.Buffer
	err := render.Montage(&buf, []render.Trace{{Label: "Empty", Rate: 1}}, 640, 480)
	require.Error(t, err)
}

func TestWriteTraces(t *testing.T) {
	traces := []render.Trace{{
		Label:  "EEG",
		Rate:   10,
		Window: edf.RenderWindow[float64]{Start: 10, End: 14, Values: []float64{1.5, -2, 0, 4}},
	}}

	var text bytes.Buffer
	require.NoError(t, render.WriteTraces(&text, render.FormatText, traces))
	lines := strings.Split(strings.TrimSpace(text.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "EEG [10, 14) 4 points", lines[0])
	assert.Equal(t, "    1.0000 1.5", lines[1])

	var csvOut bytes.Buffer
	require.NoError(t, render.WriteTraces(&csvOut, render.FormatCSV, traces))
	records, err := csv.NewReader(&csvOut).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"label", "time", "value"}, records[0])
	assert.Equal(t, []string{"EEG", "1.3", "4"}, records[4])

	var jsonOut bytes.Buffer
	require.NoError(t, render.WriteTraces(&jsonOut, render.FormatJSON, traces))
	var decoded []struct {
		Label  string    `json:"label"`
		Start  int       `json:"start"`
		Values []float64 `json:"values"`
	}
	require.NoError(t, json.Unmarshal(jsonOut.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, 10, decoded[0].Start)
	assert.Equal(t, []float64{1.5, -2, 0, 4}, decoded[0].Values)

	assert.Error(t, render.WriteTraces(&text, "xml", traces))
}
