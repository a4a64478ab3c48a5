// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package edf_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	edf "github.com/OpenPSG/edfview"
	"github.com/OpenPSG/edfview/internal/edftest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	hdr := testHeader(60, 100, 10)
	eeg := edftest.Sine(6000, 100, 2000)
	resp := edftest.Digitize(hdr.Signals[1], make([]float64, 600))

	name := filepath.Join(t.TempDir(), "test.edf")
	require.NoError(t, os.WriteFile(name, edftest.MustEncode(hdr, [][]int16{eeg, resp}), 0o644))

	rec, err := edf.ReadFile(name)
	require.NoError(t, err)

	assert.Equal(t, 2, rec.Header.SignalCount)
	assert.Equal(t, time.Minute, rec.Header.TotalDuration())
	assert.Equal(t, eeg, []int16(rec.Samples[0]))

	physical, err := rec.Physical(0)
	require.NoError(t, err)
	require.Len(t, physical, 6000)
	assert.InDelta(t, 0.0, physical[0], 0.2)

	mean, err := rec.Mean(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, mean, 0.5)

	_, err = rec.Mean(2)
	assert.ErrorIs(t, err, edf.ErrChannelIndex)
}

func TestReadFileMissing(t *testing.T) {
	_, err := edf.ReadFile(filepath.Join(t.TempDir(), "missing.edf"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestReadMalformed(t *testing.T) {
	b := edftest.MustEncode(testHeader(1, 1), [][]int16{{0}})
	edftest.SetField(b, 252, 4, "")

	_, err := edf.Read(bytes.NewReader(b))
	assert.ErrorIs(t, err, edf.ErrMalformedHeader)
}

func TestRecordingWindow(t *testing.T) {
	hdr := testHeader(10, 100, 10)
	hdr.Signals[0].DigitalMin, hdr.Signals[0].DigitalMax = 0, 1000
	hdr.Signals[0].PhysicalMin, hdr.Signals[0].PhysicalMax = 0, 1000

	eeg := ramp(1000)
	resp := ramp(100)

	rec, err := edf.Read(bytes.NewReader(edftest.MustEncode(hdr, [][]int16{eeg, resp})))
	require.NoError(t, err)

	w := edf.Window{Span: 200, Budget: 50}

	// 2 s into a 100 Hz signal is sample 200; 200 samples into 50 points.
	win, err := rec.Window(0, 2*time.Second, w)
	require.NoError(t, err)
	assert.Equal(t, 200, win.Start)
	assert.Equal(t, 400, win.End)
	require.Len(t, win.Values, 50)
	assert.Equal(t, 200.0, win.Values[0])
	assert.Equal(t, 204.0, win.Values[1])

	// The whole 10 Hz signal is shorter than the span, so the window covers it all.
	win, err = rec.Window(1, 2*time.Second, w)
	require.NoError(t, err)
	assert.Equal(t, 0, win.Start)
	assert.Equal(t, 100, win.End)
	assert.Len(t, win.Values, 50)

	_, err = rec.Window(5, 0, w)
	assert.ErrorIs(t, err, edf.ErrChannelIndex)
}
