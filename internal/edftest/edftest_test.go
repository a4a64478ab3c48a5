// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package edftest_test

import (
	"testing"
	"time"

	edf "github.com/OpenPSG/edfview"
	"github.com/OpenPSG/edfview/internal/edftest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	hdr := edf.Header{
		Version:            edf.Version0,
		PatientID:          "Patient X",
		RecordingID:        "Recording 1",
		StartTime:          time.Date(2024, 3, 1, 22, 15, 0, 0, time.UTC),
		DataRecords:        2,
		DataRecordDuration: time.Second,
		Signals: []edf.Signal{
			{Label: "EEG Fpz-Cz", PhysicalMin: -500, PhysicalMax: 500, DigitalMin: -2048, DigitalMax: 2047, SamplesPerRecord: 2},
			{Label: "Resp", PhysicalMin: -1, PhysicalMax: 1, DigitalMin: -32768, DigitalMax: 32767, SamplesPerRecord: 1},
		},
	}

	b, err := edftest.Encode(hdr, [][]int16{{1, 2, 3, 4}, {-1, -2}})
	require.NoError(t, err)

	// 256 fixed bytes, 256 per signal, 3 samples per record of 2 bytes.
	require.Len(t, b, 256+2*256+2*3*2)

	assert.Equal(t, "0       ", string(b[0:8]))
	assert.Equal(t, "01.03.24", string(b[168:176]))
	assert.Equal(t, "22.15.00", string(b[176:184]))
	assert.Equal(t, "768     ", string(b[184:192]))
	assert.Equal(t, "2       ", string(b[236:244]))
	assert.Equal(t, "1       ", string(b[244:252]))
	assert.Equal(t, "2   ", string(b[252:256]))
	assert.Equal(t, "Resp            ", string(b[256+16:256+32]))

	// First record: signal 0 samples 1 and 2, then signal 1 sample -1.
	assert.Equal(t, []byte{1, 0, 2, 0, 0xff, 0xff}, b[768:774])
}

func TestEncodeSampleCountMismatch(t *testing.T) {
	hdr := edf.Header{
		DataRecords:        3,
		DataRecordDuration: time.Second,
		Signals:            []edf.Signal{{Label: "A", DigitalMin: -1, DigitalMax: 1, SamplesPerRecord: 1}},
	}

	_, err := edftest.Encode(hdr, [][]int16{{1, 2}})
	require.Error(t, err)

	_, err = edftest.Encode(hdr, nil)
	require.Error(t, err)
}

func TestSetField(t *testing.T) {
	b := []byte("12345678")
	edftest.SetField(b, 2, 4, "ab")
	assert.Equal(t, "12ab  78", string(b))
}

func TestDigitize(t *testing.T) {
	sig := edf.Signal{PhysicalMin: -500, PhysicalMax: 500, DigitalMin: -2048, DigitalMax: 2047}

	digital := edftest.Digitize(sig, []float64{-500, 0, 500})
	// 0 uV lands half way between two codes and rounds away from zero.
	assert.Equal(t, []int16{-2048, -1, 2047}, digital)

	for i, d := range digital {
		assert.InDelta(t, []float64{-500, 0, 500}[i], sig.ToPhysical(d), 0.25)
	}
}

func TestSine(t *testing.T) {
	s := edftest.Sine(8, 8, 100)
	assert.Equal(t, []int16{0, 71, 100, 71, 0, -71, -100, -71}, s)
}
