// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package edftest builds synthetic EDF files for tests.
package edftest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"time"

	edf "github.com/OpenPSG/edfview"
)

// Encode builds an EDF file from a header and the digital samples of each
// signal. Each signal must hold DataRecords*SamplesPerRecord samples.
// SignalCount and HeaderBytes are derived from hdr.Signals.
func Encode(hdr edf.Header, samples [][]int16) ([]byte, error) {
	if len(samples) != len(hdr.Signals) {
		return nil, fmt.Errorf("expected %d signals, got %d", len(hdr.Signals), len(samples))
	}
	hdr.SignalCount = len(hdr.Signals)
	hdr.HeaderBytes = 256 + hdr.SignalCount*256

	for i, sig := range hdr.Signals {
		if want := hdr.DataRecords * sig.SamplesPerRecord; len(samples[i]) != want {
			return nil, fmt.Errorf("signal %d: expected %d samples, got %d", i, want, len(samples[i]))
		}
	}

	var buf bytes.Buffer
	writeHeader(&buf, &hdr)

	for record := 0; record < hdr.DataRecords; record++ {
		for i, sig := range hdr.Signals {
			n := sig.SamplesPerRecord
			for _, sample := range samples[i][record*n : (record+1)*n] {
				if err := binary.Write(&buf, binary.LittleEndian, sample); err != nil {
					return nil, err
				}
			}
		}
	}

	return buf.Bytes(), nil
}

// MustEncode is like Encode but panics on error.
func MustEncode(hdr edf.Header, samples [][]int16) []byte {
	b, err := Encode(hdr, samples)
	if err != nil {
		panic(err)
	}
	return b
}

// SetField overwrites a space padded ASCII field of an encoded file.
func SetField(b []byte, offset, width int, value string) {
	copy(b[offset:offset+width], fmt.Sprintf("%-*s", width, value))
}

// Digitize converts physical values of sig to digital values.
func Digitize(sig edf.Signal, physical []float64) []int16 {
	out := make([]int16, len(physical))
	for i, p := range physical {
		out[i] = convertPhysicalToDigital(p, sig.PhysicalMin, sig.PhysicalMax, sig.DigitalMin, sig.DigitalMax)
	}
	return out
}

// Sine returns n digital samples of a sine wave with the given period (in
// samples) and amplitude.
func Sine(n int, period float64, amplitude int16) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(math.Round(float64(amplitude) * math.Sin(2*math.Pi*float64(i)/period)))
	}
	return out
}

func writeHeader(buf *bytes.Buffer, hdr *edf.Header) {
	fmt.Fprintf(buf, "%-8s", hdr.Version)
	fmt.Fprintf(buf, "%-80s", hdr.PatientID)
	fmt.Fprintf(buf, "%-80s", hdr.RecordingID)

	// Write start date and time
	fmt.Fprintf(buf, "%-8s", hdr.StartTime.Format("02.01.06"))
	fmt.Fprintf(buf, "%-8s", hdr.StartTime.Format("15.04.05"))

	fmt.Fprintf(buf, "%-8d", hdr.HeaderBytes)
	fmt.Fprintf(buf, "%-44s", hdr.Reserved)
	fmt.Fprintf(buf, "%-8d", hdr.DataRecords)
	fmt.Fprintf(buf, "%-8s", formatDuration(hdr.DataRecordDuration))
	fmt.Fprintf(buf, "%-4d", hdr.SignalCount)

	for _, signal := range hdr.Signals {
		fmt.Fprintf(buf, "%-16s", signal.Label)
	}
	for _, signal := range hdr.Signals {
		fmt.Fprintf(buf, "%-80s", signal.TransducerType)
	}
	for _, signal := range hdr.Signals {
		fmt.Fprintf(buf, "%-8s", signal.PhysicalDimension)
	}
	for _, signal := range hdr.Signals {
		buf.WriteString(formatPhysicalValue(signal.PhysicalMin))
	}
	for _, signal := range hdr.Signals {
		buf.WriteString(formatPhysicalValue(signal.PhysicalMax))
	}
	for _, signal := range hdr.Signals {
		fmt.Fprintf(buf, "%-8d", signal.DigitalMin)
	}
	for _, signal := range hdr.Signals {
		fmt.Fprintf(buf, "%-8d", signal.DigitalMax)
	}
	for _, signal := range hdr.Signals {
		fmt.Fprintf(buf, "%-80s", signal.Prefiltering)
	}
	for _, signal := range hdr.Signals {
		fmt.Fprintf(buf, "%-8d", signal.SamplesPerRecord)
	}
	for _, signal := range hdr.Signals {
		fmt.Fprintf(buf, "%-32s", signal.Reserved)
	}
}

// convertPhysicalToDigital converts a physical value to a digital value using the calibration factors.
func convertPhysicalToDigital(physical float64, pmin, pmax float64, dmin, dmax int) int16 {
	if pmax == pmin {
		return 0 // Avoid division by zero
	}
	digital := ((physical - pmin) * (float64(dmax - dmin)) / (pmax - pmin)) + float64(dmin)
	return int16(math.Round(digital))
}

func formatDuration(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

func formatPhysicalValue(val float64) string {
	// Try with 2 decimal places
	s := fmt.Sprintf("%.2f", val)
	if len(s) > 8 {
		// Fall back to no decimal
		s = fmt.Sprintf("%.0f", val)
	}
	return fmt.Sprintf("%-8s", s)
}
