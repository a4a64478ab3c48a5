// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package edf

import "time"

type Version string

const (
	// Version0 represents the version of the EDF standard.
	Version0 Version = "0"
)

// Header represents a decoded EDF recording header.
type Header struct {
	Version            Version       // Version of the EDF standard (usually "0")
	PatientID          string        // Identification of the patient
	RecordingID        string        // Identification of the recording session
	StartTime          time.Time     // Start of the recording, zero if the header dates are unreadable
	HeaderBytes        int           // Offset of the first data record
	Reserved           string        // Reserved (EDF+ uses this for "EDF+C"/"EDF+D")
	DataRecords        int           // Number of data records
	DataRecordDuration time.Duration // Duration of a single data record
	SignalCount        int           // Number of signals in each data record
	Signals            []Signal      // Details of each signal, in header order
}

// SamplingRate returns the sampling rate in Hz of the first signal. The
// remaining signals are assumed to share it, see RateMismatch.
func (h *Header) SamplingRate() float64 {
	if len(h.Signals) == 0 {
		return 0
	}
	return float64(h.Signals[0].SamplesPerRecord) / h.DataRecordDuration.Seconds()
}

// TotalDuration returns the length of the whole recording.
func (h *Header) TotalDuration() time.Duration {
	return time.Duration(h.DataRecords) * h.DataRecordDuration
}

// RateMismatch returns the indices of signals whose samples per record
// differ from the first signal's.
func (h *Header) RateMismatch() []int {
	var mismatched []int
	for i := 1; i < len(h.Signals); i++ {
		if h.Signals[i].SamplesPerRecord != h.Signals[0].SamplesPerRecord {
			mismatched = append(mismatched, i)
		}
	}
	return mismatched
}

// recordSize is the size in bytes of one data record. The header field
// widths bound it well below the int64 range.
func (h *Header) recordSize() int64 {
	var n int64
	for _, sig := range h.Signals {
		n += int64(sig.SamplesPerRecord) * 2
	}
	return n
}

// Signal represents the characteristics of each signal in the EDF file.
type Signal struct {
	Label             string  // Label of the signal (e.g., EEG Fpz-Cz)
	TransducerType    string  // Type of transducer used
	PhysicalDimension string  // Physical dimension (e.g., uV, mV)
	PhysicalMin       float64 // Minimum physical value
	PhysicalMax       float64 // Maximum physical value
	DigitalMin        int     // Minimum digital value
	DigitalMax        int     // Maximum digital value
	Prefiltering      string  // Pre-filtering information
	SamplesPerRecord  int     // Number of samples in each data record for this signal
	Reserved          string  // Reserved for future use
}

// SignalMatrix holds the raw digital samples of every signal, indexed by
// signal and then by sample. It is never modified after decoding.
type SignalMatrix [][]int16
