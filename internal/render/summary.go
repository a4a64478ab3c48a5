// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package render turns decoded recordings into tables, sample dumps and
// PNG montages.
package render

import (
	edf "github.com/OpenPSG/edfview"
)

// ChannelSummary describes one signal of a recording.
type ChannelSummary struct {
	Index   int
	Signal  edf.Signal
	Rate    float64 // Sampling rate in Hz
	Samples int     // Number of decoded samples
	Mean    float64 // Mean physical value, valid when MeanErr is nil
	MeanErr error
}

// Summarize returns a summary of every signal in rec.
func Summarize(rec *edf.Recording) []ChannelSummary {
	seconds := rec.Header.DataRecordDuration.Seconds()

	summaries := make([]ChannelSummary, len(rec.Header.Signals))
	for i, sig := range rec.Header.Signals {
		mean, err := rec.Mean(i)
		summaries[i] = ChannelSummary{
			Index:   i,
			Signal:  sig,
			Rate:    float64(sig.SamplesPerRecord) / seconds,
			Samples: len(rec.Samples[i]),
			Mean:    mean,
			MeanErr: err,
		}
	}
	return summaries
}
