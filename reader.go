// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package edf

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Recording is a fully decoded EDF file.
type Recording struct {
	Header  *Header
	Samples SignalMatrix
}

// Read reads an entire EDF file from r and decodes it.
func Read(r io.Reader) (*Recording, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading recording: %w", err)
	}

	hdr, samples, err := Decode(buf)
	if err != nil {
		return nil, err
	}

	return &Recording{Header: hdr, Samples: samples}, nil
}

// ReadFile reads and decodes the named EDF file.
func ReadFile(name string) (*Recording, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Signal returns the descriptor of the signal at index i.
func (rec *Recording) Signal(i int) (Signal, error) {
	if i < 0 || i >= len(rec.Header.Signals) {
		return Signal{}, fmt.Errorf("%w: %d", ErrChannelIndex, i)
	}
	return rec.Header.Signals[i], nil
}

// Physical returns all samples of signal i in physical units.
func (rec *Recording) Physical(i int) ([]float64, error) {
	sig, err := rec.Signal(i)
	if err != nil {
		return nil, err
	}
	return sig.Physical(rec.Samples[i]), nil
}

// Mean returns the mean physical value of signal i.
func (rec *Recording) Mean(i int) (float64, error) {
	sig, err := rec.Signal(i)
	if err != nil {
		return 0, err
	}
	return MeanPhysicalValue(i, rec.Samples, sig)
}

// Window returns a decimated window of signal i in physical units. The
// offset is converted to a sample index using the signal's own rate.
func (rec *Recording) Window(i int, offset time.Duration, w Window) (RenderWindow[float64], error) {
	sig, err := rec.Signal(i)
	if err != nil {
		return RenderWindow[float64]{}, err
	}

	rate := float64(sig.SamplesPerRecord) / rec.Header.DataRecordDuration.Seconds()
	start := int(offset.Seconds() * rate)

	raw := Apply(w, rec.Samples[i], start)
	return RenderWindow[float64]{
		Start:  raw.Start,
		End:    raw.End,
		Values: sig.Physical(raw.Values),
	}, nil
}
