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
	"encoding/binary"
	"fmt"
)

// Decode parses a complete EDF file held in memory. It returns the header,
// whose Signals field lists the signal descriptors in file order, and the
// raw digital samples of every signal.
//
// Decode fails with ErrMalformedHeader if a numeric header field cannot be
// parsed and with ErrTruncatedData if buf is shorter than the header and
// data records it declares. No partial result is returned on failure.
func Decode(buf []byte) (*Header, SignalMatrix, error) {
	hdr, err := parseHeader(buf)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing header: %w", err)
	}

	samples, err := decodeSamples(buf, hdr)
	if err != nil {
		return nil, nil, fmt.Errorf("error decoding data records: %w", err)
	}

	return hdr, samples, nil
}

// decodeSamples deinterleaves the data records that follow the header.
// Within a record each signal occupies SamplesPerRecord consecutive little
// endian int16 values, signals in header order.
func decodeSamples(buf []byte, hdr *Header) (SignalMatrix, error) {
	recordSize := hdr.recordSize()

	// Compare record counts rather than byte counts, which can overflow.
	available := int64(len(buf) - hdr.HeaderBytes)
	if recordSize > 0 && int64(hdr.DataRecords) > available/recordSize {
		return nil, fmt.Errorf("%w: %d data records of %d bytes, have %d bytes after the header",
			ErrTruncatedData, hdr.DataRecords, recordSize, available)
	}

	samples := make(SignalMatrix, hdr.SignalCount)
	for i, sig := range hdr.Signals {
		samples[i] = make([]int16, 0, hdr.DataRecords*sig.SamplesPerRecord)
	}

	if recordSize == 0 {
		return samples, nil
	}

	pos := hdr.HeaderBytes
	for record := 0; record < hdr.DataRecords; record++ {
		for i, sig := range hdr.Signals {
			for n := 0; n < sig.SamplesPerRecord; n++ {
				samples[i] = append(samples[i], int16(binary.LittleEndian.Uint16(buf[pos:])))
				pos += 2
			}
		}
	}

	return samples, nil
}
