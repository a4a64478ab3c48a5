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
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// fixedHeaderSize is the size of the part of the header that does not
	// depend on the number of signals.
	fixedHeaderSize = 256
	// signalHeaderSize is the number of header bytes used by each signal.
	signalHeaderSize = 256
)

type fieldKind int

const (
	textField fieldKind = iota
	intField
	floatField
)

// field describes an ASCII header field. For signal fields offset is
// relative to the start of the signal block and is multiplied by the
// signal count, since each field is stored as one array across all signals.
type field struct {
	name   string
	offset int
	width  int
	kind   fieldKind
}

var (
	versionField      = field{"version", 0, 8, textField}
	patientField      = field{"patient identification", 8, 80, textField}
	recordingField    = field{"recording identification", 88, 80, textField}
	startDateField    = field{"start date", 168, 8, textField}
	startTimeField    = field{"start time", 176, 8, textField}
	headerBytesField  = field{"header bytes", 184, 8, intField}
	reservedField     = field{"reserved", 192, 44, textField}
	dataRecordsField  = field{"number of data records", 236, 8, intField}
	durationField     = field{"data record duration", 244, 8, floatField}
	signalCountField  = field{"number of signals", 252, 4, intField}
	labelField        = field{"label", 0, 16, textField}
	transducerField   = field{"transducer type", 16, 80, textField}
	dimensionField    = field{"physical dimension", 96, 8, textField}
	physicalMinField  = field{"physical minimum", 104, 8, floatField}
	physicalMaxField  = field{"physical maximum", 112, 8, floatField}
	digitalMinField   = field{"digital minimum", 120, 8, intField}
	digitalMaxField   = field{"digital maximum", 128, 8, intField}
	prefilteringField = field{"prefiltering", 136, 80, textField}
	samplesField      = field{"samples per record", 216, 8, intField}
	signalResField    = field{"signal reserved", 224, 32, textField}
)

// headerFields and signalFields list the header layout in file order.
var (
	headerFields = []field{
		versionField, patientField, recordingField, startDateField, startTimeField,
		headerBytesField, reservedField, dataRecordsField, durationField, signalCountField,
	}
	signalFields = []field{
		labelField, transducerField, dimensionField, physicalMinField, physicalMaxField,
		digitalMinField, digitalMaxField, prefilteringField, samplesField, signalResField,
	}
)

// bytes returns the raw bytes of a fixed header field.
func (f field) bytes(buf []byte) []byte {
	return buf[f.offset : f.offset+f.width]
}

// signalBytes returns the raw bytes of a signal field for signal i out of ns.
func (f field) signalBytes(buf []byte, ns, i int) []byte {
	start := fixedHeaderSize + f.offset*ns + f.width*i
	return buf[start : start+f.width]
}

func readText(b []byte) string {
	return strings.TrimSpace(string(b))
}

func readInt(f field, b []byte) (int, error) {
	i, err := strconv.Atoi(readText(b))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedHeader, f.name, string(b))
	}
	return i, nil
}

func readFloat(f field, b []byte) (float64, error) {
	v, err := strconv.ParseFloat(readText(b), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedHeader, f.name, string(b))
	}
	return v, nil
}

// parseHeader parses the fixed and per-signal header of an EDF buffer.
func parseHeader(buf []byte) (*Header, error) {
	if len(buf) < fixedHeaderSize {
		return nil, fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncatedData, fixedHeaderSize, len(buf))
	}

	signalCount, err := readInt(signalCountField, signalCountField.bytes(buf))
	if err != nil {
		return nil, err
	}
	if signalCount < 1 {
		return nil, fmt.Errorf("%w: %s %d", ErrMalformedHeader, signalCountField.name, signalCount)
	}

	dataRecords, err := readInt(dataRecordsField, dataRecordsField.bytes(buf))
	if err != nil {
		return nil, err
	}
	if dataRecords < 0 {
		return nil, fmt.Errorf("%w: %s %d", ErrMalformedHeader, dataRecordsField.name, dataRecords)
	}

	seconds, err := readFloat(durationField, durationField.bytes(buf))
	if err != nil {
		return nil, err
	}
	// NaN and Inf parse as floats; the duration must also fit a time.Duration
	// and not round down to zero.
	if !(seconds > 0) || seconds >= float64(math.MaxInt64)/float64(time.Second) {
		return nil, fmt.Errorf("%w: %s %g", ErrMalformedHeader, durationField.name, seconds)
	}
	duration := time.Duration(seconds * float64(time.Second))
	if duration <= 0 {
		return nil, fmt.Errorf("%w: %s %g", ErrMalformedHeader, durationField.name, seconds)
	}

	hdr := &Header{
		Version:            Version(readText(versionField.bytes(buf))),
		PatientID:          readText(patientField.bytes(buf)),
		RecordingID:        readText(recordingField.bytes(buf)),
		StartTime:          parseStartTime(startDateField.bytes(buf), startTimeField.bytes(buf)),
		HeaderBytes:        fixedHeaderSize + signalHeaderSize*signalCount,
		Reserved:           readText(reservedField.bytes(buf)),
		DataRecords:        dataRecords,
		DataRecordDuration: duration,
		SignalCount:        signalCount,
	}

	if len(buf) < hdr.HeaderBytes {
		return nil, fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncatedData, hdr.HeaderBytes, len(buf))
	}

	hdr.Signals = make([]Signal, signalCount)
	for i := range hdr.Signals {
		if err := parseSignal(buf, signalCount, i, &hdr.Signals[i]); err != nil {
			return nil, fmt.Errorf("signal %d: %w", i, err)
		}
	}

	return hdr, nil
}

func parseSignal(buf []byte, ns, i int, sig *Signal) error {
	var err error

	sig.Label = readText(labelField.signalBytes(buf, ns, i))
	sig.TransducerType = readText(transducerField.signalBytes(buf, ns, i))
	sig.PhysicalDimension = readText(dimensionField.signalBytes(buf, ns, i))
	sig.Prefiltering = readText(prefilteringField.signalBytes(buf, ns, i))
	sig.Reserved = readText(signalResField.signalBytes(buf, ns, i))

	if sig.PhysicalMin, err = readFloat(physicalMinField, physicalMinField.signalBytes(buf, ns, i)); err != nil {
		return err
	}
	if sig.PhysicalMax, err = readFloat(physicalMaxField, physicalMaxField.signalBytes(buf, ns, i)); err != nil {
		return err
	}
	if sig.DigitalMin, err = readInt(digitalMinField, digitalMinField.signalBytes(buf, ns, i)); err != nil {
		return err
	}
	if sig.DigitalMax, err = readInt(digitalMaxField, digitalMaxField.signalBytes(buf, ns, i)); err != nil {
		return err
	}
	if sig.SamplesPerRecord, err = readInt(samplesField, samplesField.signalBytes(buf, ns, i)); err != nil {
		return err
	}
	if sig.SamplesPerRecord < 0 {
		return fmt.Errorf("%w: %s %d", ErrMalformedHeader, samplesField.name, sig.SamplesPerRecord)
	}

	return nil
}

// parseStartTime combines the dd.mm.yy and hh.mm.ss header fields. The
// start time is not needed for decoding, so unreadable values give the
// zero time rather than an error.
func parseStartTime(date, clock []byte) time.Time {
	startDate, err := time.Parse("02.01.06", readText(date))
	if err != nil {
		return time.Time{}
	}
	startTime, err := time.Parse("15.04.05", readText(clock))
	if err != nil {
		return time.Time{}
	}
	return time.Date(startDate.Year(), startDate.Month(), startDate.Day(),
		startTime.Hour(), startTime.Minute(), startTime.Second(), 0, time.UTC)
}
