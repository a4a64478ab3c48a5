// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package edf

import "errors"

var (
	// ErrMalformedHeader is returned when a required header field cannot be parsed.
	ErrMalformedHeader = errors.New("malformed header")
	// ErrTruncatedData is returned when the buffer is shorter than its header implies.
	ErrTruncatedData = errors.New("truncated data")
	// ErrDegenerateCalibration is returned when a signal's digital minimum
	// equals its digital maximum.
	ErrDegenerateCalibration = errors.New("degenerate calibration")
	// ErrNoSamples is returned when a statistic is requested for an empty signal.
	ErrNoSamples = errors.New("no samples")
	// ErrChannelIndex is returned for a signal index outside the recording.
	ErrChannelIndex = errors.New("signal index out of range")
)
