// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package edf

import "fmt"

// ToPhysical converts a digital value from a data record to a physical value
// using the calibration factors. When dmax equals dmin the result is NaN or
// an infinity; it is never clamped.
func ToPhysical(digital, dmin, dmax int, pmin, pmax float64) float64 {
	return (float64(digital)-float64(dmin))*(pmax-pmin)/float64(dmax-dmin) + pmin
}

// ToPhysical converts a digital value of this signal to physical units.
func (s Signal) ToPhysical(digital int16) float64 {
	return ToPhysical(int(digital), s.DigitalMin, s.DigitalMax, s.PhysicalMin, s.PhysicalMax)
}

// Degenerate reports whether the signal's digital range is empty, in which
// case its samples have no physical meaning.
func (s Signal) Degenerate() bool {
	return s.DigitalMax == s.DigitalMin
}

// Physical converts a run of digital samples of this signal to physical units.
func (s Signal) Physical(digital []int16) []float64 {
	out := make([]float64, len(digital))
	for i, d := range digital {
		out[i] = s.ToPhysical(d)
	}
	return out
}

// MeanPhysicalValue returns the mean of a signal's samples in physical units.
func MeanPhysicalValue(signalIndex int, samples SignalMatrix, sig Signal) (float64, error) {
	if signalIndex < 0 || signalIndex >= len(samples) {
		return 0, fmt.Errorf("%w: %d", ErrChannelIndex, signalIndex)
	}
	if sig.Degenerate() {
		return 0, fmt.Errorf("%w: signal %d %q has digital minimum and maximum %d",
			ErrDegenerateCalibration, signalIndex, sig.Label, sig.DigitalMin)
	}

	digital := samples[signalIndex]
	if len(digital) == 0 {
		return 0, fmt.Errorf("%w: signal %d %q", ErrNoSamples, signalIndex, sig.Label)
	}

	// The transform is affine, so the mean can be converted once.
	var sum int64
	for _, d := range digital {
		sum += int64(d)
	}
	mean := float64(sum) / float64(len(digital))

	return (mean-float64(sig.DigitalMin))*(sig.PhysicalMax-sig.PhysicalMin)/float64(sig.DigitalMax-sig.DigitalMin) + sig.PhysicalMin, nil
}
