// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package edf

// Sample is a value that can be windowed and decimated.
type Sample interface {
	~int16 | ~float64
}

// RenderWindow is a decimated view of a signal. Start and End are the sample
// indices of the window within the signal, End exclusive.
type RenderWindow[T Sample] struct {
	Start  int
	End    int
	Values []T
}

// Window selects Span consecutive samples of a signal and reduces them to at
// most Budget points.
type Window struct {
	Span   int // Number of samples visible at once
	Budget int // Maximum number of points returned
}

// Apply returns the window of samples beginning at start. Start is clamped
// so that the window never runs past the end of the signal. If the window
// holds more than Budget samples it is decimated by keeping every n-th
// sample, with n = floor(len/Budget), so that exactly Budget points are
// returned. Local extrema between kept samples are dropped.
//
// The result never aliases samples and its size is bounded by Budget.
func Apply[T Sample](w Window, samples []T, start int) RenderWindow[T] {
	if w.Span <= 0 || w.Budget <= 0 {
		return RenderWindow[T]{Values: []T{}}
	}

	start = min(max(start, 0), max(len(samples)-w.Span, 0))
	end := min(start+w.Span, len(samples))
	win := samples[start:end]

	if len(win) <= w.Budget {
		values := make([]T, len(win))
		copy(values, win)
		return RenderWindow[T]{Start: start, End: end, Values: values}
	}

	ratio := len(win) / w.Budget
	values := make([]T, w.Budget)
	for i := range values {
		values[i] = win[i*ratio]
	}
	return RenderWindow[T]{Start: start, End: end, Values: values}
}

// WindowAndDecimate returns at most budget samples starting at start. The
// visible span equals the budget.
func WindowAndDecimate[T Sample](samples []T, start, budget int) []T {
	return Apply(Window{Span: budget, Budget: budget}, samples, start).Values
}
