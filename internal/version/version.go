// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package version holds build information set via ldflags.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the release version.
	Version = "0.1.0"
	// GitCommit is the git sha1 that was compiled.
	GitCommit = "unknown"
	// BuildDate is the date the binary was built.
	BuildDate = "unknown"
)

// Info returns a human readable version string for the named tool.
func Info(appName string) string {
	result := fmt.Sprintf("%s version %s", appName, Version)

	if GitCommit != "unknown" {
		if len(GitCommit) > 7 {
			result += fmt.Sprintf(" (commit %s)", GitCommit[:7])
		} else {
			result += fmt.Sprintf(" (commit %s)", GitCommit)
		}
	}

	if BuildDate != "unknown" {
		result += fmt.Sprintf("\nBuilt: %s", BuildDate)
	}

	result += fmt.Sprintf("\nGo: %s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	return result
}
