// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux

package sys

// ReadFileTimes always returns [ErrTimesUnavailable] as birth times are only
// read on Linux.
func ReadFileTimes(_ string) (FileTimes, error) {
	return FileTimes{}, ErrTimesUnavailable
}
