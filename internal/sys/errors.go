// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "errors"

var (
	// ErrEmptyPath is returned if an empty path is given.
	ErrEmptyPath = errors.New("path must not be empty")

	// ErrTimesUnavailable is returned if the platform or filesystem does not
	// provide all file timestamps.
	ErrTimesUnavailable = errors.New("file times not available")
)
