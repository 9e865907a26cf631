// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "time"

// FileTimes holds file timestamps as durations since the Unix epoch.
type FileTimes struct {
	Accessed time.Duration
	Created  time.Duration
	Modified time.Duration
}
