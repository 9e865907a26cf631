// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

const statxTimesMask = unix.STATX_ATIME | unix.STATX_BTIME | unix.STATX_MTIME

// ReadFileTimes reads the access, birth and modification time of the file
// without following symbolic links.
//
// [ErrTimesUnavailable] is returned if the filesystem does not report all of
// them or any of them is before the Unix epoch.
func ReadFileTimes(path string) (FileTimes, error) {
	var stx unix.Statx_t

	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, statxTimesMask, &stx)
	if err != nil {
		return FileTimes{}, &os.PathError{Op: "statx", Path: path, Err: err}
	}

	if stx.Mask&statxTimesMask != statxTimesMask {
		return FileTimes{}, ErrTimesUnavailable
	}

	times := FileTimes{
		Accessed: sinceEpoch(stx.Atime),
		Created:  sinceEpoch(stx.Btime),
		Modified: sinceEpoch(stx.Mtime),
	}

	if times.Accessed < 0 || times.Created < 0 || times.Modified < 0 {
		return FileTimes{}, ErrTimesUnavailable
	}

	return times, nil
}

func sinceEpoch(ts unix.StatxTimestamp) time.Duration {
	return time.Duration(ts.Sec)*time.Second + time.Duration(ts.Nsec)
}
