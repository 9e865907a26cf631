// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package embd

import (
	"io/fs"
	"log/slog"
	"os"

	"github.com/aibor/embd/internal/sys"
)

// Source provides the filesystem capabilities required to build a tree.
type Source interface {
	// Lstat returns file info without following symbolic links.
	Lstat(path string) (fs.FileInfo, error)

	// ReadDir returns the entries of the directory.
	ReadDir(path string) ([]fs.DirEntry, error)

	// ReadFile returns the complete content of the regular file.
	ReadFile(path string) ([]byte, error)

	// Metadata returns the timestamps of the file or nil if they are not
	// available.
	Metadata(path string) *Metadata
}

// OSSource is the [Source] for the real filesystem.
type OSSource struct{}

// OS is the [Source] used by the live builders and the embd command.
var OS = OSSource{}

// Lstat calls [os.Lstat].
func (OSSource) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path) //nolint:wrapcheck
}

// ReadDir calls [os.ReadDir].
func (OSSource) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path) //nolint:wrapcheck
}

// ReadFile calls [os.ReadFile].
func (OSSource) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path) //nolint:wrapcheck
}

// Metadata reads the access, birth and modification times of the file. Nil
// is returned if the platform or filesystem does not provide all of them.
func (OSSource) Metadata(path string) *Metadata {
	times, err := sys.ReadFileTimes(path)
	if err != nil {
		slog.Debug("File times not available",
			slog.String("path", path),
			slog.Any("error", err))

		return nil
	}

	return &Metadata{
		Accessed: times.Accessed,
		Created:  times.Created,
		Modified: times.Modified,
	}
}
