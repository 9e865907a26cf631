// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package embd

import (
	"errors"
	"io/fs"

	"github.com/aibor/embd/internal/archive"
)

var (
	// ErrNoParent is returned if the anchor path has no parent directory. This
	// happens if the binary was built with -trimpath.
	ErrNoParent = errors.New("anchor has no parent directory")

	// ErrNotDir is returned if the root of a tree is not a directory.
	ErrNotDir = errors.New("not a directory")

	// ErrNotRegular is returned if a single file target is not a regular file.
	ErrNotRegular = errors.New("not a regular file")

	// ErrInvalidPath is returned for paths that are not valid UTF-8.
	ErrInvalidPath = errors.New("path is not valid UTF-8")

	// ErrEmbedSelf is returned if the path refers to the anchor's own
	// directory.
	ErrEmbedSelf = errors.New("can not embed the directory of the anchor itself")

	// ErrOutsideSandbox is returned by [Within] if a path escapes the sandbox.
	ErrOutsideSandbox = errors.New("path is outside of sandbox")

	// ErrCorrupt is returned if an archive is malformed or its content does
	// not match its manifest.
	ErrCorrupt = archive.ErrCorrupt
)

// PathError records an error and the operation and path that caused it.
type PathError = fs.PathError
