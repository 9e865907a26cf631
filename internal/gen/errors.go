// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package gen

import "errors"

var (
	// ErrInvalidIdentifier is returned if a name is not a valid exported Go
	// identifier or a package name is not a valid identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrInvalidTag is returned if the build tag is not a single tag.
	ErrInvalidTag = errors.New("invalid build tag")

	// ErrEmptyPackage is returned if no package name is given.
	ErrEmptyPackage = errors.New("package name must not be empty")
)
