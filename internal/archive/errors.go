// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import "errors"

var (
	// ErrCorrupt is returned if an archive can not be decoded or its content
	// does not match the manifest.
	ErrCorrupt = errors.New("corrupt archive")

	// ErrInvalidArchive is returned if an [Archive] can not be written
	// because its entries do not form a valid tree of its kind.
	ErrInvalidArchive = errors.New("invalid archive")
)
