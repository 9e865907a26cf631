// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package gen renders the files the embd command writes: the archive and two
// Go source files with accessors switched by a build tag.
package gen
