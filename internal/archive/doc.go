// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package archive implements the serialization format of embedded trees.
//
// An archive is a newc CPIO archive. The first member is "manifest.yaml"
// describing the archive kind, the root path and an xxHash64 digest and
// optional timestamps for each regular file. It is followed by the member
// "tree", which is the root directory (or the single regular file), and its
// descendants as "tree/<path>" in depth-first pre-order with children sorted
// by name.
//
// [Read] returns file content as substrings of the archive string, so
// content of archives embedded into the binary is never copied.
package archive
