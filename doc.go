// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package embd provides directory trees that are read from disk while
// developing and baked into the binary for release builds.
//
// Both ways produce the same [Dir], [File] and [DirEntry] values. Live trees
// are built by [LiveDir] and friends, which resolve a path relative to the
// calling source file and walk the filesystem on each call. Embedded trees
// are produced ahead of time by the embd command (usually through
// go generate): it walks the same tree with [Build], serializes it with
// [WriteArchive] and emits two accessor files switched by a build tag. The
// release accessor decodes the archive linked in with go:embed using [Load],
// the tagged one calls [MustLiveDir] with the same relative path.
//
// Trees are immutable snapshots. Content of embedded files references the
// archive string directly, so loading does not copy file data.
//
//	//go:generate go run github.com/aibor/embd/cmd/embd -name Assets ./assets
//
//	func handler() {
//		for file := range Assets().Files() {
//			fmt.Println(file.Path(), file.Content().Len())
//		}
//	}
package embd
