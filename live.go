// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package embd

// LiveDir reads the directory at rel, relative to the directory of the
// calling source file, from disk.
//
// The caller's source path is taken from the debug information of the binary,
// so it fails with [ErrNoParent] for binaries built with -trimpath.
func LiveDir(rel string) (*Dir, error) {
	anchor, err := callerFile(1)
	if err != nil {
		return nil, err
	}

	return LiveDirAt(anchor, rel)
}

// MustLiveDir is like [LiveDir] but panics on errors.
func MustLiveDir(rel string) *Dir {
	anchor, err := callerFile(1)
	if err != nil {
		panic(err)
	}

	dir, err := LiveDirAt(anchor, rel)
	if err != nil {
		panic(err)
	}

	return dir
}

// LiveDirAt reads the directory at rel, relative to the directory containing
// the anchor file, from disk.
func LiveDirAt(anchor, rel string) (*Dir, error) {
	root, err := Resolve(anchor, rel)
	if err != nil {
		return nil, err
	}

	return Build(OS, root)
}

// LiveFile reads the regular file at rel, relative to the directory of the
// calling source file, from disk.
func LiveFile(rel string) (*File, error) {
	anchor, err := callerFile(1)
	if err != nil {
		return nil, err
	}

	return LiveFileAt(anchor, rel)
}

// MustLiveFile is like [LiveFile] but panics on errors.
func MustLiveFile(rel string) *File {
	anchor, err := callerFile(1)
	if err != nil {
		panic(err)
	}

	file, err := LiveFileAt(anchor, rel)
	if err != nil {
		panic(err)
	}

	return file
}

// LiveFileAt reads the regular file at rel, relative to the directory
// containing the anchor file, from disk.
func LiveFileAt(anchor, rel string) (*File, error) {
	path, err := Resolve(anchor, rel)
	if err != nil {
		return nil, err
	}

	return BuildFile(OS, path)
}
