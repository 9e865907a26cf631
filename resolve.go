// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package embd

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"unicode/utf8"
)

// Resolve returns the absolute canonical path of rel interpreted relative to
// the directory containing the anchor file.
//
// The anchor must be an absolute path. A rel that cleans to "." refers to the
// anchor's own directory and is rejected with [ErrEmbedSelf]. A rel of ".."
// resolves to the parent directory.
func Resolve(anchor, rel string) (string, error) {
	if !filepath.IsAbs(anchor) {
		return "", &PathError{Op: "resolve", Path: anchor, Err: ErrNoParent}
	}

	dir := filepath.Dir(anchor)
	if dir == anchor {
		return "", &PathError{Op: "resolve", Path: anchor, Err: ErrNoParent}
	}

	return ResolveFrom(dir, rel)
}

// ResolveFrom returns the absolute canonical path of rel interpreted relative
// to the directory dir. Absolute rel paths are used as they are.
func ResolveFrom(dir, rel string) (string, error) {
	if filepath.Clean(rel) == "." {
		return "", &PathError{Op: "resolve", Path: dir, Err: ErrEmbedSelf}
	}

	path := rel
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, rel)
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	path, err = filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("canonicalize: %w", err)
	}

	if !utf8.ValidString(path) {
		return "", &PathError{Op: "resolve", Path: path, Err: ErrInvalidPath}
	}

	return path, nil
}

// Within returns [ErrOutsideSandbox] if the canonical form of path is neither
// sandbox itself nor located below it.
func Within(path, sandbox string) error {
	canonicalPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fmt.Errorf("canonicalize path: %w", err)
	}

	canonicalSandbox, err := filepath.EvalSymlinks(sandbox)
	if err != nil {
		return fmt.Errorf("canonicalize sandbox: %w", err)
	}

	rel, err := filepath.Rel(canonicalSandbox, canonicalPath)
	if err != nil ||
		rel == ".." ||
		strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return &PathError{Op: "within", Path: canonicalPath, Err: ErrOutsideSandbox}
	}

	return nil
}

// callerFile returns the source file of the caller skip frames above the
// caller of callerFile.
func callerFile(skip int) (string, error) {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", ErrNoParent
	}

	return filepath.FromSlash(file), nil
}
