// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package embd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"
)

// Build walks the directory root using src and returns it as [Dir].
//
// Children are sorted by name. Directories are descended into and regular
// files are read completely. Symbolic links and special files are skipped.
// Any error aborts the whole walk, no partial tree is returned.
func Build(src Source, root string) (*Dir, error) {
	info, err := src.Lstat(root)
	if err != nil {
		return nil, pathError("lstat", root, err)
	}

	if !info.IsDir() {
		return nil, &PathError{Op: "build", Path: root, Err: ErrNotDir}
	}

	dir, err := buildDir(src, root)
	if err != nil {
		return nil, err
	}

	slog.Debug("Built directory tree", slog.String("path", root))

	return dir, nil
}

// BuildFile reads the regular file at path using src and returns it as
// [File].
func BuildFile(src Source, path string) (*File, error) {
	info, err := src.Lstat(path)
	if err != nil {
		return nil, pathError("lstat", path, err)
	}

	if !info.Mode().IsRegular() {
		return nil, &PathError{Op: "build", Path: path, Err: ErrNotRegular}
	}

	return buildFile(src, path)
}

func buildDir(src Source, path string) (*Dir, error) {
	entries, err := src.ReadDir(path)
	if err != nil {
		return nil, pathError("readdir", path, err)
	}

	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	children := make([]DirEntry, 0, len(entries))

	for _, entry := range entries {
		childPath := filepath.Join(path, entry.Name())
		if !utf8.ValidString(entry.Name()) {
			return nil, &PathError{Op: "build", Path: childPath, Err: ErrInvalidPath}
		}

		switch fileType := entry.Type(); {
		case fileType.IsDir():
			child, err := buildDir(src, childPath)
			if err != nil {
				return nil, err
			}

			children = append(children, child)
		case fileType.IsRegular():
			child, err := buildFile(src, childPath)
			if err != nil {
				return nil, err
			}

			children = append(children, child)
		default:
			slog.Debug("Skipping entry",
				slog.String("path", childPath),
				slog.String("type", fileType.String()))
		}
	}

	return NewDir(path, children...), nil
}

func buildFile(src Source, path string) (*File, error) {
	content, err := src.ReadFile(path)
	if err != nil {
		return nil, pathError("read", path, err)
	}

	return NewFile(path, Owned(content), src.Metadata(path)), nil
}

// pathError wraps err into a [PathError] unless it already is one.
func pathError(op, path string, err error) error {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return err
	}

	return &PathError{Op: op, Path: path, Err: err}
}
