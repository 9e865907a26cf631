// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package embd

import (
	"io"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

const (
	dirMode  = fs.ModeDir | 0o555
	fileMode = 0o444
)

var (
	_ fs.FS         = (*treeFS)(nil)
	_ fs.ReadFileFS = (*treeFS)(nil)
	_ fs.ReadDirFS  = (*treeFS)(nil)
	_ fs.StatFS     = (*treeFS)(nil)
)

// FS returns a read-only [fs.FS] of the tree. Names are relative to the
// directory, which is ".".
//
// It can be used wherever an [embed.FS] would be used, for example with
// [net/http.FS]. File modification times are taken from the metadata, if
// present.
func (d *Dir) FS() fs.FS {
	return &treeFS{root: d}
}

type treeFS struct {
	root *Dir
}

// Open opens the named file. It returns a [PathError] in case of errors.
func (fsys *treeFS) Open(name string) (fs.File, error) {
	info, err := fsys.lookup("open", name)
	if err != nil {
		return nil, err
	}

	file := &openFile{info: info}

	switch entry := info.entry.(type) {
	case *Dir:
		file.entries = entryInfos(entry)
	case *File:
		file.reader = entry.content.reader()
	}

	return file, nil
}

// ReadFile returns the content of the named regular file. The returned slice
// is a copy.
func (fsys *treeFS) ReadFile(name string) ([]byte, error) {
	info, err := fsys.lookup("read", name)
	if err != nil {
		return nil, err
	}

	file, ok := info.entry.(*File)
	if !ok {
		return nil, &PathError{Op: "read", Path: name, Err: ErrNotRegular}
	}

	return file.content.Bytes(), nil
}

// ReadDir returns the entries of the named directory sorted by name.
func (fsys *treeFS) ReadDir(name string) ([]fs.DirEntry, error) {
	info, err := fsys.lookup("readdir", name)
	if err != nil {
		return nil, err
	}

	dir, ok := info.entry.(*Dir)
	if !ok {
		return nil, &PathError{Op: "readdir", Path: name, Err: ErrNotDir}
	}

	return entryInfos(dir), nil
}

// Stat returns information about the named file.
func (fsys *treeFS) Stat(name string) (fs.FileInfo, error) {
	info, err := fsys.lookup("stat", name)
	if err != nil {
		return nil, err
	}

	return info, nil
}

func (fsys *treeFS) lookup(op, name string) (*fileInfo, error) {
	if !fs.ValidPath(name) {
		return nil, &PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}

	if name == "." {
		return &fileInfo{name: ".", entry: fsys.root}, nil
	}

	var entry DirEntry = fsys.root

	for elem := range strings.SplitSeq(name, "/") {
		dir, ok := entry.(*Dir)
		if !ok {
			return nil, &PathError{Op: op, Path: name, Err: fs.ErrNotExist}
		}

		entry, ok = dir.child(elem)
		if !ok {
			return nil, &PathError{Op: op, Path: name, Err: fs.ErrNotExist}
		}
	}

	return &fileInfo{name: entryName(entry), entry: entry}, nil
}

// child returns the direct child with the given name.
func (d *Dir) child(name string) (DirEntry, bool) {
	idx, found := slices.BinarySearchFunc(d.children, name,
		func(entry DirEntry, name string) int {
			return strings.Compare(entryName(entry), name)
		},
	)
	if !found {
		return nil, false
	}

	return d.children[idx], true
}

func entryName(entry DirEntry) string {
	return filepath.Base(entry.Path())
}

func entryInfos(dir *Dir) []fs.DirEntry {
	entries := make([]fs.DirEntry, 0, len(dir.children))

	for _, child := range dir.children {
		entries = append(entries, &fileInfo{
			name:  entryName(child),
			entry: child,
		})
	}

	return entries
}

var (
	_ fs.FileInfo = (*fileInfo)(nil)
	_ fs.DirEntry = (*fileInfo)(nil)
)

type fileInfo struct {
	name  string
	entry DirEntry
}

func (i *fileInfo) Name() string { return i.name }
func (i *fileInfo) Sys() any     { return i.entry }

func (i *fileInfo) IsDir() bool {
	_, ok := i.entry.(*Dir)
	return ok
}

func (i *fileInfo) Mode() fs.FileMode {
	if i.IsDir() {
		return dirMode
	}

	return fileMode
}

func (i *fileInfo) Type() fs.FileMode {
	return i.Mode().Type()
}

func (i *fileInfo) Size() int64 {
	file, ok := i.entry.(*File)
	if !ok {
		return 0
	}

	return int64(file.content.Len())
}

func (i *fileInfo) ModTime() time.Time {
	file, ok := i.entry.(*File)
	if !ok || file.metadata == nil {
		return time.Time{}
	}

	return file.metadata.ModTime()
}

func (i *fileInfo) Info() (fs.FileInfo, error) {
	return i, nil
}

var (
	_ fs.File        = (*openFile)(nil)
	_ fs.ReadDirFile = (*openFile)(nil)
	_ io.Seeker      = (*openFile)(nil)
	_ io.ReaderAt    = (*openFile)(nil)
)

type openFile struct {
	info    *fileInfo
	reader  contentReader
	entries []fs.DirEntry
	offset  int
}

// Stat implements [fs.File].
func (f *openFile) Stat() (fs.FileInfo, error) {
	return f.info, nil
}

// Read implements [fs.File].
func (f *openFile) Read(b []byte) (int, error) {
	if f.reader == nil {
		return 0, &PathError{Op: "read", Path: f.info.name, Err: ErrNotRegular}
	}

	return f.reader.Read(b) //nolint:wrapcheck
}

// Seek implements [io.Seeker].
func (f *openFile) Seek(offset int64, whence int) (int64, error) {
	if f.reader == nil {
		return 0, &PathError{Op: "seek", Path: f.info.name, Err: ErrNotRegular}
	}

	return f.reader.Seek(offset, whence) //nolint:wrapcheck
}

// ReadAt implements [io.ReaderAt].
func (f *openFile) ReadAt(b []byte, offset int64) (int, error) {
	if f.reader == nil {
		return 0, &PathError{Op: "read", Path: f.info.name, Err: ErrNotRegular}
	}

	return f.reader.ReadAt(b, offset) //nolint:wrapcheck
}

// Close implements [fs.File].
func (*openFile) Close() error {
	return nil
}

// ReadDir implements [fs.ReadDirFile].
func (f *openFile) ReadDir(count int) ([]fs.DirEntry, error) {
	if !f.info.IsDir() {
		return nil, &PathError{Op: "readdir", Path: f.info.name, Err: ErrNotDir}
	}

	start := f.offset
	end := len(f.entries)
	available := end - start

	if available == 0 && count > 0 {
		return nil, io.EOF
	}

	if count > 0 && available > count {
		end = start + count
	}

	f.offset = end

	return f.entries[start:end], nil
}
