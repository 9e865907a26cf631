// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package embd

import (
	"iter"
	"slices"
	"time"
	"unicode/utf8"
)

// DirEntry is either a [*Dir] or a [*File]. Use a type switch to tell them
// apart.
type DirEntry interface {
	// Path returns the absolute canonical path of the entry.
	Path() string

	dirEntry()
}

// Metadata holds file timestamps as durations since the Unix epoch.
type Metadata struct {
	Accessed time.Duration
	Created  time.Duration
	Modified time.Duration
}

// AccessTime returns the last access time.
func (m Metadata) AccessTime() time.Time {
	return time.Unix(0, int64(m.Accessed))
}

// CreateTime returns the creation (birth) time.
func (m Metadata) CreateTime() time.Time {
	return time.Unix(0, int64(m.Created))
}

// ModTime returns the last modification time.
func (m Metadata) ModTime() time.Time {
	return time.Unix(0, int64(m.Modified))
}

// File is a regular file captured at build time.
type File struct {
	path     string
	content  Data
	metadata *Metadata
}

// NewFile creates a new [File]. Metadata may be nil.
func NewFile(path string, content Data, metadata *Metadata) *File {
	return &File{
		path:     path,
		content:  content,
		metadata: metadata,
	}
}

func (*File) dirEntry() {}

// Path returns the absolute canonical path of the file.
func (f *File) Path() string {
	return f.path
}

// Content returns the file content.
func (f *File) Content() Data {
	return f.content
}

// Text returns the content as string if it is valid UTF-8.
func (f *File) Text() (string, bool) {
	text := f.content.String()
	if !utf8.ValidString(text) {
		return "", false
	}

	return text, true
}

// Metadata returns the timestamps of the file, if the filesystem provided
// them.
func (f *File) Metadata() (Metadata, bool) {
	if f.metadata == nil {
		return Metadata{}, false
	}

	return *f.metadata, true
}

// Dir is a directory with its children sorted by name.
type Dir struct {
	path     string
	children []DirEntry
}

// NewDir creates a new [Dir]. The children must be sorted by name and must be
// located below path.
func NewDir(path string, children ...DirEntry) *Dir {
	return &Dir{
		path:     path,
		children: children,
	}
}

func (*Dir) dirEntry() {}

// Path returns the absolute canonical path of the directory.
func (d *Dir) Path() string {
	return d.path
}

// Children returns the direct children of the directory sorted by name.
func (d *Dir) Children() []DirEntry {
	return slices.Clone(d.children)
}

// All returns an iterator over all entries below the directory in depth-first
// pre-order. The directory itself is not included.
func (d *Dir) All() iter.Seq[DirEntry] {
	return func(yield func(DirEntry) bool) {
		d.walk(yield)
	}
}

// Files returns an iterator over all files below the directory in the same
// order as [Dir.All]. Directories are skipped.
func (d *Dir) Files() iter.Seq[*File] {
	return func(yield func(*File) bool) {
		d.walk(func(entry DirEntry) bool {
			file, ok := entry.(*File)
			if !ok {
				return true
			}

			return yield(file)
		})
	}
}

// Flatten returns all files below the directory in depth-first pre-order.
//
// The returned files share their content with the tree, so the directory
// should be considered consumed by the caller.
func (d *Dir) Flatten() []*File {
	return slices.Collect(d.Files())
}

func (d *Dir) walk(fn func(DirEntry) bool) bool {
	for _, child := range d.children {
		if !fn(child) {
			return false
		}

		if dir, ok := child.(*Dir); ok {
			if !dir.walk(fn) {
				return false
			}
		}
	}

	return true
}
