// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package embd

import (
	"fmt"
	"io"
	"path"
	"path/filepath"
	"time"

	"github.com/aibor/embd/internal/archive"
)

// WriteArchive serializes the tree into w. The result can be decoded with
// [Load].
func WriteArchive(w io.Writer, dir *Dir) error {
	entries := []archive.Entry{{Dir: true}}

	for entry := range dir.All() {
		rel, err := relPath(dir.path, entry.Path())
		if err != nil {
			return err
		}

		switch entry := entry.(type) {
		case *Dir:
			entries = append(entries, archive.Entry{Path: rel, Dir: true})
		case *File:
			entries = append(entries, fileEntry(rel, entry))
		}
	}

	return writeArchive(w, &archive.Archive{
		Kind:    archive.KindDir,
		Root:    dir.path,
		Entries: entries,
	})
}

// WriteFileArchive serializes a single file into w. The result can be
// decoded with [LoadFile].
func WriteFileArchive(w io.Writer, file *File) error {
	return writeArchive(w, &archive.Archive{
		Kind:    archive.KindFile,
		Root:    file.path,
		Entries: []archive.Entry{fileEntry("", file)},
	})
}

func writeArchive(w io.Writer, a *archive.Archive) error {
	err := archive.Write(w, a)
	if err != nil {
		return fmt.Errorf("write archive: %w", err)
	}

	return nil
}

// Load decodes an archive written by [WriteArchive]. File content references
// the archive string, so it is not copied.
func Load(blob string) (*Dir, error) {
	decoded, err := readArchive(blob, archive.KindDir)
	if err != nil {
		return nil, err
	}

	root := NewDir(decoded.Root)
	dirs := map[string]*Dir{"": root}

	for _, entry := range decoded.Entries[1:] {
		// Entries are validated to follow their parent directory.
		parent := dirs[parentOf(entry.Path)]
		entryPath := filepath.Join(decoded.Root, filepath.FromSlash(entry.Path))

		var child DirEntry

		if entry.Dir {
			dir := NewDir(entryPath)
			dirs[entry.Path] = dir
			child = dir
		} else {
			child = NewFile(entryPath, Static(entry.Content), metadataFrom(entry.Times))
		}

		parent.children = append(parent.children, child)
	}

	return root, nil
}

// MustLoad is like [Load] but panics on errors. It is used by generated code.
func MustLoad(blob string) *Dir {
	dir, err := Load(blob)
	if err != nil {
		panic(err)
	}

	return dir
}

// LoadFile decodes an archive written by [WriteFileArchive].
func LoadFile(blob string) (*File, error) {
	decoded, err := readArchive(blob, archive.KindFile)
	if err != nil {
		return nil, err
	}

	entry := decoded.Entries[0]

	return NewFile(decoded.Root, Static(entry.Content), metadataFrom(entry.Times)), nil
}

// MustLoadFile is like [LoadFile] but panics on errors.
func MustLoadFile(blob string) *File {
	file, err := LoadFile(blob)
	if err != nil {
		panic(err)
	}

	return file
}

func readArchive(blob string, kind archive.Kind) (*archive.Archive, error) {
	decoded, err := archive.Read(blob)
	if err != nil {
		return nil, fmt.Errorf("load archive: %w", err)
	}

	if decoded.Kind != kind {
		return nil, fmt.Errorf("load archive: %w: kind %s, expected %s",
			ErrCorrupt, decoded.Kind, kind)
	}

	return decoded, nil
}

func relPath(root, target string) (string, error) {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}

	return filepath.ToSlash(rel), nil
}

func parentOf(rel string) string {
	parent := path.Dir(rel)
	if parent == "." {
		return ""
	}

	return parent
}

func fileEntry(rel string, file *File) archive.Entry {
	entry := archive.Entry{
		Path:    rel,
		Content: file.content.String(),
	}

	if file.metadata != nil {
		entry.Times = &archive.Times{
			Accessed: int64(file.metadata.Accessed),
			Created:  int64(file.metadata.Created),
			Modified: int64(file.metadata.Modified),
		}
	}

	return entry
}

func metadataFrom(times *archive.Times) *Metadata {
	if times == nil {
		return nil
	}

	return &Metadata{
		Accessed: time.Duration(times.Accessed),
		Created:  time.Duration(times.Created),
		Modified: time.Duration(times.Modified),
	}
}
