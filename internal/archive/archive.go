// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cavaliergopher/cpio"
	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// Version is the format version written into the manifest.
const Version = 1

const (
	manifestName = "manifest.yaml"
	treeName     = "tree"
)

// Kind is the kind of the archive root.
type Kind string

// Archive kinds.
const (
	KindDir  Kind = "dir"
	KindFile Kind = "file"
)

// Times holds file timestamps in nanoseconds since the Unix epoch.
type Times struct {
	Accessed int64 `yaml:"accessed"`
	Created  int64 `yaml:"created"`
	Modified int64 `yaml:"modified"`
}

// Entry is a directory or regular file of the archived tree.
type Entry struct {
	// Path relative to the root in slash separated form. Empty for the root.
	Path string

	// Dir is true for directories.
	Dir bool

	// Content of regular files.
	Content string

	// Times of regular files, if known.
	Times *Times
}

// Archive is the decoded form of an archive.
type Archive struct {
	Kind Kind

	// Root is the absolute path the tree was read from.
	Root string

	// Entries in depth-first pre-order, starting with the root.
	Entries []Entry
}

type manifest struct {
	Version int          `yaml:"version"`
	Kind    Kind         `yaml:"kind"`
	Root    string       `yaml:"root"`
	Files   []fileRecord `yaml:"files"`
}

type fileRecord struct {
	Path   string `yaml:"path"`
	Digest string `yaml:"digest"`
	Times  *Times `yaml:"times,omitempty"`
}

// Digest returns the hex encoded xxHash64 digest of the content.
func Digest(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

func memberName(rel string) string {
	if rel == "" {
		return treeName
	}

	return treeName + "/" + rel
}

func relPath(name string) (string, bool) {
	if name == treeName {
		return "", true
	}

	rel, found := strings.CutPrefix(name, treeName+"/")
	if !found || rel == "" {
		return "", false
	}

	return rel, true
}

func parentPath(rel string) string {
	parent := path.Dir(rel)
	if parent == "." {
		return ""
	}

	return parent
}

// validate checks the entries form a tree of the archive's kind with each
// entry following its parent and siblings sorted by name.
func (a *Archive) validate() error {
	if len(a.Entries) == 0 || a.Entries[0].Path != "" {
		return errors.New("first entry must be the root")
	}

	switch a.Kind {
	case KindDir:
		if !a.Entries[0].Dir {
			return errors.New("root of dir archive is not a directory")
		}
	case KindFile:
		if len(a.Entries) != 1 || a.Entries[0].Dir {
			return errors.New("file archive must contain a single regular file")
		}
	default:
		return fmt.Errorf("unknown kind %q", a.Kind)
	}

	dirs := map[string]bool{"": true}
	lastChild := map[string]string{}

	for _, entry := range a.Entries[1:] {
		if entry.Path == "" || path.Clean(entry.Path) != entry.Path {
			return fmt.Errorf("invalid entry path %q", entry.Path)
		}

		parent := parentPath(entry.Path)
		if !dirs[parent] {
			return fmt.Errorf("parent of %s not seen before", entry.Path)
		}

		name := path.Base(entry.Path)
		if name <= lastChild[parent] {
			return fmt.Errorf("entry %s out of order", entry.Path)
		}

		lastChild[parent] = name

		if entry.Dir {
			dirs[entry.Path] = true
		}
	}

	return nil
}

// Write writes the archive into w.
func Write(w io.Writer, archive *Archive) error {
	if err := archive.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArchive, err)
	}

	mf := manifest{
		Version: Version,
		Kind:    archive.Kind,
		Root:    archive.Root,
		Files:   []fileRecord{},
	}

	for _, entry := range archive.Entries {
		if entry.Dir {
			continue
		}

		mf.Files = append(mf.Files, fileRecord{
			Path:   entry.Path,
			Digest: Digest(entry.Content),
			Times:  entry.Times,
		})
	}

	manifestData, err := yaml.Marshal(&mf)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	writer := NewCPIOWriter(w)

	if err := writer.WriteRegular(manifestName, string(manifestData)); err != nil {
		return err
	}

	for _, entry := range archive.Entries {
		name := memberName(entry.Path)

		if entry.Dir {
			err = writer.WriteDirectory(name)
		} else {
			err = writer.WriteRegular(name, entry.Content)
		}

		if err != nil {
			return err
		}
	}

	return writer.Close()
}

// Read decodes the archive. The content of the returned entries references
// blob.
func Read(blob string) (*Archive, error) {
	reader := newCPIOReader(blob)

	mf, err := readManifest(reader)
	if err != nil {
		return nil, err
	}

	records := make(map[string]fileRecord, len(mf.Files))
	for _, record := range mf.Files {
		records[record.Path] = record
	}

	archive := &Archive{
		Kind: mf.Kind,
		Root: mf.Root,
	}

	for {
		hdr, content, err := reader.next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, corrupt("read member", err)
		}

		entry, err := readEntry(hdr, content, records)
		if err != nil {
			return nil, err
		}

		archive.Entries = append(archive.Entries, entry)
	}

	if len(records) > 0 {
		return nil, fmt.Errorf("%w: %d files of manifest missing", ErrCorrupt, len(records))
	}

	if err := archive.validate(); err != nil {
		return nil, corrupt("validate", err)
	}

	return archive, nil
}

func readManifest(reader *cpioReader) (*manifest, error) {
	hdr, content, err := reader.next()
	if err != nil {
		return nil, corrupt("read manifest", err)
	}

	if hdr.Name != manifestName || !hdr.Mode.IsRegular() {
		return nil, fmt.Errorf("%w: first member is %s", ErrCorrupt, hdr.Name)
	}

	var mf manifest

	if err := yaml.Unmarshal([]byte(content), &mf); err != nil {
		return nil, corrupt("decode manifest", err)
	}

	if mf.Version != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, mf.Version)
	}

	return &mf, nil
}

func readEntry(
	hdr *cpio.Header,
	content string,
	records map[string]fileRecord,
) (Entry, error) {
	rel, ok := relPath(hdr.Name)
	if !ok {
		return Entry{}, fmt.Errorf("%w: unexpected member %s", ErrCorrupt, hdr.Name)
	}

	switch hdr.Mode &^ cpio.ModePerm {
	case cpio.TypeDir:
		return Entry{Path: rel, Dir: true}, nil
	case cpio.TypeReg:
		record, exists := records[rel]
		if !exists {
			return Entry{}, fmt.Errorf("%w: %s not in manifest", ErrCorrupt, hdr.Name)
		}

		delete(records, rel)

		if Digest(content) != record.Digest {
			return Entry{}, fmt.Errorf("%w: digest mismatch for %s", ErrCorrupt, hdr.Name)
		}

		return Entry{Path: rel, Content: content, Times: record.Times}, nil
	default:
		return Entry{}, fmt.Errorf("%w: unsupported type of %s", ErrCorrupt, hdr.Name)
	}
}

func corrupt(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrCorrupt, op, err)
}
