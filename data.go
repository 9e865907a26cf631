// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package embd

import (
	"bytes"
	"io"
	"strings"
)

// Data is an immutable byte sequence that is either owned by the tree it
// belongs to or references static storage, like an embedded archive.
//
// The zero value is an empty owned sequence. Copying a Data value never
// copies the bytes.
type Data struct {
	owned    []byte
	static   string
	isStatic bool
}

// Owned returns [Data] backed by the given slice. The caller must not modify
// the slice afterwards.
func Owned(b []byte) Data {
	return Data{owned: b}
}

// Static returns [Data] backed by the given string, usually a substring of an
// embedded archive.
func Static(s string) Data {
	return Data{static: s, isStatic: true}
}

// IsStatic reports whether the data references static storage.
func (d Data) IsStatic() bool {
	return d.isStatic
}

// Len returns the number of bytes.
func (d Data) Len() int {
	if d.isStatic {
		return len(d.static)
	}

	return len(d.owned)
}

// String returns the content as string. Static data is returned without
// copying.
func (d Data) String() string {
	if d.isStatic {
		return d.static
	}

	return string(d.owned)
}

// Bytes returns a copy of the content.
func (d Data) Bytes() []byte {
	if d.isStatic {
		return []byte(d.static)
	}

	return bytes.Clone(d.owned)
}

// Reader returns an [io.Reader] reading the content without copying it.
func (d Data) Reader() io.Reader {
	return d.reader()
}

type contentReader interface {
	io.Reader
	io.Seeker
	io.ReaderAt
}

func (d Data) reader() contentReader {
	if d.isStatic {
		return strings.NewReader(d.static)
	}

	return bytes.NewReader(d.owned)
}

// Equal reports whether both have the same content, regardless of their
// backing.
func (d Data) Equal(other Data) bool {
	switch {
	case d.isStatic && other.isStatic:
		return d.static == other.static
	case d.isStatic:
		return d.static == string(other.owned)
	case other.isStatic:
		return string(d.owned) == other.static
	default:
		return bytes.Equal(d.owned, other.owned)
	}
}
