// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package embd_test

import (
	"io/fs"
	"time"

	"github.com/aibor/embd"
	"github.com/stretchr/testify/assert"
)

// failingSource fails with [assert.AnError] for the configured paths.
type failingSource struct {
	embd.OSSource

	lstat    string
	readDir  string
	readFile string
}

func (s *failingSource) Lstat(path string) (fs.FileInfo, error) {
	if path == s.lstat {
		return nil, assert.AnError
	}

	return s.OSSource.Lstat(path)
}

func (s *failingSource) ReadDir(path string) ([]fs.DirEntry, error) {
	if path == s.readDir {
		return nil, assert.AnError
	}

	return s.OSSource.ReadDir(path)
}

func (s *failingSource) ReadFile(path string) ([]byte, error) {
	if path == s.readFile {
		return nil, assert.AnError
	}

	return s.OSSource.ReadFile(path)
}

var testMetadata = embd.Metadata{
	Accessed: 3 * time.Second,
	Created:  1 * time.Second,
	Modified: 2 * time.Second,
}

// metadataSource reports fixed timestamps for every file.
type metadataSource struct {
	embd.OSSource
}

func (metadataSource) Metadata(string) *embd.Metadata {
	meta := testMetadata
	return &meta
}
