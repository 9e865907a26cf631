// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package embd_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aibor/embd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archiveOf(t *testing.T, dir *embd.Dir) string {
	t.Helper()

	var buf bytes.Buffer

	require.NoError(t, embd.WriteArchive(&buf, dir))

	return buf.String()
}

// assertEqualTrees compares the trees by structure, paths, content and
// metadata, ignoring the content backing.
func assertEqualTrees(t *testing.T, expected, actual *embd.Dir) {
	t.Helper()

	assert.Equal(t, expected.Path(), actual.Path(), "root path")

	var expectedEntries, actualEntries []embd.DirEntry
	for entry := range expected.All() {
		expectedEntries = append(expectedEntries, entry)
	}

	for entry := range actual.All() {
		actualEntries = append(actualEntries, entry)
	}

	require.Len(t, actualEntries, len(expectedEntries))

	for idx, expectedEntry := range expectedEntries {
		actualEntry := actualEntries[idx]
		assert.Equal(t, expectedEntry.Path(), actualEntry.Path())
		assert.IsType(t, expectedEntry, actualEntry)

		expectedFile, ok := expectedEntry.(*embd.File)
		if !ok {
			continue
		}

		actualFile, ok := actualEntry.(*embd.File)
		require.True(t, ok)

		assert.True(t, expectedFile.Content().Equal(actualFile.Content()),
			"content of %s", expectedFile.Path())

		expectedMeta, expectedOK := expectedFile.Metadata()
		actualMeta, actualOK := actualFile.Metadata()
		assert.Equal(t, expectedOK, actualOK, "metadata present")
		assert.Equal(t, expectedMeta, actualMeta, "metadata")
	}
}

func TestLoad_EquivalentToLive(t *testing.T) {
	root := createTree(t, map[string]string{
		"x.txt":      "hi",
		"b/y.txt":    "yo",
		"b/c/":       "",
		"bin/data":   "\x00\x01\x02\xff",
		"empty":      "",
		"unicode/ä":  "ö",
		"z/deep/er/": "",
	})

	live, err := embd.Build(embd.OS, root)
	require.NoError(t, err)

	embedded, err := embd.Load(archiveOf(t, live))
	require.NoError(t, err)

	assertEqualTrees(t, live, embedded)

	for file := range embedded.Files() {
		assert.True(t, file.Content().IsStatic(), file.Path())
	}
}

func TestLoad_Metadata(t *testing.T) {
	root := createTree(t, map[string]string{
		"x.txt": "hi",
	})

	live, err := embd.Build(metadataSource{}, root)
	require.NoError(t, err)

	embedded, err := embd.Load(archiveOf(t, live))
	require.NoError(t, err)

	assertEqualTrees(t, live, embedded)
}

func TestLoad_Scenario(t *testing.T) {
	dir := embd.NewDir("/a",
		embd.NewDir("/a/b",
			embd.NewFile("/a/b/y.txt", embd.Owned([]byte("yo")), nil),
		),
		embd.NewFile("/a/x.txt", embd.Owned([]byte("hi")), nil),
	)

	loaded := embd.MustLoad(archiveOf(t, dir))

	files := loaded.Flatten()
	require.Len(t, files, 2)
	assert.Equal(t, "/a/b/y.txt", files[0].Path())
	assert.Equal(t, "yo", files[0].Content().String())
	assert.Equal(t, "/a/x.txt", files[1].Path())
	assert.Equal(t, "hi", files[1].Content().String())
}

func TestLoad_Corrupt(t *testing.T) {
	blob := archiveOf(t, testTree())

	tests := []struct {
		name string
		blob string
	}{
		{
			name: "empty",
			blob: "",
		},
		{
			name: "truncated",
			blob: blob[:len(blob)-200],
		},
		{
			name: "content modified",
			blob: strings.Replace(blob, "\x00hi", "\x00ho", 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := embd.Load(tt.blob)
			require.ErrorIs(t, err, embd.ErrCorrupt)

			assert.Panics(t, func() { embd.MustLoad(tt.blob) })
		})
	}
}

func TestLoad_KindMismatch(t *testing.T) {
	var buf bytes.Buffer

	file := embd.NewFile("/a/x.txt", embd.Owned([]byte("hi")), nil)
	require.NoError(t, embd.WriteFileArchive(&buf, file))

	_, err := embd.Load(buf.String())
	require.ErrorIs(t, err, embd.ErrCorrupt)

	_, err = embd.LoadFile(archiveOf(t, testTree()))
	require.ErrorIs(t, err, embd.ErrCorrupt)
}

func TestLoadFile(t *testing.T) {
	var buf bytes.Buffer

	meta := testMetadata
	file := embd.NewFile("/a/x.txt", embd.Owned([]byte("hi")), &meta)
	require.NoError(t, embd.WriteFileArchive(&buf, file))

	loaded := embd.MustLoadFile(buf.String())
	assert.Equal(t, "/a/x.txt", loaded.Path())
	assert.Equal(t, "hi", loaded.Content().String())
	assert.True(t, loaded.Content().IsStatic())

	loadedMeta, ok := loaded.Metadata()
	require.True(t, ok)
	assert.Equal(t, testMetadata, loadedMeta)

	assert.Panics(t, func() { embd.MustLoadFile("garbage") })
}

func TestWriteArchive_Deterministic(t *testing.T) {
	assert.Equal(t, archiveOf(t, testTree()), archiveOf(t, testTree()))
}
