// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package embd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/embd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func recoverError(fn func()) (err error) {
	defer func() {
		recovered := recover()
		if recoveredErr, ok := recovered.(error); ok {
			err = recoveredErr
		}
	}()

	fn()

	return nil
}

func TestLiveDir(t *testing.T) {
	dir, err := embd.LiveDir("testdata/tree")
	require.NoError(t, err)

	expectedRoot, err := filepath.Abs(filepath.Join("testdata", "tree"))
	require.NoError(t, err)

	expectedRoot, err = filepath.EvalSymlinks(expectedRoot)
	require.NoError(t, err)

	assert.Equal(t, expectedRoot, dir.Path())

	var contents []string
	for file := range dir.Files() {
		text, ok := file.Text()
		require.True(t, ok)

		contents = append(contents, text)
	}

	assert.Equal(t, []string{"yo", "hi"}, contents)
}

func TestMustLiveDir(t *testing.T) {
	dir := embd.MustLiveDir("testdata/tree")
	assert.Len(t, dir.Flatten(), 2)

	err := recoverError(func() { embd.MustLiveDir(".") })
	require.ErrorIs(t, err, embd.ErrEmbedSelf)

	err = recoverError(func() { embd.MustLiveDir("testdata/missing") })
	require.ErrorIs(t, err, os.ErrNotExist)

	err = recoverError(func() { embd.MustLiveDir("testdata/tree/x.txt") })
	require.ErrorIs(t, err, embd.ErrNotDir)
}

func TestLiveDir_ConcurrentSnapshots(t *testing.T) {
	var group errgroup.Group

	dirs := make([]*embd.Dir, 8)

	for idx := range dirs {
		group.Go(func() error {
			dir, err := embd.LiveDir("testdata/tree")
			dirs[idx] = dir

			return err
		})
	}

	require.NoError(t, group.Wait())

	for _, dir := range dirs[1:] {
		assert.Equal(t, filePaths(dirs[0].Flatten()), filePaths(dir.Flatten()))
		assert.NotSame(t, dirs[0], dir)
	}
}

func TestLiveDirAt_Snapshot(t *testing.T) {
	root := createTree(t, map[string]string{
		"src/main.go": "package main",
		"data/x.txt":  "hi",
	})
	anchor := filepath.Join(root, "src", "main.go")

	before, err := embd.LiveDirAt(anchor, "../data")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "data", "x.txt"), []byte("changed"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "data", "y.txt"), []byte("new"), 0o600))

	after, err := embd.LiveDirAt(anchor, "../data")
	require.NoError(t, err)

	assert.Len(t, before.Flatten(), 1)
	assert.Equal(t, "hi", before.Flatten()[0].Content().String())

	assert.Len(t, after.Flatten(), 2)
	assert.Equal(t, "changed", after.Flatten()[0].Content().String())
}

func TestLiveFile(t *testing.T) {
	file, err := embd.LiveFile("testdata/tree/x.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi", file.Content().String())
	assert.True(t, filepath.IsAbs(file.Path()))

	file = embd.MustLiveFile("testdata/tree/b/y.txt")
	assert.Equal(t, "yo", file.Content().String())

	err = recoverError(func() { embd.MustLiveFile("testdata/tree") })
	require.ErrorIs(t, err, embd.ErrNotRegular)

	_, err = embd.LiveFileAt("relative.go", "x.txt")
	require.ErrorIs(t, err, embd.ErrNoParent)
}
