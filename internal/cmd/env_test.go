// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"testing"
	"testing/fstest"

	"github.com/aibor/embd/internal/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvArgs(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		output []string
	}{
		{
			name:   "empty",
			env:    "",
			output: []string{},
		},
		{
			name:   "multiple args",
			env:    "-tag dev -debug",
			output: []string{"-tag", "dev", "-debug"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EMBD_ARGS", tt.env)
			assert.Equal(t, tt.output, cmd.EnvArgs())
		})
	}
}

func TestLocalConfigArgs(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		env      map[string]string
		expected []string
	}{
		{
			name:     "empty",
			content:  "",
			expected: []string{},
		},
		{
			name:     "single line",
			content:  "-tag=dev\n-name=Web Assets",
			expected: []string{"-tag=dev", "-name=Web Assets"},
		},
		{
			name:     "multiple lines",
			content:  "-tag\ndev\n-pkg\nassets\n",
			expected: []string{"-tag", "dev", "-pkg", "assets"},
		},
		{
			name:     "comments",
			content:  "# generator defaults\n-debug\n  # indented\n",
			expected: []string{"-debug"},
		},
		{
			name:     "with env vars",
			content:  "-within=${VAR1}\n-tag=$VAR2--\n-o=${VAR3}/more\n",
			env:      map[string]string{"VAR1": "/src", "VAR2": "__"},
			expected: []string{"-within=/src", "-tag=__--", "-o=/more"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testFS := fstest.MapFS{
				"conf": &fstest.MapFile{
					Data: []byte(tt.content),
				},
			}

			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			args, err := cmd.LocalConfigArgs(testFS, "conf")
			require.NoError(t, err)

			assert.Equal(t, tt.expected, args)
		})
	}
}

func TestLocalConfigArgs_Missing(t *testing.T) {
	args, err := cmd.LocalConfigArgs(fstest.MapFS{}, "conf")
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestLocalConfigArgs_Unreadable(t *testing.T) {
	testFS := fstest.MapFS{
		"conf/file": &fstest.MapFile{},
	}

	_, err := cmd.LocalConfigArgs(testFS, "conf")
	require.Error(t, err)
}

func TestMergedArgs(t *testing.T) {
	t.Setenv("EMBD_ARGS", "-tag env")

	testFS := fstest.MapFS{
		"conf": &fstest.MapFile{
			Data: []byte("-tag\nfile\n-debug\n"),
		},
	}

	args, err := cmd.MergedArgs([]string{"-tag", "cli", "path"}, testFS, "conf")
	require.NoError(t, err)

	expected := []string{
		"-tag", "file", "-debug",
		"-tag", "env",
		"-tag", "cli", "path",
	}
	assert.Equal(t, expected, args)
}
