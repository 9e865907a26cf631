// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package embd_test

import (
	"io"
	"testing"

	"github.com/aibor/embd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestData(t *testing.T) {
	tests := []struct {
		name   string
		data   embd.Data
		static bool
	}{
		{
			name: "owned",
			data: embd.Owned([]byte("content")),
		},
		{
			name:   "static",
			data:   embd.Static("content"),
			static: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.static, tt.data.IsStatic())
			assert.Equal(t, 7, tt.data.Len())
			assert.Equal(t, "content", tt.data.String())
			assert.Equal(t, []byte("content"), tt.data.Bytes())

			read, err := io.ReadAll(tt.data.Reader())
			require.NoError(t, err)
			assert.Equal(t, []byte("content"), read)
		})
	}
}

func TestData_BytesIsCopy(t *testing.T) {
	data := embd.Owned([]byte("content"))

	b := data.Bytes()
	b[0] = 'X'

	assert.Equal(t, "content", data.String())
}

func TestData_Zero(t *testing.T) {
	var data embd.Data

	assert.False(t, data.IsStatic())
	assert.Zero(t, data.Len())
	assert.Empty(t, data.String())
	assert.True(t, data.Equal(embd.Static("")))
}

func TestData_Equal(t *testing.T) {
	tests := []struct {
		name     string
		a, b     embd.Data
		expected bool
	}{
		{
			name:     "owned owned",
			a:        embd.Owned([]byte("x")),
			b:        embd.Owned([]byte("x")),
			expected: true,
		},
		{
			name:     "owned static",
			a:        embd.Owned([]byte("x")),
			b:        embd.Static("x"),
			expected: true,
		},
		{
			name:     "static owned",
			a:        embd.Static("x"),
			b:        embd.Owned([]byte("x")),
			expected: true,
		},
		{
			name:     "static static",
			a:        embd.Static("x"),
			b:        embd.Static("x"),
			expected: true,
		},
		{
			name: "different",
			a:    embd.Owned([]byte("x")),
			b:    embd.Static("y"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
		})
	}
}
