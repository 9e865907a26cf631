// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: MIT

package archive

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cavaliergopher/cpio"
)

const (
	numLinks = 2
	fileMode = 0o644

	// newc members start at multiples of this.
	cpioAlignment = 4
)

// CPIOWriter writes archive members into a [cpio.Writer].
type CPIOWriter struct {
	cpioWriter *cpio.Writer
}

// NewCPIOWriter creates a new archive writer.
func NewCPIOWriter(w io.Writer) *CPIOWriter {
	return &CPIOWriter{cpio.NewWriter(w)}
}

// Close writes the trailer. Flush is called by the underlying closer.
func (w *CPIOWriter) Close() error {
	err := w.cpioWriter.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

// writeHeader writes the cpio header.
func (w *CPIOWriter) writeHeader(hdr *cpio.Header) error {
	if err := w.cpioWriter.WriteHeader(hdr); err != nil {
		return fmt.Errorf("write header for %s: %w", hdr.Name, err)
	}

	return nil
}

// WriteDirectory adds a directory member with the given name.
func (w *CPIOWriter) WriteDirectory(name string) error {
	header := &cpio.Header{
		Name:  name,
		Mode:  cpio.TypeDir | cpio.ModePerm,
		Links: numLinks,
	}

	return w.writeHeader(header)
}

// WriteRegular adds a regular file member with the given name and content.
func (w *CPIOWriter) WriteRegular(name string, content string) error {
	header := &cpio.Header{
		Name: name,
		Mode: cpio.TypeReg | fileMode,
		Size: int64(len(content)),
	}

	if err := w.writeHeader(header); err != nil {
		return err
	}

	if _, err := io.Copy(w.cpioWriter, strings.NewReader(content)); err != nil {
		return fmt.Errorf("write body for %s: %w", name, err)
	}

	return nil
}

// cpioReader reads members of an archive held in a string. Member bodies are
// returned as substrings of it.
type cpioReader struct {
	blob       string
	source     *strings.Reader
	cpioReader *cpio.Reader

	// End of the last member body.
	end int64
}

func newCPIOReader(blob string) *cpioReader {
	source := strings.NewReader(blob)

	return &cpioReader{
		blob:       blob,
		source:     source,
		cpioReader: cpio.NewReader(source),
	}
}

// next advances to the next member. It returns [io.EOF] at the trailer. An
// input that ends without a trailer is [ErrCorrupt].
func (r *cpioReader) next() (*cpio.Header, string, error) {
	hdr, err := r.cpioReader.Next()
	if err != nil {
		// The cpio reader returns io.EOF for the trailer as well as for input
		// ending at a member boundary. Only the trailer leaves bytes after the
		// padded end of the last body.
		if errors.Is(err, io.EOF) && int64(len(r.blob)) <= align(r.end) {
			return nil, "", fmt.Errorf("%w: missing trailer", ErrCorrupt)
		}

		return nil, "", err //nolint:wrapcheck
	}

	// The cpio reader does not buffer, so the source is positioned at the
	// start of the member body now.
	start := int64(len(r.blob)) - int64(r.source.Len())
	end := start + hdr.Size

	if end > int64(len(r.blob)) {
		return nil, "", fmt.Errorf("%w: truncated body of %s", ErrCorrupt, hdr.Name)
	}

	r.end = end

	return hdr, r.blob[start:end], nil
}

func align(offset int64) int64 {
	return (offset + cpioAlignment - 1) &^ (cpioAlignment - 1)
}
