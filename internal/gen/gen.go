// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package gen

import (
	"bytes"
	"fmt"
	"go/build/constraint"
	"go/format"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/aibor/embd"
	"github.com/aibor/embd/internal/sys"
)

// DefaultTag is the build tag that switches the accessors to live mode.
const DefaultTag = "debug"

const filePerm = 0o644

// Config describes the accessor to generate.
type Config struct {
	// Target is the absolute canonical path of the directory or file to
	// embed.
	Target string

	// Dir is the absolute path of the output directory. It must be the
	// directory of the package the accessor is generated for.
	Dir string

	// Base is the file name of the outputs without extension.
	Base string

	// Package is the name of the package the accessor is generated for.
	Package string

	// Name is the exported accessor function name.
	Name string

	// Tag is the build tag that switches the accessor to live mode.
	Tag string

	// File embeds a single regular file instead of a directory.
	File bool
}

// File is a rendered output file.
type File struct {
	Name    string
	Content []byte
}

// Render builds the tree of the target and renders the archive and the
// accessor source files. Nothing is written.
func Render(cfg Config) ([]File, error) {
	if err := validateIdentifiers(cfg.Package, cfg.Name); err != nil {
		return nil, err
	}

	if err := validateTag(cfg.Tag); err != nil {
		return nil, err
	}

	target, err := sys.SlashRelativePath(cfg.Dir, cfg.Target)
	if err != nil {
		return nil, err
	}

	// The live accessor resolves the target relative to its own directory.
	if target == "." {
		return nil, &fs.PathError{Op: "generate", Path: cfg.Target, Err: embd.ErrEmbedSelf}
	}

	var archive bytes.Buffer

	if err := writeArchive(&archive, cfg); err != nil {
		return nil, err
	}

	data := templateData{
		Tag:         cfg.Tag,
		Package:     cfg.Package,
		Name:        cfg.Name,
		Var:         unexported(cfg.Name),
		Type:        "Dir",
		Loader:      "MustLoad",
		LiveFunc:    "MustLiveDir",
		Description: "directory",
		ArchiveFile: cfg.Base + ".embd",
		Target:      target,
	}

	if cfg.File {
		data.Type = "File"
		data.Loader = "MustLoadFile"
		data.LiveFunc = "MustLiveFile"
		data.Description = "file"
	}

	embedded, err := render(embeddedTemplate, data)
	if err != nil {
		return nil, err
	}

	live, err := render(liveTemplate, data)
	if err != nil {
		return nil, err
	}

	return []File{
		{Name: data.ArchiveFile, Content: archive.Bytes()},
		{Name: cfg.Base + ".go", Content: embedded},
		{Name: cfg.Base + "_live.go", Content: live},
	}, nil
}

func writeArchive(buf *bytes.Buffer, cfg Config) error {
	if cfg.File {
		file, err := embd.BuildFile(embd.OS, cfg.Target)
		if err != nil {
			return fmt.Errorf("build file: %w", err)
		}

		return embd.WriteFileArchive(buf, file) //nolint:wrapcheck
	}

	dir, err := embd.Build(embd.OS, cfg.Target)
	if err != nil {
		return fmt.Errorf("build tree: %w", err)
	}

	return embd.WriteArchive(buf, dir) //nolint:wrapcheck
}

func render(tmpl *template.Template, data templateData) ([]byte, error) {
	var buf bytes.Buffer

	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute %s template: %w", tmpl.Name(), err)
	}

	source, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s source: %w", tmpl.Name(), err)
	}

	return source, nil
}

func validateTag(tag string) error {
	expr, err := constraint.Parse("//go:build " + tag)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTag, err)
	}

	if _, ok := expr.(*constraint.TagExpr); !ok {
		return fmt.Errorf("%w: %s", ErrInvalidTag, tag)
	}

	return nil
}

// WriteFiles writes the rendered files into dir. All contents are written to
// temporary files first, which are only renamed to their final names once all
// of them have been written. If writing fails, existing outputs are left
// untouched.
func WriteFiles(dir string, files []File) error {
	temps := make([]string, 0, len(files))

	defer func() {
		for _, temp := range temps {
			_ = os.Remove(temp)
		}
	}()

	for _, file := range files {
		temp, err := writeTemp(filepath.Join(dir, file.Name), file.Content)
		if err != nil {
			return err
		}

		temps = append(temps, temp)
	}

	for idx, file := range files {
		path := filepath.Join(dir, file.Name)

		if err := os.Rename(temps[idx], path); err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		slog.Debug("Wrote output file",
			slog.String("path", path),
			slog.Int("size", len(file.Content)))
	}

	temps = nil

	return nil
}

func writeTemp(path string, content []byte) (string, error) {
	temp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}

	_, err = temp.Write(content)
	if err == nil {
		err = temp.Chmod(filePerm)
	}

	if closeErr := temp.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		_ = os.Remove(temp.Name())
		return "", fmt.Errorf("write output: %w", err)
	}

	return temp.Name(), nil
}
