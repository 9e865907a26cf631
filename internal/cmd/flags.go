// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/aibor/embd"
	"github.com/aibor/embd/internal/gen"
)

const (
	name = "embd"

	usageMessage = `Usage of 'embd':
    embd [flags...] path

Writes an archive of the directory at path (or the regular file with -file)
and an accessor function for it. The accessor reads from disk if the build tag
given with -tag is set. Otherwise the archive is embedded into the binary.

Using it with go generate:
	//go:generate go run github.com/aibor/embd/cmd/embd ./assets

All embd flags can also be provided via environment variable EMBD_ARGS:
	EMBD_ARGS="-debug" go generate ./...

All embd flags can also be provided via file ./.embd-args, with one
argument per line.
`
)

type flags struct {
	cfg     gen.Config
	flagSet *flag.FlagSet

	// Receives the version information.
	stdout io.Writer

	output  FilePath
	within  FilePath
	version bool
	debug   bool
}

func newFlags(stdout, stderr io.Writer) *flags {
	flags := &flags{
		stdout: stdout,
		cfg: gen.Config{
			Package: os.Getenv("GOPACKAGE"),
			Tag:     gen.DefaultTag,
		},
	}

	flags.initFlagset(stderr)

	return flags
}

// ParseArgs parses the arguments and completes the generator config.
// Relative paths are resolved from the working directory.
func (f *flags) ParseArgs(args []string) error {
	// Parses arguments up to the first one that is not prefixed with a "-" or
	// is "--".
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if f.version {
		err := f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: err}
	}

	positionalArgs := f.flagSet.Args()
	if len(positionalArgs) != 1 {
		return f.fail("exactly one path required", nil)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return f.fail("working directory", err)
	}

	target, err := embd.ResolveFrom(workDir, positionalArgs[0])
	if err != nil {
		return f.fail("path", err)
	}

	if f.within != "" {
		if err := embd.Within(target, string(f.within)); err != nil {
			return f.fail("path", err)
		}
	}

	f.cfg.Target = target

	if f.cfg.Package == "" {
		return f.fail("no package name given (use -pkg or run with go generate)", nil)
	}

	if f.cfg.Name == "" {
		f.cfg.Name = gen.NameFor(target)
	}

	output := string(f.output)
	if output == "" {
		output = filepath.Join(workDir, gen.OutputBase(f.cfg.Name))
	}

	f.cfg.Dir = filepath.Dir(output)
	f.cfg.Base = strings.TrimSuffix(filepath.Base(output), ".go")

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.StringVar(
		&f.cfg.Package,
		"pkg",
		f.cfg.Package,
		"package name of the generated files (default $GOPACKAGE)",
	)

	flagSet.StringVar(
		&f.cfg.Name,
		"name",
		f.cfg.Name,
		"exported accessor function name (default derived from path)",
	)

	flagSet.Var(
		&f.output,
		"o",
		"output path without extension (default <name>_embd in the "+
			"working directory)",
	)

	flagSet.StringVar(
		&f.cfg.Tag,
		"tag",
		f.cfg.Tag,
		"build tag that switches the accessor to read from disk",
	)

	flagSet.BoolVar(
		&f.cfg.File,
		"file",
		f.cfg.File,
		"embed a single regular file instead of a directory",
	)

	flagSet.Var(
		&f.within,
		"within",
		"fail if path is not located below this directory",
	)

	flagSet.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.stdout, "Version: %s\n", buildInfo.Main.Version)

	return ErrHelp
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}
