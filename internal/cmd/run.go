// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/embd/internal/gen"
)

// Exit codes returned by [Run].
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// IO provides input and output details for the command.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer
}

func parseFlags(args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags := newFlags(cfg.Stdout, cfg.Stderr)

	err = flags.ParseArgs(args)
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

func run(ctx context.Context, flags *flags) error {
	files, err := gen.Render(flags.cfg)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	err = ctx.Err()
	if err != nil {
		return fmt.Errorf("before writing outputs: %w", err)
	}

	err = gen.WriteFiles(flags.cfg.Dir, files)
	if err != nil {
		return err //nolint:wrapcheck
	}

	slog.Debug("Generated accessor",
		slog.String("name", flags.cfg.Name),
		slog.String("target", flags.cfg.Target),
		slog.String("dir", flags.cfg.Dir))

	return nil
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return ExitOK
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
		return ExitError
	}

	return ExitUsage
}

func handleRunError(err error) int {
	slog.Error(err.Error())

	return ExitError
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	flags, err := parseFlags(args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.debug)

	err = run(ctx, flags)
	if err != nil {
		return handleRunError(err)
	}

	return ExitOK
}
