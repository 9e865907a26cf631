// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Command embd writes an archive of a directory tree and accessor functions
// that either embed it into the binary or read it from disk, depending on a
// build tag.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aibor/embd/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)

	exitCode := cmd.Run(ctx, os.Args[1:], cmd.IO{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})

	stop()
	os.Exit(exitCode)
}
