// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
)

const (
	envArgsName     = "EMBD_ARGS"
	localConfigFile = ".embd-args"
)

// EnvArgs returns embd arguments from the environment.
func EnvArgs() []string {
	return strings.Fields(os.Getenv(envArgsName))
}

// LocalConfigArgs returns embd arguments from a local config file.
//
// The file's format is one argument per line. Lines starting with "#" are
// ignored. Environment variables may be used and are expanded with
// [os.ExpandEnv].
func LocalConfigArgs(fsys fs.FS, file string) ([]string, error) {
	conf, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	args := []string{}

	expandedConf := os.ExpandEnv(string(conf))
	for line := range strings.SplitSeq(expandedConf, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			args = append(args, line)
		}
	}

	return args, nil
}

// MergedArgs returns the arguments from the local config file, followed by
// the ones from the environment and then the given ones. Later flags
// override earlier ones.
func MergedArgs(args []string, fsys fs.FS, file string) ([]string, error) {
	localArgs, err := LocalConfigArgs(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("local config args: %w", err)
	}

	return slices.Concat(localArgs, EnvArgs(), args), nil
}
