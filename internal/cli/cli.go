// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the signalcall command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	signalcall "fillmore-labs.com/signalcall/analyzer"
	"fillmore-labs.com/signalcall/internal/output"
	"fillmore-labs.com/signalcall/internal/settings"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitDiagnostics = 3
)

// command holds the parsed command line.
type command struct {
	flags   *signalcall.Flags
	config  string
	format  output.Format
	color   output.ColorMode
	verbose bool

	stdout, stderr io.Writer
	reported       bool
}

// Main runs signalcall with the given arguments and returns the exit code.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c := &command{stdout: stdout, stderr: stderr}

	cmd := c.cobra()
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", signalcall.Name, err)

		return ExitError
	}

	if c.reported {
		return ExitDiagnostics
	}

	return ExitOK
}

func (c *command) cobra() *cobra.Command {
	cmd := &cobra.Command{
		Use:   signalcall.Name + " [flags] [path ...]",
		Short: "Report Angular signals used without calling their getter",
		Long: signalcall.Doc + `.

Directories are searched for .ts, .tsx, .mts and .cts files, skipping declaration
files, node_modules and hidden directories. Settings are read from ` + settings.DefaultFile + `
when present; command line flags take precedence.`,
		RunE:          c.run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)

	fs := cmd.Flags()
	c.flags = signalcall.RegisterFlags(fs)
	fs.StringVar(&c.config, "config", settings.DefaultFile, "YAML settings `file`")
	fs.Var(&c.format, "format", "output format (text|json)")
	fs.Var(&c.color, "color", "colorize output (auto|on|off)")
	fs.BoolVarP(&c.verbose, "verbose", "v", false, "log debug output")

	return cmd
}

func (c *command) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))

	s, err := settings.Load(c.config, !cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	opts := signalcall.Options{
		signalcall.Options(s.Options()),
		c.flags.Options(),
		signalcall.WithLogger(logger),
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Configuration", slog.String("config", c.config), opts.LogAttr())

	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := Discover(args, s.Exclude)
	if err != nil {
		return err
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Discovered files", slog.Int("files", len(files)))

	res, err := signalcall.New(opts).Check(ctx, files...)
	if res != nil {
		if perr := output.NewPrinter(c.stdout, c.format, c.color).Print(res.Fset, res.Diagnostics); perr != nil {
			return errors.Join(err, perr)
		}

		c.reported = len(res.Diagnostics) > 0
	}

	return err
}
