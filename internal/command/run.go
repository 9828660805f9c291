// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/apex/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tabhistgo/codec/csvcodec"
	"github.com/staranto/tabhistgo/internal/meta"
	"github.com/staranto/tabhistgo/internal/output"
	"github.com/staranto/tabhistgo/tabhist"
	"github.com/staranto/tabhistgo/table"
)

// RunCommandAction is the action handler for the "run" subcommand. It wraps
// the trailing command line in a versioned callable: a fresh artifact is
// loaded instead of re-running the command, anything else runs the command
// and persists its output.
func RunCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	argv := cmd.Args().Slice()
	if len(argv) == 0 {
		return errors.New("no command to run")
	}

	store, err := StoreFromFlags(cmd)
	if err != nil {
		return err
	}

	input := cmd.String("input")
	fn := tabhist.Wrap(func(ctx context.Context, args ...any) (*table.Table, error) {
		return runCommand(ctx, input, args...)
	}, store)

	// Pass the argv through the callable so the wrapped function stays
	// generic. On a cache hit the arguments are ignored by design.
	args := make([]any, len(argv))
	for i, a := range argv {
		args[i] = a
	}

	var t *table.Table
	if cmd.Bool("force") {
		t, err = fn.Force(ctx, args...)
	} else {
		t, err = fn.Invoke(ctx, args...)
	}

	// A persist failure still produces the computed table. Emit it, then
	// report the error.
	if t != nil {
		if serr := output.Spit(t, cmd, os.Stdout); serr != nil && err == nil {
			err = serr
		}
	}

	return err
}

// runCommand executes the argv and parses its stdout into a table per the
// --input format.
func runCommand(ctx context.Context, input string, args ...any) (*table.Table, error) {
	name := fmt.Sprint(args[0])
	rest := make([]string, 0, len(args)-1)
	for _, a := range args[1:] {
		rest = append(rest, fmt.Sprint(a))
	}

	c := exec.CommandContext(ctx, name, rest...)
	c.Stderr = os.Stderr

	out, err := c.Output()
	if err != nil {
		return nil, fmt.Errorf("command %q failed: %w", name, err)
	}

	if input == "json" {
		return table.FromJSON(out)
	}
	return csvcodec.Decode(bytes.NewReader(out), csvcodec.UnmarshalOptions{})
}

// RunCommandBuilder constructs the cli.Command for "run", wiring metadata,
// flags, and action handlers.
func RunCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "run a table-producing command through the cache",
		UsageText: `tabhist run [options] <command> [args...]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "recompute and persist even if the cache is fresh",
				HideDefault: true,
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "format the command prints on stdout",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("run.input", altsrc.StringSourcer(meta.Config.Source)),
					yaml.YAML("input", altsrc.StringSourcer(meta.Config.Source)),
				),
				Value: "csv",
				Validator: func(value string) error {
					return FlagValidators(value, InputValidator)
				},
			},
		}, NewGlobalFlags("run")...),
		Action: RunCommandAction,
	}
}
