// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tabhistgo/internal/meta"
	"github.com/staranto/tabhistgo/internal/output"
	"github.com/staranto/tabhistgo/tabhist"
)

// ShowCommandAction is the action handler for the "show" subcommand. It
// loads a cached version without ever invoking anything: the latest by
// default, or --back N steps into the lineage.
func ShowCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	store, err := StoreFromFlags(cmd)
	if err != nil {
		return err
	}

	artifacts, err := store.List()
	if err != nil {
		return err
	}
	if len(artifacts) == 0 {
		return tabhist.ErrNoHistory
	}

	back := int(cmd.Int("back"))
	idx := len(artifacts) - 1 - back
	if back < 0 || idx < 0 {
		return fmt.Errorf("--back %d out of range for %d versions", back, len(artifacts))
	}

	t, err := store.Load(&artifacts[idx])
	if err != nil {
		return err
	}

	return output.Spit(t, cmd, os.Stdout)
}

// ShowCommandBuilder constructs the cli.Command for "show".
func ShowCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "show a cached version without recomputing",
		UsageText: `tabhist show [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:    "back",
				Aliases: []string{"b"},
				Usage:   "how many versions before the latest to show",
				Value:   0,
			},
		}, NewGlobalFlags("show")...),
		Action: ShowCommandAction,
	}
}
