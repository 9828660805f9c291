// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/apex/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tabhistgo/internal/meta"
)

// PurgeCommandAction is the action handler for the "purge" subcommand. It
// removes artifacts older than --older-than hours. This is the only place
// artifacts are ever deleted; the cache itself never evicts.
func PurgeCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	hours := cmd.Int("older-than")
	if hours <= 0 {
		return errors.New("--older-than must be a positive number of hours")
	}

	store, err := StoreFromFlags(cmd)
	if err != nil {
		return err
	}

	artifacts, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}

	maxAge := time.Duration(hours) * time.Hour
	removed := 0
	for _, a := range artifacts {
		if time.Since(a.CreatedAt) <= maxAge {
			continue
		}
		if err := os.Remove(a.Path); err == nil {
			log.Debugf("removed cache file %s", a.Path)
			removed++
		} else {
			log.WithError(err).Warnf("failed to remove cache file %s", a.Path)
		}
	}

	fmt.Fprintf(os.Stdout, "removed %d of %d artifacts\n", removed, len(artifacts))
	return nil
}

// PurgeCommandBuilder constructs the cli.Command for "purge".
func PurgeCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "purge",
		Usage:     "delete cached versions older than a cutoff",
		UsageText: `tabhist purge --older-than <hours> [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:    "older-than",
				Usage:   "age in hours beyond which artifacts are removed",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("purge.older-than", altsrc.StringSourcer(meta.Config.Source)),
				),
			},
		}, NewGlobalFlags("purge")...),
		Action: PurgeCommandAction,
	}
}
