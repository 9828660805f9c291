// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tabhistgo/internal/meta"
	"github.com/staranto/tabhistgo/internal/output"
	"github.com/staranto/tabhistgo/table"
)

// ListCommandAction is the action handler for the "list" subcommand. It
// renders the version lineage oldest first, the same order the store uses
// to pick the latest version.
func ListCommandAction(ctx context.Context, cmd *cli.Command) error {
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

	t := table.New("#", "artifact", "created", "age", "size")
	for i, a := range artifacts {
		size := "-"
		if info, err := os.Stat(a.Path); err == nil {
			size = humanize.Bytes(uint64(info.Size()))
		}
		if err := t.Append(
			strconv.Itoa(i),
			a.Name(),
			a.CreatedAt.Format("2006-01-02 15:04:05"),
			humanize.Time(a.CreatedAt),
			size,
		); err != nil {
			return fmt.Errorf("failed to build listing: %w", err)
		}
	}

	return output.Spit(t, cmd, os.Stdout)
}

// ListCommandBuilder constructs the cli.Command for "list".
func ListCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "list cached versions, oldest first",
		UsageText: `tabhist list [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewGlobalFlags("list"),
		Action: ListCommandAction,
	}
}
