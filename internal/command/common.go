// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"time"

	"github.com/urfave/cli/v3"

	// Register the non-default serialization methods so --method can select
	// them. csv registers through the tabhist package itself.
	_ "github.com/staranto/tabhistgo/codec/arrowcodec"
	"github.com/staranto/tabhistgo/internal/meta"
	"github.com/staranto/tabhistgo/tabhist"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// StoreFromFlags builds the version store described by the shared flags.
// Configuration problems (bad pattern, unknown method, uncreatable dir)
// surface here, before any command work happens.
func StoreFromFlags(cmd *cli.Command) (*tabhist.Store, error) {
	expire := tabhist.NoExpiry
	if secs := cmd.Int("expire"); secs >= 0 {
		expire = time.Duration(secs) * time.Second
	}

	return tabhist.NewStore(tabhist.Config{
		Dir:     cmd.String("dir"),
		Pattern: cmd.String("pattern"),
		Expire:  expire,
		Method:  cmd.String("method"),
	})
}
