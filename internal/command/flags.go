// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"
	"path/filepath"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tabhistgo/internal/config"
)

func init() {
	cfg, _ = config.Load()
}

var cfg config.Type

// NewGlobalFlags returns the flags shared by every cache-touching command.
// Values resolve flag > env > <cmd>.<key> in tabhist.yaml > <key> > default.
func NewGlobalFlags(ns string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "cache directory holding the artifacts",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("TABHIST_DIR"),
				yaml.YAML(ns+".dir", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("dir", altsrc.StringSourcer(cfg.Source)),
			),
			Value: defaultDir(),
		},
		&cli.StringFlag{
			Name:    "pattern",
			Aliases: []string{"p"},
			Usage:   "artifact name pattern containing {timestamp}",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("TABHIST_PATTERN"),
				yaml.YAML(ns+".pattern", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("pattern", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "table_{timestamp}.csv",
		},
		&cli.IntFlag{
			Name:    "expire",
			Aliases: []string{"e"},
			Usage:   "seconds before the latest artifact goes stale (-1 = never)",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".expire", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("expire", altsrc.StringSourcer(cfg.Source)),
			),
			Value: -1,
			Validator: func(value int) error {
				return FlagValidators(int64(value), ExpireValidator)
			},
		},
		&cli.StringFlag{
			Name:    "method",
			Aliases: []string{"m"},
			Usage:   "serialization method for artifacts",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".method", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("method", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "csv",
			Validator: func(value string) error {
				return FlagValidators(value, MethodValidator)
			},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".output", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".titles", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("titles", altsrc.StringSourcer(cfg.Source)),
			),
			Value: true,
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".color", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
	}

	return flags
}

// defaultDir resolves the default cache directory.
// Precedence:
//  1. os.UserCacheDir()/tabhist
//  2. .tabhist under the CWD when no user cache dir can be resolved
func defaultDir() string {
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "tabhist")
	}
	return ".tabhist"
}
