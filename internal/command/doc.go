// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command wires the tabhist CLI: builders, actions, and shared
// flags for the run/list/show/purge subcommands.
package command
