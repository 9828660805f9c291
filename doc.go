// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// tabhistgo is the main package for the tabhist command line tool. It wires
// the CLI, delegates to internal packages, and serves as the entry point.
// The reusable cache itself lives in the tabhist, table, and codec packages.
package main
