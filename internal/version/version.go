// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package version

// Version is set at build time via -ldflags.
var Version = "v0.1.0"
