// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package tabhist

import "errors"

var (
	// ErrNoHistory is returned by Retrieve when the lineage has no
	// artifacts yet.
	ErrNoHistory = errors.New("no cached versions exist")

	// ErrNotFound is returned by Load when an artifact handle no longer
	// points at a file on disk.
	ErrNotFound = errors.New("artifact not found")

	// ErrPersist wraps failures to write a new artifact. Invoke and Force
	// still return the computed table alongside it.
	ErrPersist = errors.New("failed to persist artifact")
)
