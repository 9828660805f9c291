// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package tabhist

import (
	"context"
	"fmt"
	"time"

	"github.com/apex/log"

	"github.com/staranto/tabhistgo/table"
)

// Func is any table-producing operation worth memoizing, typically an
// expensive query. Errors pass through to the caller unchanged and nothing
// is persisted.
type Func func(ctx context.Context, args ...any) (*table.Table, error)

// Callable binds one Func to one Store. It keeps no state of its own; the
// freshness decision is re-derived from disk on every call, so concurrent
// callers may race and both recompute (accepted, see package doc).
type Callable struct {
	fn    Func
	store *Store
}

// Wrap returns the versioned form of fn.
func Wrap(fn Func, store *Store) *Callable {
	return &Callable{fn: fn, store: store}
}

// Store returns the underlying version store.
func (c *Callable) Store() *Store {
	return c.store
}

// Invoke returns the cached table if the most recent artifact is still
// fresh, otherwise calls fn, persists the result, and returns it. On the
// fresh path args are ignored: the cache does not verify that the artifact
// was produced with the same arguments.
//
// If fn succeeds but the save fails, the computed table is returned together
// with an ErrPersist-wrapped error.
func (c *Callable) Invoke(ctx context.Context, args ...any) (*table.Table, error) {
	latest, err := c.store.Latest()
	if err != nil {
		return nil, err
	}

	if latest != nil && c.fresh(latest) {
		log.Debugf("cache hit, loading %s", latest.Path)
		t, err := c.store.Load(latest)
		if err != nil {
			return nil, fmt.Errorf("failed to load cached version: %w", err)
		}
		return t, nil
	}

	log.Debug("cache miss, recomputing")
	return c.refresh(ctx, args...)
}

// Force recomputes and persists unconditionally, bypassing the freshness
// check.
func (c *Callable) Force(ctx context.Context, args ...any) (*table.Table, error) {
	return c.refresh(ctx, args...)
}

// Retrieve loads the most recent version without ever calling fn. Returns
// ErrNoHistory when no artifact exists.
func (c *Callable) Retrieve() (*table.Table, error) {
	latest, err := c.store.Latest()
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, ErrNoHistory
	}
	return c.store.Load(latest)
}

// fresh reports whether the artifact is within the expiry window. Elapsed
// time is truncated to whole seconds before the strict comparison, matching
// the second-granularity expiry contract.
func (c *Callable) fresh(a *Artifact) bool {
	expire := c.store.cfg.Expire
	if expire == NoExpiry {
		return true
	}
	elapsed := c.store.cfg.Now().Sub(a.CreatedAt).Truncate(time.Second)
	return elapsed < expire
}

func (c *Callable) refresh(ctx context.Context, args ...any) (*table.Table, error) {
	t, err := c.fn(ctx, args...)
	if err != nil {
		return nil, err
	}

	if _, err := c.store.Save(t); err != nil {
		// The computed value is still good; only the cache write failed.
		return t, err
	}
	return t, nil
}
