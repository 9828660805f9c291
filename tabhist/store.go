// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package tabhist

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/staranto/tabhistgo/codec"
	"github.com/staranto/tabhistgo/table"
)

// Artifact is a handle to one persisted version: a file whose name matches
// the configured pattern. CreatedAt is filesystem metadata, not parsed from
// the name. Artifacts are write-once, so the modification time reported by
// the filesystem is the creation time.
type Artifact struct {
	Path      string
	CreatedAt time.Time
}

// Name returns the artifact's file name within the cache directory.
func (a *Artifact) Name() string {
	return filepath.Base(a.Path)
}

// Store persists and discovers versions of one table lineage. All state
// lives on disk; every call re-derives the version list from a directory
// scan, so a process restart loses nothing.
type Store struct {
	cfg   Config
	codec codec.Codec
}

// NewStore validates cfg, creates the cache directory if needed, and
// resolves the serialization method. All configuration failures surface
// here, not on first use.
func NewStore(cfg Config) (*Store, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c, err := cfg.newCodec()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil { //nolint:mnd
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &Store{cfg: cfg, codec: c}, nil
}

// Config returns a copy of the store's configuration.
func (s *Store) Config() Config {
	return s.cfg
}

// List returns every artifact matching the pattern, oldest first. Ties on
// creation time are broken by path so the order is deterministic. An empty
// directory yields an empty slice, not an error.
func (s *Store) List() ([]Artifact, error) {
	glob := filepath.Join(s.cfg.Dir, strings.Replace(s.cfg.Pattern, TimestampToken, "*", 1))

	matches, err := filepath.Glob(glob)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts with %q: %w", glob, err)
	}

	artifacts := make([]Artifact, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			// Vanished between glob and stat. Skip it.
			log.WithError(err).Debugf("skipping unreadable artifact %s", m)
			continue
		}
		if info.IsDir() {
			continue
		}
		artifacts = append(artifacts, Artifact{Path: m, CreatedAt: info.ModTime()})
	}

	sort.Slice(artifacts, func(i, j int) bool {
		if artifacts[i].CreatedAt.Equal(artifacts[j].CreatedAt) {
			return artifacts[i].Path < artifacts[j].Path
		}
		return artifacts[i].CreatedAt.Before(artifacts[j].CreatedAt)
	})

	return artifacts, nil
}

// Latest returns the most recent artifact, or nil if none exist.
func (s *Store) Latest() (*Artifact, error) {
	artifacts, err := s.List()
	if err != nil {
		return nil, err
	}
	if len(artifacts) == 0 {
		return nil, nil
	}
	return &artifacts[len(artifacts)-1], nil
}

// Save writes t as a new artifact named with a fresh timestamp token and
// returns its handle. Saves within the same timestamper tick land on the
// same name and overwrite.
func (s *Store) Save(t *table.Table) (*Artifact, error) {
	name := strings.Replace(s.cfg.Pattern, TimestampToken, s.cfg.Timestamper(), 1)
	path := filepath.Join(s.cfg.Dir, name)

	if err := s.codec.Marshal(path, t); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPersist, path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPersist, path, err)
	}

	log.Debugf("saved artifact %s", path)
	return &Artifact{Path: path, CreatedAt: info.ModTime()}, nil
}

// Load reads an artifact back into a table. Returns ErrNotFound if the file
// is gone, codec.ErrDecode if it cannot be parsed.
func (s *Store) Load(a *Artifact) (*table.Table, error) {
	if _, err := os.Stat(a.Path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, a.Path)
	}

	t, err := s.codec.Unmarshal(a.Path)
	if err != nil {
		return nil, err
	}

	log.Debugf("loaded artifact %s", a.Path)
	return t, nil
}
