// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package tabhist

import (
	"fmt"
	"strings"
	"time"

	"github.com/staranto/tabhistgo/codec"
	// The csv codec is the default method and is always available.
	_ "github.com/staranto/tabhistgo/codec/csvcodec"
)

// TimestampToken is the placeholder in Config.Pattern that gets replaced by
// the timestamper's output on save, and by a wildcard on discovery.
const TimestampToken = "{timestamp}"

// NoExpiry disables expiry: once a version exists, Invoke never recomputes.
const NoExpiry time.Duration = -1

// DefaultMethod is the serialization method used when Config.Method is
// empty.
const DefaultMethod = "csv"

// Config describes one cache lineage. It is validated eagerly by NewStore
// and not mutated afterward.
type Config struct {
	// Dir is the cache directory. Created if absent.
	Dir string

	// Pattern is the artifact file name with TimestampToken in it exactly
	// once, e.g. "query_{timestamp}.csv". The timestamper's output must not
	// contain a path separator or the discovery glob will miss it.
	Pattern string

	// Expire is how long the most recent artifact stays fresh. Elapsed time
	// is truncated to whole seconds before the strict < comparison, so an
	// artifact is stale once a full Expire has passed. Zero expires
	// immediately (every Invoke recomputes); NoExpiry never expires. Any
	// other negative value is a configuration error.
	Expire time.Duration

	// Timestamper produces the token substituted into Pattern, fresh on
	// each save. Defaults to the current local time as YYYY-MM-DD-HH:MM:SS.
	// Two saves within one timestamper tick overwrite the same file.
	Timestamper func() string

	// Now is the clock used for freshness checks. Defaults to time.Now.
	Now func() time.Time

	// Method selects the serialization codec. Defaults to "csv".
	Method string

	// MarshalOptions and UnmarshalOptions are passed through to the codec
	// factory. Nil selects the method's defaults.
	MarshalOptions   any
	UnmarshalOptions any
}

// DefaultTimestamper formats the current local time as YYYY-MM-DD-HH:MM:SS,
// matching the default artifact naming.
func DefaultTimestamper() string {
	return time.Now().Format("2006-01-02-15:04:05")
}

func (cfg *Config) validate() error {
	if cfg.Dir == "" {
		return fmt.Errorf("directory must be set")
	}

	if strings.Count(cfg.Pattern, TimestampToken) != 1 {
		return fmt.Errorf("pattern must contain %q exactly once, got %q", TimestampToken, cfg.Pattern)
	}

	if cfg.Expire < 0 && cfg.Expire != NoExpiry {
		return fmt.Errorf("expire must be nonnegative or NoExpiry, got %v", cfg.Expire)
	}

	if cfg.Timestamper == nil {
		cfg.Timestamper = DefaultTimestamper
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Method == "" {
		cfg.Method = DefaultMethod
	}

	return nil
}

func (cfg *Config) newCodec() (codec.Codec, error) {
	return codec.New(cfg.Method, cfg.MarshalOptions, cfg.UnmarshalOptions)
}
