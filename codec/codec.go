// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package codec defines the serialization contract between table values and
// artifacts on disk, plus a registry of named methods. Variants register
// themselves at init time; unknown methods are rejected when a store is
// configured, not when it is first used.
package codec

import (
	"errors"
	"fmt"
	"sort"

	"github.com/staranto/tabhistgo/table"
)

var (
	// ErrUnsupported is returned when a serialization method has no
	// registered codec.
	ErrUnsupported = errors.New("unsupported serialization method")

	// ErrDecode is returned when an artifact exists but cannot be parsed
	// under the configured method.
	ErrDecode = errors.New("failed to decode artifact")
)

// Codec marshals a table to a path and unmarshals a path back to a table.
type Codec interface {
	Marshal(path string, t *table.Table) error
	Unmarshal(path string) (*table.Table, error)
}

// Factory builds a Codec from opaque marshal/unmarshal option bags. A nil
// bag selects the method's defaults; a bag of the wrong type is an error.
type Factory func(marshalOpts, unmarshalOpts any) (Codec, error)

var registry = map[string]Factory{}

// Register makes a method available to New. Typically called from a codec
// package's init.
func Register(method string, f Factory) {
	registry[method] = f
}

// New builds the codec for a method, failing fast with ErrUnsupported for
// unknown methods.
func New(method string, marshalOpts, unmarshalOpts any) (Codec, error) {
	f, ok := registry[method]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnsupported, method, Methods())
	}
	return f(marshalOpts, unmarshalOpts)
}

// Methods returns the registered method names, sorted.
func Methods() []string {
	methods := make([]string, 0, len(registry))
	for m := range registry {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return methods
}
