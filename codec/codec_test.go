// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staranto/tabhistgo/table"
)

type fakeCodec struct{}

func (fakeCodec) Marshal(path string, t *table.Table) error   { return nil }
func (fakeCodec) Unmarshal(path string) (*table.Table, error) { return nil, nil }

func TestNew_UnknownMethodFailsFast(t *testing.T) {
	_, err := New("parquet", nil, nil)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, err.Error(), "parquet")
}

func TestRegisterAndNew(t *testing.T) {
	Register("fake", func(marshalOpts, unmarshalOpts any) (Codec, error) {
		return fakeCodec{}, nil
	})

	c, err := New("fake", nil, nil)
	assert.NoError(t, err)
	assert.NotNil(t, c)

	assert.Contains(t, Methods(), "fake")
}
