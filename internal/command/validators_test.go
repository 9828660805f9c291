// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputValidator(t *testing.T) {
	for _, v := range []string{"text", "csv", "json", "yaml"} {
		assert.NoError(t, OutputValidator(v))
	}
	assert.Error(t, OutputValidator("xml"))
	assert.Error(t, OutputValidator(""))
}

func TestMethodValidator(t *testing.T) {
	// csv registers via tabhist, arrow via this package's blank import.
	assert.NoError(t, MethodValidator("csv"))
	assert.NoError(t, MethodValidator("arrow"))
	assert.Error(t, MethodValidator("parquet"))
}

func TestInputValidator(t *testing.T) {
	assert.NoError(t, InputValidator("csv"))
	assert.NoError(t, InputValidator("json"))
	assert.Error(t, InputValidator("yaml"))
}

func TestExpireValidator(t *testing.T) {
	assert.NoError(t, ExpireValidator(int64(-1)))
	assert.NoError(t, ExpireValidator(int64(0)))
	assert.NoError(t, ExpireValidator(int64(3600)))
	assert.Error(t, ExpireValidator(int64(-2)))
}

func TestFlagValidators_StopsAtFirstError(t *testing.T) {
	calls := 0
	ok := func(any) error { calls++; return nil }

	err := FlagValidators("xml", ok, OutputValidator, ok)
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
