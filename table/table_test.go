// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppend_ArityChecked(t *testing.T) {
	tab := New("a", "b")

	assert.NoError(t, tab.Append("1", "2"))
	assert.Error(t, tab.Append("1"))
	assert.Error(t, tab.Append("1", "2", "3"))

	assert.Equal(t, 1, tab.NumRows())
	assert.Equal(t, 2, tab.NumCols())
}

func TestEqual(t *testing.T) {
	base := New("a", "b")
	_ = base.Append("1", "2")

	tests := []struct {
		name  string
		other *Table
		want  bool
	}{
		{
			name:  "identical",
			other: &Table{Columns: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}},
			want:  true,
		},
		{
			name:  "nil table",
			other: nil,
			want:  false,
		},
		{
			name:  "different columns",
			other: &Table{Columns: []string{"a", "c"}, Rows: [][]string{{"1", "2"}}},
			want:  false,
		},
		{
			name:  "different cell",
			other: &Table{Columns: []string{"a", "b"}, Rows: [][]string{{"1", "x"}}},
			want:  false,
		},
		{
			name:  "extra row",
			other: &Table{Columns: []string{"a", "b"}, Rows: [][]string{{"1", "2"}, {"3", "4"}}},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Equal(tt.other))
		})
	}
}

func TestEqual_NilAndEmptyRows(t *testing.T) {
	a := New("x")
	b := &Table{Columns: []string{"x"}, Rows: [][]string{}}
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
}

func TestFromJSON(t *testing.T) {
	data := []byte(`[
		{"name": "zebra", "count": 3, "wild": true},
		{"name": "alpha", "count": 1.5, "wild": false}
	]`)

	tab, err := FromJSON(data)
	assert.NoError(t, err)
	assert.Equal(t, []string{"name", "count", "wild"}, tab.Columns)
	assert.Equal(t, [][]string{
		{"zebra", "3", "true"},
		{"alpha", "1.5", "false"},
	}, tab.Rows)
}

func TestFromJSON_MissingKeysBecomeEmptyCells(t *testing.T) {
	data := []byte(`[
		{"name": "zebra", "count": 3},
		{"name": "alpha"}
	]`)

	tab, err := FromJSON(data)
	assert.NoError(t, err)
	assert.Equal(t, [][]string{
		{"zebra", "3"},
		{"alpha", ""},
	}, tab.Rows)
}

func TestFromJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "invalid json", data: `{"name":`},
		{name: "not an array", data: `{"name": "zebra"}`},
		{name: "empty array", data: `[]`},
		{name: "array of scalars", data: `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromJSON([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
