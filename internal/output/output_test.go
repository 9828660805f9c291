// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/staranto/tabhistgo/table"
)

func sample() *table.Table {
	t := table.New("name", "count")
	_ = t.Append("alpha", "1")
	_ = t.Append("zebra", "3")
	return t
}

// spitWith runs Spit under a throwaway cli.Command so flag parsing behaves
// exactly as in production.
func spitWith(t *testing.T, tab *table.Table, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: "text"},
			&cli.BoolWithInverseFlag{Name: "titles", Value: true},
			&cli.BoolWithInverseFlag{Name: "color", Value: false},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return Spit(tab, cmd, &buf)
		},
	}

	err := app.Run(context.Background(), append([]string{"test"}, args...))
	assert.NoError(t, err)
	return buf.String()
}

func TestSpit_Text(t *testing.T) {
	out := spitWith(t, sample())
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "zebra")
}

func TestSpit_TextWithoutTitles(t *testing.T) {
	out := spitWith(t, sample(), "--no-titles")
	assert.NotContains(t, out, "name")
	assert.Contains(t, out, "alpha")
}

func TestSpit_CSV(t *testing.T) {
	out := spitWith(t, sample(), "--output", "csv")
	assert.Equal(t, "name,count\nalpha,1\nzebra,3\n", out)
}

func TestSpit_JSON(t *testing.T) {
	out := spitWith(t, sample(), "--output", "json")

	var rows []map[string]string
	assert.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, 2)
	assert.Equal(t, "alpha", rows[0]["name"])
	assert.Equal(t, "3", rows[1]["count"])
}

func TestSpit_YAML(t *testing.T) {
	out := spitWith(t, sample(), "--output", "yaml")

	var rows []map[string]string
	assert.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, 2)
	assert.Equal(t, "zebra", rows[1]["name"])
}

func TestRowMaps(t *testing.T) {
	rows := rowMaps(sample())
	assert.Equal(t, []map[string]string{
		{"name": "alpha", "count": "1"},
		{"name": "zebra", "count": "3"},
	}, rows)
}
