// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	lgtable "github.com/charmbracelet/lipgloss/v2/table"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/staranto/tabhistgo/codec/csvcodec"
	"github.com/staranto/tabhistgo/internal/config"
	"github.com/staranto/tabhistgo/table"
)

// Spit emits t to w in the format selected by --output. Text goes through
// the lipgloss table renderer; csv, json and yaml are machine-readable.
func Spit(t *table.Table, cmd *cli.Command, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	switch cmd.String("output") {
	case "csv":
		return csvcodec.Encode(w, t, csvcodec.MarshalOptions{})
	case "json":
		// Key order inside each object is alphabetical; consumers wanting
		// column order should use csv.
		out, err := json.MarshalIndent(rowMaps(t), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		out, err := yaml.Marshal(rowMaps(t))
		if err != nil {
			return fmt.Errorf("failed to marshal yaml output: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		TableWriter(t, cmd, w)
		return nil
	}
}

// rowMaps converts the table into one map per row, keyed by column name.
func rowMaps(t *table.Table) []map[string]string {
	rows := make([]map[string]string, 0, t.NumRows())
	for _, row := range t.Rows {
		m := make(map[string]string, t.NumCols())
		for i, col := range t.Columns {
			m[col] = row[i]
		}
		rows = append(rows, m)
	}
	return rows
}

// TableWriter renders the table in tabular form honoring color, titles and
// padding options.
func TableWriter(t *table.Table, cmd *cli.Command, w io.Writer) {
	if t.NumRows() == 0 && !cmd.Bool("titles") {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if cmd.Bool("color") {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	lt := lgtable.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {

			pad, _ := config.GetInt("padding", 0)
			log.Debugf("padding: %v", pad)

			var style lipgloss.Style
			switch {
			case row == lgtable.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(t.Rows...)

	if cmd.Bool("titles") {
		// https://github.com/charmbracelet/lipgloss/issues/261
		lt = lt.Headers(t.Columns...).BorderHeader(false)
	}
	fmt.Fprintln(w, lt)
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}
