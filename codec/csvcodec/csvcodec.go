// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package csvcodec is the default serialization method: a header row of
// column names followed by one CSV record per table row. Cells round-trip
// exactly; nothing is typed on the way back in.
package csvcodec

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/staranto/tabhistgo/codec"
	"github.com/staranto/tabhistgo/table"
)

// Method is the registry name for this codec.
const Method = "csv"

// MarshalOptions tune the CSV writer.
type MarshalOptions struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
	// UseCRLF terminates records with \r\n instead of \n.
	UseCRLF bool
}

// UnmarshalOptions tune the CSV reader.
type UnmarshalOptions struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
	// Comment, if non-zero, starts an ignored line.
	Comment rune
	// TrimLeadingSpace strips leading whitespace in fields.
	TrimLeadingSpace bool
}

func init() {
	codec.Register(Method, func(marshalOpts, unmarshalOpts any) (codec.Codec, error) {
		c := &Codec{}

		switch o := marshalOpts.(type) {
		case nil:
		case *MarshalOptions:
			c.marshalOpts = *o
		case MarshalOptions:
			c.marshalOpts = o
		default:
			return nil, fmt.Errorf("csv: marshal options must be csvcodec.MarshalOptions, got %T", marshalOpts)
		}

		switch o := unmarshalOpts.(type) {
		case nil:
		case *UnmarshalOptions:
			c.unmarshalOpts = *o
		case UnmarshalOptions:
			c.unmarshalOpts = o
		default:
			return nil, fmt.Errorf("csv: unmarshal options must be csvcodec.UnmarshalOptions, got %T", unmarshalOpts)
		}

		return c, nil
	})
}

// Codec reads and writes tables as CSV files.
type Codec struct {
	marshalOpts   MarshalOptions
	unmarshalOpts UnmarshalOptions
}

// Marshal writes t to path, creating or truncating the file.
func (c *Codec) Marshal(path string, t *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Encode(f, t, c.marshalOpts); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Unmarshal reads the CSV file at path back into a table.
func (c *Codec) Unmarshal(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Decode(f, c.unmarshalOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", codec.ErrDecode, path, err)
	}
	return t, nil
}

// Encode writes t as CSV to w. Shared by the file codec and the CLI's csv
// output mode.
func Encode(w io.Writer, t *table.Table, opts MarshalOptions) error {
	if t.NumCols() == 0 {
		return fmt.Errorf("csv: table has no columns")
	}

	cw := csv.NewWriter(w)
	if opts.Comma != 0 {
		cw.Comma = opts.Comma
	}
	cw.UseCRLF = opts.UseCRLF

	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Decode reads CSV from r into a table. The first record is the header.
func Decode(r io.Reader, opts UnmarshalOptions) (*table.Table, error) {
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.Comment = opts.Comment
	cr.TrimLeadingSpace = opts.TrimLeadingSpace

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header record")
	}

	t := table.New(records[0]...)
	for _, rec := range records[1:] {
		if err := t.Append(rec...); err != nil {
			return nil, err
		}
	}
	return t, nil
}
