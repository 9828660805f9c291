// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package arrowcodec serializes tables as Arrow IPC streams with one utf8
// field per column. Useful when artifacts are consumed by Arrow-native
// tooling rather than spreadsheets.
package arrowcodec

import (
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/staranto/tabhistgo/codec"
	"github.com/staranto/tabhistgo/table"
)

// Method is the registry name for this codec.
const Method = "arrow"

// Options tune the codec. The same bag is accepted for both the marshal and
// unmarshal sides.
type Options struct {
	// Allocator is the Arrow memory allocator. Zero means the default.
	Allocator memory.Allocator
}

func init() {
	codec.Register(Method, func(marshalOpts, unmarshalOpts any) (codec.Codec, error) {
		c := &Codec{alloc: memory.DefaultAllocator}

		for _, opts := range []any{marshalOpts, unmarshalOpts} {
			switch o := opts.(type) {
			case nil:
			case *Options:
				if o.Allocator != nil {
					c.alloc = o.Allocator
				}
			case Options:
				if o.Allocator != nil {
					c.alloc = o.Allocator
				}
			default:
				return nil, fmt.Errorf("arrow: options must be arrowcodec.Options, got %T", opts)
			}
		}

		return c, nil
	})
}

// Codec reads and writes tables as Arrow IPC stream files.
type Codec struct {
	alloc memory.Allocator
}

// Marshal writes t to path as a single record batch.
func (c *Codec) Marshal(path string, t *table.Table) error {
	if t.NumCols() == 0 {
		return fmt.Errorf("arrow: table has no columns")
	}

	fields := make([]arrow.Field, t.NumCols())
	for i, col := range t.Columns {
		fields[i] = arrow.Field{Name: col, Type: arrow.BinaryTypes.String}
	}
	schema := arrow.NewSchema(fields, nil)

	bldr := array.NewRecordBuilder(c.alloc, schema)
	defer bldr.Release()

	for _, row := range t.Rows {
		for i, cell := range row {
			bldr.Field(i).(*array.StringBuilder).Append(cell)
		}
	}

	rec := bldr.NewRecord()
	defer rec.Release()

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := ipc.NewWriter(f, ipc.WithSchema(schema), ipc.WithAllocator(c.alloc))
	if err := w.Write(rec); err != nil {
		_ = w.Close()
		_ = f.Close()
		return fmt.Errorf("failed to write record: %w", err)
	}
	if err := w.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to close writer: %w", err)
	}

	return f.Close()
}

// Unmarshal reads the Arrow IPC file at path back into a table, collecting
// every record batch in the stream.
func (c *Codec) Unmarshal(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := ipc.NewReader(f, ipc.WithAllocator(c.alloc))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", codec.ErrDecode, path, err)
	}
	defer r.Release()

	schema := r.Schema()
	cols := make([]string, schema.NumFields())
	for i := range cols {
		cols[i] = schema.Field(i).Name
	}
	t := table.New(cols...)

	for r.Next() {
		rec := r.Record()
		for rowIdx := 0; rowIdx < int(rec.NumRows()); rowIdx++ {
			row := make([]string, len(cols))
			for colIdx := range cols {
				arr, ok := rec.Column(colIdx).(*array.String)
				if !ok {
					return nil, fmt.Errorf("%w: %s: column %q is not utf8", codec.ErrDecode, path, cols[colIdx])
				}
				row[colIdx] = arr.Value(rowIdx)
			}
			t.Rows = append(t.Rows, row)
		}
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", codec.ErrDecode, path, err)
	}

	return t, nil
}
