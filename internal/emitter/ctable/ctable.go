// Package ctable writes the generated instruction table lines in C format.
package ctable

import (
	"io"

	"github.com/retroenv/nesinstrgen/internal/instruction"
	"github.com/retroenv/nesinstrgen/internal/options"
	"github.com/retroenv/nesinstrgen/internal/writer"
)

var entry = `{ "%s", %s, %s, %s },`

// FileWriter writes the generated source file content.
type FileWriter struct {
	table   *instruction.Table
	options options.Generator
	writer  *writer.Writer
}

// New creates a new file writer.
// nolint: ireturn
func New(table *instruction.Table, options options.Generator,
	mainWriter io.Writer) writer.TableWriter {

	return FileWriter{
		table:   table,
		options: options,
		writer:  writer.New(mainWriter, options),
	}
}

// Write writes one array initializer row per table row, in row order.
func (f FileWriter) Write() error {
	for _, row := range f.table.Rows {
		fields, err := f.writer.RowFields(row)
		if err != nil {
			return err
		}
		if err := f.writer.WriteLine(entry, fields.Name, fields.Operation,
			fields.AddressingMode, fields.Cycles); err != nil {
			return err
		}
	}
	return nil
}
