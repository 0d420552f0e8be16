// Package writer implements common generated source writing functionality.
package writer

import (
	"fmt"
	"io"

	"github.com/retroenv/nesinstrgen/internal/instruction"
	"github.com/retroenv/nesinstrgen/internal/options"
)

// TableWriter defines a shared interface used by the different output format
// packages. Their constructors need to return this shared interface, having
// them return the actual type instead of the interface results in compiler
// errors for the constructor variable that they are assigned to.
type TableWriter interface {
	Write() error
}

// Writer implements common generated source writing functionality.
type Writer struct {
	options options.Generator
	writer  io.Writer
}

// Fields holds the cell values of one row that the line templates consume,
// in template order.
type Fields struct {
	Name           string
	Operation      string
	AddressingMode string
	Cycles         string
}

// New creates a new writer.
func New(writer io.Writer, options options.Generator) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// RowFields extracts the four template fields from a row. An absent column
// yields the missing value marker, or an error in strict mode.
func (w *Writer) RowFields(row instruction.Row) (Fields, error) {
	fields := Fields{}
	columns := []struct {
		name  string
		value *string
	}{
		{instruction.ColumnName, &fields.Name},
		{instruction.ColumnOperation, &fields.Operation},
		{instruction.ColumnAddressingMode, &fields.AddressingMode},
		{instruction.ColumnCycles, &fields.Cycles},
	}

	for _, column := range columns {
		value, ok := row.Lookup(column.name)
		if !ok {
			if w.options.Strict {
				return Fields{}, fmt.Errorf("missing column %s", column.name)
			}
			value = instruction.MissingValue
		}
		*column.value = value
	}
	return fields, nil
}

// WriteLine writes one newline terminated generated source line.
func (w *Writer) WriteLine(format string, args ...any) error {
	if _, err := fmt.Fprintf(w.writer, format+"\n", args...); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}
