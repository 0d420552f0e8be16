// Package loader handles instruction table file loading operations.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/nesinstrgen/internal/instruction"
)

// Loader handles loading instruction tables from disk.
type Loader struct{}

// New creates a new instruction table loader.
func New() *Loader {
	return &Loader{}
}

// Load loads and parses a comma separated instruction table file.
// The first record is treated as the header, all following records become
// rows in file order. Column order in the file is irrelevant, lookup is
// by header name.
func (l *Loader) Load(path string) (*instruction.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	table, err := l.LoadFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading table %s: %w", path, err)
	}
	return table, nil
}

// LoadFromReader parses an instruction table from a reader.
func (l *Loader) LoadFromReader(reader io.Reader) (*instruction.Table, error) {
	csvr := csv.NewReader(reader)
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	header, err := csvr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header record")
		}
		return nil, fmt.Errorf("reading header record: %w", err)
	}

	columns := make([]string, len(header))
	copy(columns, header)

	table := &instruction.Table{
		Columns: columns,
	}

	for {
		record, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}

		cells := make(map[string]string, len(columns))
		for i, column := range columns {
			if _, ok := cells[column]; ok {
				continue // first occurrence of a duplicated header name wins
			}
			cells[column] = record[i]
		}
		table.Rows = append(table.Rows, instruction.NewRow(cells))
	}

	return table, nil
}
