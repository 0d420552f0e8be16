// Package verification verifies that the generated output matches the input table.
package verification

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/nesinstrgen/internal/emitter"
	"github.com/retroenv/nesinstrgen/internal/instruction"
	"github.com/retroenv/nesinstrgen/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// VerifyOutput verifies that the generated output file contains exactly one
// line per table row, in row order, with each row's name embedded in its
// line. For the Rust format the interpolated identifiers are additionally
// checked to be syntactically valid.
func VerifyOutput(logger *log.Logger, options options.Program, table *instruction.Table) error {
	if options.Output == "" {
		return errors.New("can not verify console output")
	}

	data, err := os.ReadFile(options.Output)
	if err != nil {
		return fmt.Errorf("reading output file for verification: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(data) == 0 {
		lines = nil
	}

	if len(lines) != len(table.Rows) {
		return fmt.Errorf("mismatched line count, %d lines for %d rows",
			len(lines), len(table.Rows))
	}

	for i, row := range table.Rows {
		if err := verifyLine(logger, options, row, lines[i]); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

func verifyLine(logger *log.Logger, options options.Program,
	row instruction.Row, line string) error {

	name := row.Value(instruction.ColumnName)
	if strings.Contains(name, `"`) {
		// the name is interpolated without escaping, a quote breaks the
		// generated source
		logger.Warn("Name contains a quote character, generated line is not valid source",
			log.String("name", name))
	} else if !strings.Contains(line, `"`+name+`"`) {
		return fmt.Errorf("name %q not found in generated line", name)
	}

	if options.Format != emitter.Rust {
		return nil
	}

	for _, column := range []string{instruction.ColumnOperation, instruction.ColumnAddressingMode} {
		value := row.Value(column)
		if !isIdentifier(value) {
			return fmt.Errorf("column %s value %q is not a valid identifier", column, value)
		}
	}
	return nil
}

// isIdentifier reports whether the value can be used as a bare identifier in
// the generated source line.
func isIdentifier(value string) bool {
	if value == "" {
		return false
	}
	for i, r := range value {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
