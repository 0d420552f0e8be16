// Package emitter defines the available output formats.
package emitter

import (
	"io"

	"github.com/retroenv/nesinstrgen/internal/instruction"
	"github.com/retroenv/nesinstrgen/internal/options"
	"github.com/retroenv/nesinstrgen/internal/writer"
)

const (
	C    = "c"
	Go   = "go"
	Rust = "rust"
)

// Constructor is a callback that creates a table writer for an output format.
type Constructor func(table *instruction.Table, options options.Generator,
	mainWriter io.Writer) writer.TableWriter

// FileExtension returns the generated source file extension for an output
// format, used for deriving output file names in batch mode.
func FileExtension(format string) string {
	switch format {
	case C:
		return ".h"
	case Go:
		return ".go"
	case Rust:
		return ".rs"
	default:
		return ".txt"
	}
}
