// Package options contains the program options.
package options

import "strings"

// Program options of the generator.
type Program struct {
	Input  string // instruction table .csv file
	Output string // generated source file, stdout if empty
	Batch  string // glob pattern for batch processing

	Format string // output format name

	Strict bool // fail on missing columns instead of emitting a marker
	Verify bool // re-scan the generated output and validate it

	Debug bool
	Quiet bool
}

// Generator defines options that are passed down to the line emitters.
type Generator struct {
	Format string // what output format to use

	Strict bool
}

// NewGenerator returns a new options instance with default options.
func NewGenerator(format string) Generator {
	return Generator{
		Format: strings.ToLower(format),
	}
}
