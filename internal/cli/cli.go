// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/nesinstrgen/internal/emitter"
	"github.com/retroenv/nesinstrgen/internal/options"
)

// ParseFlags parses command line flags and returns program and generator options
func ParseFlags() (options.Program, options.Generator, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "") {
		return opts, options.Generator{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Generator{}, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Generator{}, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	}

	genOptions := createGeneratorOptions(opts)
	return opts, genOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: nesinstrgen [options] <instruction table .csv file>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the table file, please pass the table file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Format = strings.ToLower(opts.Format)

	validFormats := []string{emitter.C, emitter.Go, emitter.Rust}
	for _, valid := range validFormats {
		if opts.Format == valid {
			return nil
		}
	}

	return fmt.Errorf("unsupported output format: %s. Valid options: %s",
		opts.Format, strings.Join(validFormats, ", "))
}

// createGeneratorOptions creates generator options based on program options
func createGeneratorOptions(opts options.Program) options.Generator {
	genOptions := options.NewGenerator(opts.Format)
	genOptions.Strict = opts.Strict
	return genOptions
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the generated source file, printed on console if no name given")
	flags.StringVar(&opts.Format, "f", "rust", "output format of the generated table entries (c/go/rust)")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatic output file naming, for example *.csv")
	flags.BoolVar(&opts.Strict, "strict", false, "fail on missing table columns instead of emitting the missing value marker")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the generated output by re-scanning it and checking it against the table")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
