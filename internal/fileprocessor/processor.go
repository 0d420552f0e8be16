// Package fileprocessor handles table loading and output generation operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/nesinstrgen/internal/config"
	"github.com/retroenv/nesinstrgen/internal/emitter"
	"github.com/retroenv/nesinstrgen/internal/instruction"
	"github.com/retroenv/nesinstrgen/internal/loader"
	"github.com/retroenv/nesinstrgen/internal/options"
	"github.com/retroenv/nesinstrgen/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete generation workflow for one table file
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program,
	genOptions options.Generator) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	table, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading table: %w", err)
	}
	logger.Debug("Table loaded",
		log.String("file", opts.Input),
		log.Int("rows", len(table.Rows)))

	if genOptions.Strict {
		if err := checkRequiredColumns(table); err != nil {
			return fmt.Errorf("checking table header: %w", err)
		}
	}

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok {
			_ = closer.Close()
		}
	}()

	writerConstructor, err := config.CreateWriterConstructor(opts.Format)
	if err != nil {
		return fmt.Errorf("creating writer constructor: %w", err)
	}

	fileWriter := writerConstructor(table, genOptions, writer)
	if err := fileWriter.Write(); err != nil {
		return fmt.Errorf("generating output: %w", err)
	}

	if opts.Verify {
		if closer, ok := writer.(io.Closer); ok && opts.Output != "" {
			_ = closer.Close()
		}
		if err := verification.VerifyOutput(logger, opts, table); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		logger.Info("Verification successful")
	}

	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile, format string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + emitter.FileExtension(format)
}

// checkRequiredColumns validates that the table header contains all columns
// that the line templates consume.
func checkRequiredColumns(table *instruction.Table) error {
	columns := []string{
		instruction.ColumnName,
		instruction.ColumnOperation,
		instruction.ColumnAddressingMode,
		instruction.ColumnCycles,
	}
	for _, column := range columns {
		if !table.HasColumn(column) {
			return fmt.Errorf("missing column %s", column)
		}
	}
	return nil
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("nesinstrgen", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
