// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/nesinstrgen/internal/emitter"
	"github.com/retroenv/nesinstrgen/internal/emitter/ctable"
	"github.com/retroenv/nesinstrgen/internal/emitter/gotable"
	"github.com/retroenv/nesinstrgen/internal/emitter/rust"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateWriterConstructor creates the table writer constructor for the
// chosen output format.
func CreateWriterConstructor(format string) (emitter.Constructor, error) {
	switch format {
	case emitter.C:
		return ctable.New, nil
	case emitter.Go:
		return gotable.New, nil
	case emitter.Rust:
		return rust.New, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
