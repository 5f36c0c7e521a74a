// Package config handles application configuration and setup
package config

import (
	"io"

	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger writing to output, logging debug
// messages only if debug is set.
func CreateLogger(output io.Writer, debug bool) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Output = output
	if debug {
		cfg.Level = log.DebugLevel
	}
	return log.NewWithConfig(cfg)
}
