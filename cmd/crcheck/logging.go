// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// setupLogging installs the process slog default: a leveled, colored
// handler on stderr, or a plain one appending to logFile when given.
// The returned func closes the log file, if any.
func setupLogging(verbose bool, logFile string) (func(), error) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	out := io.Writer(os.Stderr)
	closer := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", logFile, err)
		}
		out = f
		closer = func() { f.Close() }
	}

	handler := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
	slog.SetDefault(slog.New(handler))
	return closer, nil
}
