package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the command logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mines",
		Level:           level,
	}), nil
}

// playLogger returns the logger for local play. Output would corrupt the
// alternate screen, so logs are discarded unless --log-file names a file.
// The returned close function is always safe to call.
func playLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard)
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, func() {}, err
	}
	return logger, func() { f.Close() }, nil
}
