package main

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with timestamps for diagnostic output.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks elapsed time for a long-running step. The timing lines
// only appear with --verbose since they log at info level against a
// default warn threshold.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(logger *log.Logger) *progress {
	return &progress{logger: logger, start: time.Now()}
}

// done logs the message with the elapsed duration since creation.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
