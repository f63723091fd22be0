// Package logging builds the logrus logger used for progress and diagnostics.
// Key material is never passed to the logger.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Level returns the log level for the verbosity flags. Quiet wins over verbose.
func Level(quiet, verbose bool) logrus.Level {
	switch {
	case quiet:
		return logrus.WarnLevel
	case verbose:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

// New returns a text logger writing to out.
func New(out io.Writer, quiet, verbose bool) *logrus.Logger {
	logger := logrus.New()

	logger.SetOutput(out)
	logger.SetLevel(Level(quiet, verbose))
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		PadLevelText:           false,
	})

	return logger
}

// Discard returns a logger that drops everything, for tests and library use.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}
