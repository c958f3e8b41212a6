// Package log creates the logrus logger of linecheck.
// Logs are diagnostics for humans and go to stderr,
// so they never mix with the check result written to stdout.
package log

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// New returns a logger writing to stderr.
// The program name and version are attached to every log.
func New(stderr io.Writer, version string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(stderr)
	return logger.WithFields(logrus.Fields{
		"version": version,
		"program": "linecheck",
	})
}

// SetLevel sets the log level.
// If level is empty, the level isn't changed.
func SetLevel(level string, logE *logrus.Entry) error {
	if level == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse the log level: %w", logerr.WithFields(err, logrus.Fields{
			"log_level": level,
		}))
	}
	logE.Logger.SetLevel(lvl)
	return nil
}
