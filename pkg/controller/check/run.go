package check

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

const (
	maxLines     = 300
	targetSuffix = ".py"
)

var (
	// ErrLimitExceeded is returned after files exceeding the limit were reported.
	ErrLimitExceeded = errors.New("files exceed the line limit")
	// ErrReadFile is returned after a read error was reported.
	ErrReadFile = errors.New("failed to read a file")
)

// IsTarget returns true if the file is checked.
func IsTarget(filePath string) bool {
	return strings.HasSuffix(filePath, targetSuffix)
}

// Run checks files in order and writes the result to Param.Stdout.
// It returns nil if no file exceeds the limit.
// Otherwise, it returns an error wrapping ErrLimitExceeded or ErrReadFile,
// and the result has already been written.
func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	violations := []*Violation{}
	for _, filePath := range c.param.FilePaths {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("check files: %w", err)
		}
		logE := logE.WithField("file", filePath)
		if !IsTarget(filePath) {
			logE.Debug("skip a file because it isn't a Python file")
			continue
		}
		lineCount, err := c.countFileLines(filePath)
		if err != nil {
			logerr.WithError(logE, err).Debug("read a file")
			if e := c.reportReadError(filePath, err); e != nil {
				return e
			}
			return fmt.Errorf("%w: %w", ErrReadFile, err)
		}
		logE.WithField("line_count", lineCount).Debug("count lines")
		if lineCount > maxLines {
			violations = append(violations, &Violation{
				Path:      filePath,
				LineCount: lineCount,
			})
		}
	}
	if len(violations) == 0 {
		return nil
	}
	if err := c.report(violations); err != nil {
		return err
	}
	return ErrLimitExceeded
}
