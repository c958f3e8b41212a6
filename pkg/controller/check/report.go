package check

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

func (c *Controller) report(violations []*Violation) error {
	b := &strings.Builder{}
	fmt.Fprintf(b, "Files exceeding %d lines:\n", maxLines)
	for _, v := range violations {
		fmt.Fprintf(b, "  %s: %d lines\n", v.Path, v.LineCount)
	}
	if _, err := io.WriteString(c.param.Stdout, b.String()); err != nil {
		return fmt.Errorf("output the result: %w", err)
	}
	return nil
}

func (c *Controller) reportReadError(filePath string, err error) error {
	if _, e := fmt.Fprintf(c.param.Stdout, "Error reading %s: %s\n", filePath, describe(err)); e != nil {
		return fmt.Errorf("output a read error: %w", e)
	}
	return nil
}

// describe returns the cause of a read error without the operation and path prefix,
// which the message already has.
func describe(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
