package check

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"unicode/utf8"
)

var errIsDirectory = errors.New("is a directory")

// DecodeError is returned when a file isn't valid UTF-8.
type DecodeError struct {
	Offset int
	Byte   byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid UTF-8 byte 0x%02x at offset %d", e.Byte, e.Offset)
}

func (c *Controller) countFileLines(filePath string) (int, error) {
	f, err := c.fs.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("open a file: %w", err)
	}
	defer f.Close()
	finfo, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("get a file stat: %w", err)
	}
	if finfo.IsDir() {
		return 0, &fs.PathError{Op: "read", Path: filePath, Err: errIsDirectory}
	}
	b, err := io.ReadAll(f)
	if err != nil {
		return 0, fmt.Errorf("read a file: %w", err)
	}
	if err := validateUTF8(b); err != nil {
		return 0, err
	}
	return countLines(b), nil
}

func validateUTF8(b []byte) error {
	if utf8.Valid(b) {
		return nil
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return &DecodeError{Offset: i, Byte: b[i]}
		}
		i += size
	}
	return nil
}

// countLines counts line records.
// "\n", "\r\n", and "\r" end a line, and a trailing line without a terminator is counted too.
func countLines(b []byte) int {
	count := 0
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '\n':
			count++
		case '\r':
			count++
			if i+1 < len(b) && b[i+1] == '\n' {
				i++
			}
		}
	}
	if n := len(b); n > 0 && b[n-1] != '\n' && b[n-1] != '\r' {
		count++
	}
	return count
}
