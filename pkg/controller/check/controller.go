// Package check implements the line count check of linecheck.
// It reads the files named on the command line, keeps Python files,
// counts their lines, and reports every file longer than the fixed limit.
// The first file that can't be read aborts the whole check.
package check

import (
	"io"

	"github.com/spf13/afero"
)

type Controller struct {
	fs    afero.Fs
	param *Param
}

// Param holds the input of a check.
type Param struct {
	// FilePaths are candidate paths in the order they were passed.
	FilePaths []string
	// Stdout receives the report and read errors.
	Stdout io.Writer
}

// New creates a Controller reading files from fs.
func New(fs afero.Fs, param *Param) *Controller {
	return &Controller{
		fs:    fs,
		param: param,
	}
}
