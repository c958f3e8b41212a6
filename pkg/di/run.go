// Package di wires the dependencies of linecheck.
// It turns parsed command line flags into the check controller's input and runs it.
package di

import (
	"context"
	"fmt"
	"io"

	"github.com/linecheck/linecheck/pkg/controller/check"
	"github.com/linecheck/linecheck/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Run configures logging and checks the files passed as arguments.
func Run(ctx context.Context, logE *logrus.Entry, fs afero.Fs, stdout io.Writer, flags *Flags) error {
	if err := log.SetLevel(flags.LogLevel, logE); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}
	ctrl := check.New(fs, buildParam(flags, stdout))
	return ctrl.Run(ctx, logE) //nolint:wrapcheck
}

func buildParam(flags *Flags, stdout io.Writer) *check.Param {
	return &check.Param{
		FilePaths: flags.Args,
		Stdout:    stdout,
	}
}
