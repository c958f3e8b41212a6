package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/linecheck/linecheck/pkg/cli"
	"github.com/linecheck/linecheck/pkg/controller/check"
	"github.com/linecheck/linecheck/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var (
	version = "" //nolint:gochecknoglobals
	commit  = "" //nolint:gochecknoglobals
	date    = "" //nolint:gochecknoglobals
)

func main() {
	logE := log.New(os.Stderr, version)
	if err := core(logE); err != nil {
		// The result has already been written to stdout.
		if errors.Is(err, check.ErrLimitExceeded) || errors.Is(err, check.ErrReadFile) {
			os.Exit(1)
		}
		logerr.WithError(logE, err).Fatal("linecheck failed")
	}
}

func core(logE *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	runner := &cli.Runner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Fs:     afero.NewOsFs(),
		LDFlags: &stdutil.LDFlags{
			Version: version,
			Commit:  commit,
			Date:    date,
		},
		LogE: logE,
	}
	return runner.Run(ctx, os.Args...)
}
