package cli

import (
	"context"
	"io"

	"github.com/linecheck/linecheck/pkg/cli/flag"
	"github.com/linecheck/linecheck/pkg/di"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/urfave/cli/v3"
)

type Runner struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Fs      afero.Fs
	LDFlags *stdutil.LDFlags
	LogE    *logrus.Entry
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	flags := &di.Flags{
		GlobalFlags: &flag.GlobalFlags{},
	}
	cmd := &cli.Command{
		Name:      "linecheck",
		Usage:     "Report Python files exceeding 300 lines",
		UsageText: "linecheck [global options] [FILE ...]",
		Description: `linecheck counts lines of Python files passed as arguments.
Files which don't end with .py are ignored.
If some files exceed 300 lines, linecheck outputs them and exits with 1.

$ linecheck main.py util.py README.md

It is meant to be run as a pre-commit hook or a CI check.
`,
		Version:         versionString(r.LDFlags),
		Flags:           flags.Flags(),
		Writer:          r.Stdout,
		ErrWriter:       r.Stderr,
		HideHelpCommand: true,
		Action: func(ctx context.Context, c *cli.Command) error {
			flags.Args = c.Args().Slice()
			return di.Run(ctx, r.LogE, r.Fs, r.Stdout, flags)
		},
	}
	return cmd.Run(ctx, separateFileArgs(args, cmd.Flags)) //nolint:wrapcheck
}

func versionString(ldFlags *stdutil.LDFlags) string {
	version := ldFlags.Version
	if version == "" {
		version = "unknown"
	}
	if ldFlags.Commit == "" {
		return version
	}
	return version + " (" + ldFlags.Commit + ")"
}
