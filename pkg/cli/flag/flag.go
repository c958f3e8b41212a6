package flag

import "github.com/urfave/cli/v3"

type GlobalFlags struct {
	LogLevel string
}

func (gf *GlobalFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Sources:     cli.EnvVars("LINECHECK_LOG_LEVEL"),
			Destination: &gf.LogLevel,
		},
	}
}
