package di

import "github.com/linecheck/linecheck/pkg/cli/flag"

// Flags holds the parsed command line.
type Flags struct {
	*flag.GlobalFlags

	// Args are the positional arguments, i.e. the candidate file paths.
	Args []string
}
