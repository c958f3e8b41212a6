package cli

import (
	"strings"
	"unicode"

	"github.com/urfave/cli/v3"
)

// separateFileArgs inserts "--" before the first positional argument so that
// urfave/cli stops parsing flags there.
// Paths after it are passed through verbatim, including empty ones.
// args[0] is the program name.
func separateFileArgs(args []string, flags []cli.Flag) []string {
	if len(args) == 0 {
		return args
	}
	valueFlags := map[string]struct{}{}
	for _, f := range flags {
		if _, ok := f.(*cli.BoolFlag); ok {
			continue
		}
		for _, name := range f.Names() {
			valueFlags[name] = struct{}{}
		}
	}
	ret := make([]string, 0, len(args)+1)
	ret = append(ret, args[0])
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(ret, args[i:]...)
		}
		if !isFlagArg(arg) {
			ret = append(ret, "--")
			return append(ret, args[i:]...)
		}
		ret = append(ret, arg)
		name, inline := parseFlagArg(arg)
		if _, ok := valueFlags[name]; ok && !inline && i+1 < len(args) {
			i++
			ret = append(ret, args[i])
		}
	}
	return ret
}

func isFlagArg(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	return arg[1] == '-' || unicode.IsLetter(rune(arg[1]))
}

// parseFlagArg returns the flag name and whether the value is given with "=".
func parseFlagArg(arg string) (string, bool) {
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	name, _, inline := strings.Cut(name, "=")
	return name, inline
}
