// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"strings"
)

// BoolFlags returns names of flags that don't require a value.
func BoolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals separates flag-like args from positionals so flags
// may follow the input files. '--' ends flag parsing; '-x=y' keeps its value
// inline; a non-bool flag consumes the next argument as its value.
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	boolFlags := BoolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			posArgs = append(posArgs, argv[i+1:]...)
			return
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
		case strings.Contains(arg, "="):
			flagArgs = append(flagArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if name := strings.TrimLeft(arg, "-"); !boolFlags[name] && i+1 < len(argv) {
				flagArgs = append(flagArgs, argv[i+1])
				i++
			}
		}
	}
	return
}
