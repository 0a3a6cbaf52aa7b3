// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"goprop-core/rank"
	"goprop/internal/cliutil"
)

// Output formats accepted by --output.
var Formats = []string{"text", "tsv", "json", "jsonl", "yaml"}

// ErrUsage is wrapped by errors caused by a wrong number of positionals.
var ErrUsage = errors.New("usage error")

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	AnnotationFile string
	HierarchyFile  string
	Lenient        bool

	// Output
	Top    int
	Output string
	Header bool // true unless --no-header

	// Misc
	Quiet   bool
	Verbose bool
	Version bool
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags may appear before or after the two positionals.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.BoolVar(&opt.Lenient, "lenient", false, "skip rows with too few columns [false]")

	fs.IntVar(&opt.Top, "top", rank.DefaultTop, "number of classes to report (0 = all)")
	fs.IntVar(&opt.Top, "n", rank.DefaultTop, "alias of --top")
	fs.StringVar(&opt.Output, "output", "text", "output: text | tsv | json | jsonl | yaml")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header lines [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Verbose, "verbose", false, "log stage statistics [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")
	fs.BoolVar(&help, "help", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	if len(posArgs) != 2 {
		return opt, fmt.Errorf("%w: expected 2 input files, got %d", ErrUsage, len(posArgs))
	}
	opt.AnnotationFile, opt.HierarchyFile = posArgs[0], posArgs[1]

	if opt.Top < 0 {
		return opt, errors.New("--top must be ≥ 0")
	}
	if !validFormat(opt.Output) {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

func validFormat(f string) bool {
	for _, k := range Formats {
		if f == k {
			return true
		}
	}
	return false
}
