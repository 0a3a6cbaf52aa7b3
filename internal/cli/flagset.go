package cli

import (
	"flag"
	"fmt"
	"io"

	"goprop/internal/version"
)

// UsageLine is the one-line synopsis printed on usage errors.
const UsageLine = "Usage: %s [flags] <annotations_file> <go_hierarchy_file>\n"

// NewFlagSet returns a FlagSet with ContinueOnError and the tool's help text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() { PrintUsage(fs.Output(), fs, name) }
	return fs
}

// PrintUsage writes the full help text for fs to out.
func PrintUsage(out io.Writer, fs *flag.FlagSet, name string) {
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}

	fmt.Fprintf(out, "%s – propagate GO annotations to parent classes and rank classes by gene count\n\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	fmt.Fprintf(out, UsageLine, name)

	fmt.Fprintln(out, "\nInput:")
	fmt.Fprintln(out, "  annotations_file            GAF-style TSV; '!' lines are comments; gene=col 2, GO id=col 5")
	fmt.Fprintln(out, "  go_hierarchy_file           TSV; GO id=col 3, name=col 4, comma-separated parents=col 5")
	fmt.Fprintln(out, "                              (.gz inputs are decompressed transparently)")
	fmt.Fprintf(out, "      --lenient               Skip rows with too few columns instead of failing [%s]\n", def("lenient"))

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -n, --top int               Number of classes to report (0=all) [%s]\n", def("top"))
	fmt.Fprintf(out, "  -o, --output string         Output: text | tsv | json | jsonl | yaml [%s]\n", def("output"))
	fmt.Fprintf(out, "      --no-header             Suppress header lines (text, tsv) [%s]\n", def("no-header"))

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings [%s]\n", def("quiet"))
	fmt.Fprintf(out, "      --verbose               Log stage statistics to stderr [%s]\n", def("verbose"))
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help")
}
