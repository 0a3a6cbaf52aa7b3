// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"goprop-core/rank"
)

var (
	rowFormat    = fmt.Sprintf("%%-%ds %%-%ds %%d\n", IDWidth, NameWidth)
	headerFormat = fmt.Sprintf("%%-%ds %%-%ds %%s\n", IDWidth, NameWidth)
	separator    = strings.Repeat("=", SeparatorWidth) + "\n"
)

// WriteText prints the fixed-width ranking table: left-justified id and name
// columns followed by the gene count. Long values are not truncated.
func WriteText(w io.Writer, list []rank.Entry, header bool) error {
	if header {
		if _, err := fmt.Fprintf(w, headerFormat, HeaderID, HeaderName, HeaderCount); err != nil {
			return err
		}
		if _, err := io.WriteString(w, separator); err != nil {
			return err
		}
	}
	for _, e := range list {
		if _, err := fmt.Fprintf(w, rowFormat, e.ClassID, e.Name, e.Count); err != nil {
			return err
		}
	}
	return nil
}

// WriteTSV prints one tab-separated line per class.
func WriteTSV(w io.Writer, list []rank.Entry, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, e := range list {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\n", e.ClassID, e.Name, e.Count); err != nil {
			return err
		}
	}
	return nil
}
