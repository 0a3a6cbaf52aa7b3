// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"goprop-core/rank"
)

// Options carry presentation switches shared by all formats.
type Options struct {
	Header bool
}

// Func renders a ranked class list.
type Func func(w io.Writer, list []rank.Entry, o Options) error

// Writer registry (format → handler). Formats register in init() blocks.
var registry = map[string]Func{}

// Register adds or replaces (last wins) the handler for format.
func Register(format string, fn Func) { registry[format] = fn }

// Formats lists registered format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Known reports whether format has a handler.
func Known(format string) bool {
	_, ok := registry[format]
	return ok
}

// Write dispatches to the handler registered for format.
func Write(format string, w io.Writer, list []rank.Entry, o Options) error {
	fn, ok := registry[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, list, o)
}
