package writers

import (
	"io"

	"goprop-core/rank"
	"goprop/internal/output"
)

// Output format names.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatYAML  = "yaml"
)

func init() {
	Register(FormatText, func(w io.Writer, list []rank.Entry, o Options) error {
		return output.WriteText(w, list, o.Header)
	})
	Register(FormatTSV, func(w io.Writer, list []rank.Entry, o Options) error {
		return output.WriteTSV(w, list, o.Header)
	})
	Register(FormatJSON, func(w io.Writer, list []rank.Entry, _ Options) error {
		return output.WriteJSON(w, list)
	})
	Register(FormatYAML, func(w io.Writer, list []rank.Entry, _ Options) error {
		return output.WriteYAML(w, list)
	})
	Register(FormatJSONL, func(w io.Writer, list []rank.Entry, _ Options) error {
		return output.WriteJSONL(w, list)
	})
}
