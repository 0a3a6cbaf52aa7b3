package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"goprop-core/rank"
)

// WriteJSON emits the list as an indented JSON array (never null).
func WriteJSON(w io.Writer, list []rank.Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIList(list))
}

// WriteJSONL emits one compact JSON object per line.
func WriteJSONL(w io.Writer, list []rank.Entry) error {
	enc := json.NewEncoder(w)
	for _, e := range list {
		if err := enc.Encode(ToAPI(e)); err != nil {
			return err
		}
	}
	return nil
}

// WriteYAML emits the list as a YAML sequence.
func WriteYAML(w io.Writer, list []rank.Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToAPIList(list)); err != nil {
		return err
	}
	return enc.Close()
}
