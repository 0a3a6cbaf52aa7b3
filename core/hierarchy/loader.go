// Package hierarchy parses the GO class hierarchy table: one row per class
// with its display name and comma-separated direct parents.
package hierarchy

import (
	"context"
	"errors"
	"fmt"
	"io"

	"goprop-core/goid"
	"goprop-core/tsv"
)

// Column layout of a hierarchy row (0-based).
const (
	ColID      = 2
	ColName    = 3
	ColParents = 4
	MinCols    = ColParents + 1
)

// UnknownName is displayed for classes with no hierarchy row.
const UnknownName = "Unknown"

// ErrShortRow is wrapped by errors for rows with fewer than MinCols columns.
var ErrShortRow = errors.New("too few columns")

// Record is one hierarchy row after normalization.
type Record struct {
	ID      string
	Name    string
	Parents []string
	Line    int
}

type Options struct {
	Lenient bool
	OnSkip  func(line int, err error)
}

// Load reads every row of r in file order. Every non-blank line is data.
func Load(ctx context.Context, r io.Reader, opt Options) ([]Record, error) {
	var out []Record
	err := tsv.Scan(ctx, r, func(row tsv.Row) error {
		if len(row.Cols) < MinCols {
			err := fmt.Errorf("hierarchy: line %d: %w: expected at least %d, got %d", row.Line, ErrShortRow, MinCols, len(row.Cols))
			if !opt.Lenient {
				return err
			}
			if opt.OnSkip != nil {
				opt.OnSkip(row.Line, err)
			}
			return nil
		}
		out = append(out, Record{
			ID:      goid.Normalize(row.Col(ColID)),
			Name:    row.Col(ColName),
			Parents: goid.SplitList(row.Cols[ColParents]),
			Line:    row.Line,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Names maps class id → display name.
type Names map[string]string

// Lookup returns the display name, or UnknownName.
func (n Names) Lookup(id string) string {
	if name, ok := n[id]; ok {
		return name
	}
	return UnknownName
}

// NamesOf builds the name table; later rows for the same id win.
// Records with an empty id are excluded.
func NamesOf(recs []Record) Names {
	out := make(Names, len(recs))
	for _, r := range recs {
		if r.ID == "" {
			continue
		}
		out[r.ID] = r.Name
	}
	return out
}
