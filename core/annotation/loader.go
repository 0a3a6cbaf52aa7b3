// Package annotation loads direct gene → GO class assignments from a
// GAF-style tab-separated stream.
//
// Class ids are normalized with goid.Normalize, the same rule the hierarchy
// uses, rather than passed through raw: a bare "5" in the annotation column
// becomes "GO:0000005" and matches a hierarchy row for "5".
package annotation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"goprop-core/goid"
	"goprop-core/tsv"
)

// Column layout of a data row (0-based).
const (
	ColGene  = 1
	ColClass = 4
	MinCols  = ColClass + 1
)

// CommentPrefix starts a header/comment line.
const CommentPrefix = "!"

// ErrShortRow is wrapped by errors for data rows with fewer than MinCols columns.
var ErrShortRow = errors.New("too few columns")

// Options tune the loader.
type Options struct {
	// Lenient skips short rows instead of failing.
	Lenient bool
	// OnSkip, if set, is called for every short row skipped in lenient mode.
	OnSkip func(line int, err error)
}

// Stats summarizes one load.
type Stats struct {
	Rows     int // data rows seen
	Comments int
	Empty    int // rows with an empty gene or class id
	Short    int // rows skipped in lenient mode
}

// Direct holds the direct annotation set and its inverse.
type Direct struct {
	Annotations Annotations
	Membership  Membership
	Stats       Stats
}

// Load reads the whole stream and returns the direct annotations.
// Class ids are normalized with goid.Normalize.
func Load(ctx context.Context, r io.Reader, opt Options) (Direct, error) {
	d := Direct{Annotations: Annotations{}, Membership: Membership{}}
	err := tsv.Scan(ctx, r, func(row tsv.Row) error {
		if strings.HasPrefix(row.Text, CommentPrefix) {
			d.Stats.Comments++
			return nil
		}
		d.Stats.Rows++
		if len(row.Cols) < MinCols {
			err := fmt.Errorf("annotation: line %d: %w: expected at least %d, got %d", row.Line, ErrShortRow, MinCols, len(row.Cols))
			if !opt.Lenient {
				return err
			}
			d.Stats.Short++
			if opt.OnSkip != nil {
				opt.OnSkip(row.Line, err)
			}
			return nil
		}
		gene := row.Col(ColGene)
		class := goid.Normalize(row.Col(ColClass))
		if gene == "" || class == "" {
			d.Stats.Empty++
			return nil
		}
		d.Annotations.Add(gene, class)
		d.Membership.Add(class, gene)
		return nil
	})
	if err != nil {
		return Direct{}, err
	}
	return d, nil
}
