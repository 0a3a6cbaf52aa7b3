// Package tsv scans tab-separated text line by line.
package tsv

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// maxLine bounds a single row; GAF rows with long "with/from" columns stay far below it.
const maxLine = 16 * 1024 * 1024

// Row is one raw line split on tabs. Line is 1-based.
type Row struct {
	Line int
	Text string
	Cols []string
}

// Scan reads r to exhaustion and calls fn for every non-blank line.
// Trailing CR/LF is dropped before splitting; columns are not trimmed.
// Cancellation via ctx is checked between lines. Returning a non-nil error
// from fn stops the scan and the error is returned unchanged.
func Scan(ctx context.Context, r io.Reader, fn func(Row) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	ln := 0
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		ln++
		text := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := fn(Row{Line: ln, Text: text, Cols: strings.Split(text, "\t")}); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("tsv scan: line %d: %w", ln+1, err)
	}
	return nil
}

// Col returns column i trimmed of surrounding whitespace, or "" when absent.
func (r Row) Col(i int) string {
	if i < 0 || i >= len(r.Cols) {
		return ""
	}
	return strings.TrimSpace(r.Cols[i])
}
