// Package rank orders classes by gene count.
package rank

import (
	"sort"

	"goprop-core/annotation"
	"goprop-core/hierarchy"
)

// DefaultTop is the number of classes reported when no limit is given.
const DefaultTop = 50

// Entry is one ranked class.
type Entry struct {
	ClassID string
	Name    string
	Count   int
}

// Less orders by count descending, then class id ascending.
func Less(a, b Entry) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.ClassID < b.ClassID
}

// Top ranks every class of m and keeps the first n (n <= 0 keeps all).
func Top(m annotation.Membership, names hierarchy.Names, n int) []Entry {
	out := make([]Entry, 0, len(m))
	for id, genes := range m {
		out = append(out, Entry{ClassID: id, Name: names.Lookup(id), Count: len(genes)})
	}
	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
