// Package propagate pushes direct annotations up to parent classes and
// recomputes per-class gene membership.
//
// Propagation is single-level: a record's parents reach only the genes that
// were direct members of the record's class before the pass began. Classes
// that gain members during the pass do not forward them to their own parents.
package propagate

import (
	"goprop-core/annotation"
	"goprop-core/hierarchy"
)

// Propagate returns a copy of direct.Annotations extended with the parents of
// every directly populated class, walking recs in order. direct is not modified.
func Propagate(direct annotation.Direct, recs []hierarchy.Record) annotation.Annotations {
	out := direct.Annotations.Clone()
	for _, r := range recs {
		genes, ok := direct.Membership[r.ID]
		if !ok || len(r.Parents) == 0 {
			continue
		}
		for _, parent := range r.Parents {
			for g := range genes {
				out.Add(g, parent)
			}
		}
	}
	return out
}

// Aggregate rebuilds class → genes from a (propagated) annotation mapping.
func Aggregate(a annotation.Annotations) annotation.Membership {
	m := annotation.Membership{}
	for gene, classes := range a {
		for c := range classes {
			m.Add(c, gene)
		}
	}
	return m
}
