package annotation

import "sort"

// Set is an unordered set of identifiers.
type Set map[string]struct{}

// Add inserts id and reports whether it was new.
func (s Set) Add(id string) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}

func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Annotations maps a gene id to the set of class ids it is annotated to.
type Annotations map[string]Set

// Membership maps a class id to the set of gene ids associated with it.
type Membership map[string]Set

// Add records gene → class.
func (a Annotations) Add(gene, class string) {
	s, ok := a[gene]
	if !ok {
		s = Set{}
		a[gene] = s
	}
	s.Add(class)
}

// Clone deep-copies the mapping.
func (a Annotations) Clone() Annotations {
	out := make(Annotations, len(a))
	for g, s := range a {
		out[g] = s.Clone()
	}
	return out
}

// Add records class → gene.
func (m Membership) Add(class, gene string) {
	s, ok := m[class]
	if !ok {
		s = Set{}
		m[class] = s
	}
	s.Add(gene)
}

// Genes counts distinct genes over all classes.
func (m Membership) Genes() int {
	seen := Set{}
	for _, s := range m {
		for g := range s {
			seen.Add(g)
		}
	}
	return len(seen)
}
