package rdf

import (
	"sort"
	"strings"
)

// Prefix maps a Turtle prefix label to a namespace IRI.
type Prefix struct {
	Label     string
	Namespace string
}

// PrefixTable is an ordered, immutable set of prefix declarations.
//
// Entries whose namespace does not end in '/' or '#' are dropped, as are
// repeated labels after their first declaration. The zero value is an empty
// table.
type PrefixTable struct {
	entries []Prefix
	// byLength indexes entries by namespace length, longest first; ties keep
	// declaration order.
	byLength []int
}

// NewPrefixTable builds a table from prefixes in declaration order.
func NewPrefixTable(prefixes ...Prefix) *PrefixTable {
	t := &PrefixTable{}
	seen := make(map[string]struct{}, len(prefixes))
	for _, p := range prefixes {
		if !isDeclarableNamespace(p.Namespace) {
			continue
		}
		if _, dup := seen[p.Label]; dup {
			continue
		}
		seen[p.Label] = struct{}{}
		t.entries = append(t.entries, p)
	}
	t.byLength = make([]int, len(t.entries))
	for i := range t.byLength {
		t.byLength[i] = i
	}
	sort.SliceStable(t.byLength, func(a, b int) bool {
		return len(t.entries[t.byLength[a]].Namespace) > len(t.entries[t.byLength[b]].Namespace)
	})
	return t
}

// Len returns the number of declared prefixes.
func (t *PrefixTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Prefixes returns the declared prefixes in declaration order.
func (t *PrefixTable) Prefixes() []Prefix {
	if t == nil {
		return nil
	}
	out := make([]Prefix, len(t.entries))
	copy(out, t.entries)
	return out
}

// Compact abbreviates iri as label:local using the longest matching
// namespace. It reports false when no namespace matches or the remainder is
// not a valid local name.
func (t *PrefixTable) Compact(iri string) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, idx := range t.byLength {
		entry := t.entries[idx]
		if !strings.HasPrefix(iri, entry.Namespace) {
			continue
		}
		local := iri[len(entry.Namespace):]
		if !isLocalName(local) {
			return "", false
		}
		return entry.Label + ":" + local, true
	}
	return "", false
}

// DeclarationBlock renders one @prefix line per entry followed by a blank
// line, or "" for an empty table.
func (t *PrefixTable) DeclarationBlock() string {
	if t.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range t.entries {
		b.WriteString("@prefix ")
		b.WriteString(p.Label)
		b.WriteString(": <")
		b.WriteString(p.Namespace)
		b.WriteString(">.\n")
	}
	b.WriteByte('\n')
	return b.String()
}
