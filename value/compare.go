package value

import (
	"cmp"
	"slices"
	"strings"
)

// Equal reports whether a and b have the same kind and equal payloads.
// Tagged values are equal only to tagged values with the same tag and an
// equal inner value. Mapping entry order is ignored.
func Equal(a, b *Value) bool {
	type pair struct{ a, b *Value }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := p.a, p.b
		if x == y {
			continue
		}
		if x.kind != y.kind {
			return false
		}
		switch x.kind {
		case NullKind:
		case BoolKind:
			if x.boolean != y.boolean {
				return false
			}
		case NumberKind:
			if !x.number.Equal(y.number) {
				return false
			}
		case StringKind:
			if x.str != y.str {
				return false
			}
		case SequenceKind:
			if len(x.seq) != len(y.seq) {
				return false
			}
			for i := range x.seq {
				stack = append(stack, pair{&x.seq[i], &y.seq[i]})
			}
		case MappingKind:
			if x.mapping.Len() != y.mapping.Len() {
				return false
			}
			for i := range x.mapping.entries {
				e := &x.mapping.entries[i]
				j := y.mapping.indexOf(&e.key)
				if j < 0 {
					return false
				}
				stack = append(stack, pair{&e.val, &y.mapping.entries[j].val})
			}
		case TaggedKind:
			if !x.tagged.Tag.Equal(y.tagged.Tag) {
				return false
			}
			stack = append(stack, pair{&x.tagged.Value, &y.tagged.Value})
		}
	}
	return true
}

// Equal is a convenience for Equal(v, o).
func (v *Value) Equal(o *Value) bool {
	return Equal(v, o)
}

// Compare returns an integer comparing two values: 0 if a == b, -1 if a < b
// and +1 if a > b. Kinds are ordered
// Null < Bool < Number < String < Sequence < Mapping < Tagged.
// Mappings are compared as their entry lists sorted by key.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case BoolKind:
		if a.boolean == b.boolean {
			return 0
		}
		if !a.boolean {
			return -1
		}
		return 1
	case NumberKind:
		return a.number.Compare(b.number)
	case StringKind:
		return strings.Compare(a.str, b.str)
	case SequenceKind:
		return compareSequences(a.seq, b.seq)
	case MappingKind:
		return compareMappings(&a.mapping, &b.mapping)
	case TaggedKind:
		if c := strings.Compare(a.tagged.Tag.Name(), b.tagged.Tag.Name()); c != 0 {
			return c
		}
		return Compare(&a.tagged.Value, &b.tagged.Value)
	}
	return 0
}

func compareSequences(a, b Sequence) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(&a[i], &b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareMappings(a, b *Mapping) int {
	sa, sb := sortedEntries(a), sortedEntries(b)
	n := min(len(sa), len(sb))
	for i := 0; i < n; i++ {
		if c := Compare(&sa[i].key, &sb[i].key); c != 0 {
			return c
		}
		if c := Compare(&sa[i].val, &sb[i].val); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(sa), len(sb))
}

func sortedEntries(m *Mapping) []*mapEntry {
	res := make([]*mapEntry, len(m.entries))
	for i := range m.entries {
		res[i] = &m.entries[i]
	}
	slices.SortFunc(res, func(x, y *mapEntry) int {
		return Compare(&x.key, &y.key)
	})
	return res
}

// Clone returns a deep copy of v.
func (v *Value) Clone() Value {
	res := *v
	stack := []*Value{&res}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n.kind {
		case SequenceKind:
			n.seq = slices.Clone(n.seq)
			for i := range n.seq {
				stack = append(stack, &n.seq[i])
			}
		case MappingKind:
			n.mapping = n.mapping.shallowCopy()
			for i := range n.mapping.entries {
				e := &n.mapping.entries[i]
				stack = append(stack, &e.key, &e.val)
			}
		case TaggedKind:
			t := *n.tagged
			n.tagged = &t
			stack = append(stack, &t.Value)
		}
	}
	return res
}
