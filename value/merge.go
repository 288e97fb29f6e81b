package value

// MergeKey is the reserved mapping key whose value supplies default entries
// for the surrounding mapping, see https://yaml.org/type/merge.html.
const MergeKey = "<<"

// ApplyMerge folds every "<<" entry in the tree rooted at v into its
// mapping. The value of "<<" is a mapping, or a sequence of mappings, whose
// entries are inserted only where the surrounding mapping lacks the key;
// earlier sequence elements win over later ones.
//
// The tree is walked with an explicit stack, so arbitrarily deep documents
// do not grow the goroutine stack. On error v is left partially merged and
// should be discarded.
func (v *Value) ApplyMerge() error {
	stack := []*Value{v}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n.kind {
		case MappingKind:
			m := &n.mapping
			if err := m.resolveMerge(); err != nil {
				return err
			}
			for i := range m.entries {
				stack = append(stack, &m.entries[i].val)
			}
		case SequenceKind:
			for i := range n.seq {
				stack = append(stack, &n.seq[i])
			}
		case TaggedKind:
			stack = append(stack, &n.tagged.Value)
		}
	}
	return nil
}

func (m *Mapping) resolveMerge() error {
	merge, ok := m.RemoveString(MergeKey)
	if !ok {
		return nil
	}
	switch merge.kind {
	case MappingKind:
		m.insertAbsent(&merge.mapping)
	case SequenceKind:
		for i := range merge.seq {
			elt := &merge.seq[i]
			switch elt.kind {
			case MappingKind:
				m.insertAbsent(&elt.mapping)
			case SequenceKind:
				return ErrSequenceInMergeElement
			case TaggedKind:
				return ErrTaggedInMerge
			default:
				return ErrScalarInMergeElement
			}
		}
	case TaggedKind:
		return ErrTaggedInMerge
	default:
		return ErrScalarInMerge
	}
	return nil
}

func (m *Mapping) insertAbsent(src *Mapping) {
	for i := range src.entries {
		e := &src.entries[i]
		h := e.key.Hash()
		if m.find(h, func(x *Value) bool { return Equal(x, &e.key) }) >= 0 {
			continue
		}
		m.push(h, e.key, e.val)
	}
}
