package convert

import (
	"github.com/signadot/yval/value"
)

// ToAny converts v to plain Go data: nil, bool, int64, uint64 (only above
// math.MaxInt64), float64, string, []any, map[string]any when every key is a
// string and map[any]any otherwise. A tagged value becomes the single entry
// map[string]any{tag: inner}.
//
// It fails with a *TypeError when a mapping key is a collection, which Go
// maps cannot hold.
func ToAny(v *value.Value) (any, error) {
	switch v.Kind() {
	case value.NullKind:
		return nil, nil
	case value.BoolKind:
		b, _ := v.AsBool()
		return b, nil
	case value.NumberKind:
		n, _ := v.AsNumber()
		if i, ok := n.AsInt64(); ok {
			return i, nil
		}
		if u, ok := n.AsUint64(); ok {
			return u, nil
		}
		f, _ := n.AsFloat64()
		return f, nil
	case value.StringKind:
		s, _ := v.AsString()
		return s, nil
	case value.SequenceKind:
		seq, _ := v.AsSequence()
		res := make([]any, len(seq))
		for i := range seq {
			x, err := ToAny(&seq[i])
			if err != nil {
				return nil, withPath(err, indexPath("", i))
			}
			res[i] = x
		}
		return res, nil
	case value.MappingKind:
		m, _ := v.AsMapping()
		return mappingToAny(m)
	case value.TaggedKind:
		t, _ := v.AsTagged()
		inner, err := ToAny(&t.Value)
		if err != nil {
			return nil, err
		}
		return map[string]any{t.Tag.Name(): inner}, nil
	}
	return nil, nil
}

func mappingToAny(m *value.Mapping) (any, error) {
	allStrings := true
	for k := range m.Keys() {
		if k.Kind() != value.StringKind {
			allStrings = false
			break
		}
	}
	if allStrings {
		res := make(map[string]any, m.Len())
		for k, v := range m.All() {
			s, _ := k.AsString()
			x, err := ToAny(v)
			if err != nil {
				return nil, withPath(err, s)
			}
			res[s] = x
		}
		return res, nil
	}
	res := make(map[any]any, m.Len())
	for k, v := range m.All() {
		switch k.Kind() {
		case value.SequenceKind, value.MappingKind:
			return nil, &TypeError{Message: "collection used as mapping key", Actual: k.Kind().String()}
		}
		kx, err := ToAny(&k)
		if err != nil {
			return nil, err
		}
		if _, ok := kx.(map[string]any); ok {
			return nil, &TypeError{Message: "tagged collection used as mapping key", Actual: k.Kind().String()}
		}
		x, err := ToAny(v)
		if err != nil {
			return nil, withPath(err, keyText(&k))
		}
		res[kx] = x
	}
	return res, nil
}
