package patch

import (
	"errors"
	"fmt"
	"strconv"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/yval/debug"
	"github.com/signadot/yval/value"
)

var ErrPatch = errors.New("patch error")

// Apply applies the RFC 6902 operation list ops to doc and returns the
// patched document. doc is not modified.
func Apply(doc, ops value.Value) (value.Value, error) {
	d, err := toJSON(&doc, "document")
	if err != nil {
		return value.Value{}, err
	}
	o, err := toJSON(&ops, "patch")
	if err != nil {
		return value.Value{}, err
	}
	p, err := jsonpatch.DecodePatch(o)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: decoding patch: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("applying json patch\n%s", &ops)
	}
	res, err := p.Apply(d)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromJSON(res, &doc)
}

// Merge applies the RFC 7386 merge patch mp to doc. Null entries in mp
// remove keys and any non-mapping in mp replaces the target.
func Merge(doc, mp value.Value) (value.Value, error) {
	d, err := toJSON(&doc, "document")
	if err != nil {
		return value.Value{}, err
	}
	m, err := toJSON(&mp, "merge patch")
	if err != nil {
		return value.Value{}, err
	}
	if debug.Patch() {
		debug.Logf("applying merge patch\n%s", &mp)
	}
	res, err := jsonpatch.MergePatch(d, m)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromJSON(res, &doc)
}

// CreateMerge returns the merge patch which turns from into to. Both must be
// mappings.
func CreateMerge(from, to value.Value) (value.Value, error) {
	f, err := toJSON(&from, "from")
	if err != nil {
		return value.Value{}, err
	}
	t, err := toJSON(&to, "to")
	if err != nil {
		return value.Value{}, err
	}
	res, err := jsonpatch.CreateMergePatch(f, t)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromJSON(res, &to)
}

func toJSON(v *value.Value, what string) ([]byte, error) {
	d, err := value.ToJSON(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPatch, what, err)
	}
	return d, nil
}

func fromJSON(d []byte, orig *value.Value) (value.Value, error) {
	res, err := value.FromJSON(d)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: reading result: %w", ErrPatch, err)
	}
	keepOrder(&res, orig)
	return res, nil
}

// keepOrder reorders the mappings of v, recursively, to follow the key order
// of the corresponding mappings in orig.
func keepOrder(v, orig *value.Value) {
	switch v.Kind() {
	case value.SequenceKind:
		seq, _ := v.AsSequenceMut()
		oseq, ok := orig.AsSequence()
		if !ok {
			return
		}
		for i := range min(len(*seq), len(oseq)) {
			keepOrder(&(*seq)[i], &oseq[i])
		}
	case value.MappingKind:
		m, _ := v.AsMappingMut()
		om, ok := orig.AsMapping()
		if !ok {
			return
		}
		res := value.NewMappingCap(m.Len())
		for k := range om.Keys() {
			x := m.Get(jsonKey(k))
			if x == nil {
				continue
			}
			keepOrder(x, om.Get(k))
			res.Insert(jsonKey(k), *x)
		}
		for k, x := range m.All() {
			if !res.ContainsKey(k) {
				res.Insert(k, *x)
			}
		}
		*v = value.FromMapping(res)
	}
}

// jsonKey is the key k becomes after a trip through JSON, matching the
// object key text written by value.ToJSON.
func jsonKey(k value.Value) value.Value {
	switch k.Kind() {
	case value.NumberKind:
		n, _ := k.AsNumber()
		return value.FromString(n.String())
	case value.BoolKind:
		b, _ := k.AsBool()
		return value.FromString(strconv.FormatBool(b))
	case value.NullKind:
		return value.FromString("null")
	}
	return k
}
