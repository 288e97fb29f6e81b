package value

import (
	"fmt"
	"strconv"
)

// Index is something that can index into a Value: a Pos into a sequence (or
// an integer key of a mapping), a Key, or a Value used as a mapping key.
//
// The set of index kinds is closed; Index cannot be implemented outside this
// package.
type Index interface {
	// lookup returns nil when the index is not present in v.
	lookup(v *Value) *Value
	// entry returns the slot for the index in v, inserting null where v is a
	// mapping (or null) and panicking where v cannot hold the index.
	entry(v *Value) *Value

	fmt.Stringer
}

// Pos is a sequence position.
type Pos uint

// Key is a string mapping key.
type Key string

var (
	_ Index = Pos(0)
	_ Index = Key("")
	_ Index = Value{}
	_ Index = (*Value)(nil)
)

// sharedNull is what At returns for missing entries.
var sharedNull Value

func (p Pos) String() string {
	return strconv.FormatUint(uint64(p), 10)
}

func (p Pos) key() Value {
	return FromUint(uint64(p))
}

func (p Pos) lookup(v *Value) *Value {
	u := v.Untagged()
	switch u.kind {
	case SequenceKind:
		if uint64(p) < uint64(len(u.seq)) {
			return &u.seq[p]
		}
	case MappingKind:
		return u.mapping.Get(p.key())
	}
	return nil
}

func (p Pos) entry(v *Value) *Value {
	checkWritable(v)
	for {
		switch v.kind {
		case SequenceKind:
			if uint64(p) >= uint64(len(v.seq)) {
				panic(fmt.Sprintf("cannot access index %d of YAML sequence of length %d", p, len(v.seq)))
			}
			return &v.seq[p]
		case MappingKind:
			return v.mapping.Entry(p.key())
		case TaggedKind:
			v = &v.tagged.Value
		default:
			panic(fmt.Sprintf("cannot access index %d of YAML %s", p, v.kind))
		}
	}
}

func (k Key) String() string {
	return string(k)
}

func (k Key) lookup(v *Value) *Value {
	u := v.Untagged()
	if u.kind != MappingKind {
		return nil
	}
	return u.mapping.GetString(string(k))
}

func (k Key) entry(v *Value) *Value {
	checkWritable(v)
	if v.kind == NullKind {
		*v = Value{kind: MappingKind}
		return v.mapping.EntryString(string(k))
	}
	for {
		switch v.kind {
		case MappingKind:
			return v.mapping.EntryString(string(k))
		case TaggedKind:
			v = &v.tagged.Value
		default:
			panic(fmt.Sprintf("cannot access key %q in YAML %s", string(k), v.kind))
		}
	}
}

func (v Value) lookup(target *Value) *Value {
	u := target.Untagged()
	if u.kind != MappingKind {
		return nil
	}
	return u.mapping.Get(v)
}

func (v Value) entry(target *Value) *Value {
	checkWritable(target)
	if target.kind == NullKind {
		*target = Value{kind: MappingKind}
		return target.mapping.Entry(v)
	}
	for {
		switch target.kind {
		case MappingKind:
			return target.mapping.Entry(v)
		case TaggedKind:
			target = &target.tagged.Value
		default:
			panic(fmt.Sprintf("cannot access key %s in YAML %s", v, target.kind))
		}
	}
}

func checkWritable(v *Value) {
	if v == &sharedNull {
		panic("cannot write through the null returned for a missing entry")
	}
}

// Get indexes into a sequence or mapping. A Pos selects a sequence element
// (or an integer mapping key) and a Key or Value selects a mapping entry.
//
// Get returns nil if v's kind does not match the index, if the key is not in
// the mapping or if the position is past the end of the sequence. Tags on v
// are looked through.
func (v *Value) Get(i Index) *Value {
	return i.lookup(v)
}

// GetMut is Get for callers that modify the result in place.
func (v *Value) GetMut(i Index) *Value {
	return i.lookup(v)
}

// At is like Get but returns a null value instead of nil, so that lookups can
// be chained without checks:
//
//	v.At(Key("spec")).At(Key("ports")).At(Pos(0))
//
// The null returned for missing entries is shared and must not be modified.
func (v *Value) At(i Index) *Value {
	if res := i.lookup(v); res != nil {
		return res
	}
	return &sharedNull
}

// Entry returns the slot for i in v, to be read or assigned.
//
// For a Pos, v must be a sequence longer than the position, or a mapping in
// which case the integer key is inserted with a null value when missing.
//
// For a Key or Value, v must be a mapping or null; null is first replaced by
// an empty mapping. Missing keys are inserted with a null value.
//
// Tags on v are looked through. Entry panics if v cannot be indexed by i.
func (v *Value) Entry(i Index) *Value {
	return i.entry(v)
}

// Set assigns x to the slot for i, as Entry.
func (v *Value) Set(i Index, x Value) {
	*i.entry(v) = x
}
