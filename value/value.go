package value

// Sequence is an ordered list of values.
type Sequence []Value

// Value is a YAML document node. The zero Value is null.
//
// Sequences, mappings and tagged values own their children. Assigning a Value
// copies only the top level, use Clone for an independent tree.
type Value struct {
	kind    Kind
	boolean bool
	number  Number
	str     string
	seq     Sequence
	mapping Mapping
	tagged  *TaggedValue
}

func Null() Value {
	return Value{}
}

func FromBool(b bool) Value {
	return Value{kind: BoolKind, boolean: b}
}

func FromNumber(n Number) Value {
	return Value{kind: NumberKind, number: n}
}

func FromInt(i int64) Value {
	return FromNumber(NumberFromInt(i))
}

func FromUint(u uint64) Value {
	return FromNumber(NumberFromUint(u))
}

func FromFloat(f float64) Value {
	return FromNumber(NumberFromFloat(f))
}

func FromString(s string) Value {
	return Value{kind: StringKind, str: s}
}

func FromSequence(seq Sequence) Value {
	if seq == nil {
		seq = Sequence{}
	}
	return Value{kind: SequenceKind, seq: seq}
}

func FromValues(vs ...Value) Value {
	return FromSequence(Sequence(vs))
}

func FromMapping(m *Mapping) Value {
	res := Value{kind: MappingKind}
	if m != nil {
		res.mapping = m.shallowCopy()
	}
	return res
}

func FromTagged(tag Tag, v Value) Value {
	return Value{kind: TaggedKind, tagged: &TaggedValue{Tag: tag, Value: v}}
}

// Kind returns the kind of v itself; a tagged value reports TaggedKind.
func (v *Value) Kind() Kind {
	return v.kind
}

// Untagged returns the innermost value below any tags. The result points
// into v.
func (v *Value) Untagged() *Value {
	for v.kind == TaggedKind {
		v = &v.tagged.Value
	}
	return v
}

// Untag returns a copy of v with all tags removed.
func (v Value) Untag() Value {
	return *v.Untagged()
}

func (v *Value) IsNull() bool {
	return v.Untagged().kind == NullKind
}

func (v *Value) AsNull() (struct{}, bool) {
	return struct{}{}, v.IsNull()
}

func (v *Value) IsBool() bool {
	_, ok := v.AsBool()
	return ok
}

func (v *Value) AsBool() (bool, bool) {
	u := v.Untagged()
	if u.kind != BoolKind {
		return false, false
	}
	return u.boolean, true
}

func (v *Value) IsNumber() bool {
	return v.Untagged().kind == NumberKind
}

func (v *Value) AsNumber() (Number, bool) {
	u := v.Untagged()
	if u.kind != NumberKind {
		return Number{}, false
	}
	return u.number, true
}

func (v *Value) IsInt64() bool {
	_, ok := v.AsInt64()
	return ok
}

func (v *Value) AsInt64() (int64, bool) {
	n, ok := v.AsNumber()
	if !ok {
		return 0, false
	}
	return n.AsInt64()
}

func (v *Value) IsUint64() bool {
	_, ok := v.AsUint64()
	return ok
}

func (v *Value) AsUint64() (uint64, bool) {
	n, ok := v.AsNumber()
	if !ok {
		return 0, false
	}
	return n.AsUint64()
}

// IsFloat64 reports whether v is a number held as a float. Integers still
// narrow through AsFloat64.
func (v *Value) IsFloat64() bool {
	n, ok := v.AsNumber()
	return ok && n.IsFloat64()
}

func (v *Value) AsFloat64() (float64, bool) {
	n, ok := v.AsNumber()
	if !ok {
		return 0, false
	}
	return n.AsFloat64()
}

func (v *Value) IsString() bool {
	_, ok := v.AsString()
	return ok
}

func (v *Value) AsString() (string, bool) {
	u := v.Untagged()
	if u.kind != StringKind {
		return "", false
	}
	return u.str, true
}

func (v *Value) IsSequence() bool {
	_, ok := v.AsSequence()
	return ok
}

func (v *Value) AsSequence() (Sequence, bool) {
	u := v.Untagged()
	if u.kind != SequenceKind {
		return nil, false
	}
	return u.seq, true
}

// AsSequenceMut returns a pointer to the sequence held by v, so that it can be
// grown or shrunk in place.
func (v *Value) AsSequenceMut() (*Sequence, bool) {
	u := v.Untagged()
	if u.kind != SequenceKind {
		return nil, false
	}
	return &u.seq, true
}

func (v *Value) IsMapping() bool {
	_, ok := v.AsMapping()
	return ok
}

// AsMapping returns the mapping held by v for reading. Use AsMappingMut to
// modify it.
func (v *Value) AsMapping() (*Mapping, bool) {
	return v.AsMappingMut()
}

func (v *Value) AsMappingMut() (*Mapping, bool) {
	u := v.Untagged()
	if u.kind != MappingKind {
		return nil, false
	}
	return &u.mapping, true
}

// AsTagged returns v's own tag wrapper; unlike the other extractors it does
// not look through tags.
func (v *Value) AsTagged() (*TaggedValue, bool) {
	if v.kind != TaggedKind {
		return nil, false
	}
	return v.tagged, true
}

func (v *Value) IsTagged() bool {
	return v.kind == TaggedKind
}
