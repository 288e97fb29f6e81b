package value

import (
	"strconv"
	"strings"
)

// String renders v for debugging, e.g. Mapping {"a": Number(1)}.
func (v Value) String() string {
	b := &strings.Builder{}
	writeDebug(b, &v)
	return b.String()
}

func writeDebug(b *strings.Builder, v *Value) {
	switch v.kind {
	case NullKind:
		b.WriteString("Null")
	case BoolKind:
		b.WriteString("Bool(")
		b.WriteString(strconv.FormatBool(v.boolean))
		b.WriteByte(')')
	case NumberKind:
		b.WriteString("Number(")
		b.WriteString(v.number.String())
		b.WriteByte(')')
	case StringKind:
		b.WriteString("String(")
		b.WriteString(strconv.Quote(v.str))
		b.WriteByte(')')
	case SequenceKind:
		b.WriteString("Sequence [")
		for i := range v.seq {
			if i != 0 {
				b.WriteString(", ")
			}
			writeDebug(b, &v.seq[i])
		}
		b.WriteByte(']')
	case MappingKind:
		b.WriteString("Mapping {")
		for i := range v.mapping.entries {
			e := &v.mapping.entries[i]
			if i != 0 {
				b.WriteString(", ")
			}
			writeDebugKey(b, &e.key)
			b.WriteString(": ")
			writeDebug(b, &e.val)
		}
		b.WriteByte('}')
	case TaggedKind:
		b.WriteString("TaggedValue { tag: ")
		b.WriteString(v.tagged.Tag.String())
		b.WriteString(", value: ")
		writeDebug(b, &v.tagged.Value)
		b.WriteString(" }")
	}
}

func writeDebugKey(b *strings.Builder, k *Value) {
	switch k.kind {
	case StringKind:
		b.WriteString(strconv.Quote(k.str))
	case NumberKind:
		b.WriteString(k.number.String())
	case BoolKind:
		b.WriteString(strconv.FormatBool(k.boolean))
	case NullKind:
		b.WriteString("null")
	default:
		writeDebug(b, k)
	}
}
