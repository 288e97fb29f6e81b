package value

import (
	"encoding/binary"
	"hash/maphash"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of v, consistent with Equal: equal values hash
// equally. The hash is stable within a process only.
//
// A string value hashes exactly like hashString of its text. Mapping lookups
// by borrowed text rely on this, so any change to how strings are fed to the
// hasher here must be made in hashString too.
func (v *Value) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	var b [8]byte
	stack := []*Value{v}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		h.WriteByte(byte(n.kind))
		switch n.kind {
		case NullKind:
		case BoolKind:
			if n.boolean {
				h.WriteByte(1)
			} else {
				h.WriteByte(0)
			}
		case NumberKind:
			k, bits := n.number.hashBits()
			h.WriteByte(byte(k))
			binary.LittleEndian.PutUint64(b[:], bits)
			h.Write(b[:])
		case StringKind:
			h.WriteString(n.str)
		case SequenceKind:
			binary.LittleEndian.PutUint64(b[:], uint64(len(n.seq)))
			h.Write(b[:])
			for i := len(n.seq) - 1; i >= 0; i-- {
				stack = append(stack, &n.seq[i])
			}
		case MappingKind:
			// entry order does not take part in equality, so only the size
			// is hashed.
			binary.LittleEndian.PutUint64(b[:], uint64(n.mapping.Len()))
			h.Write(b[:])
		case TaggedKind:
			h.WriteString(n.tagged.Tag.Name())
			h.WriteByte(0)
			stack = append(stack, &n.tagged.Value)
		}
	}
	return h.Sum64()
}

// hashString hashes s as if it were FromString(s).
func hashString(s string) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(StringKind))
	h.WriteString(s)
	return h.Sum64()
}
