package value

import (
	"iter"
	"slices"
)

// Mapping is an insertion ordered map from Value keys to Values.
//
// Pointers returned by Entry, Get and friends stay valid until the next
// insertion into or removal from the same mapping.
//
// Copying a Mapping (or a Value holding one) is cheap: the copies share
// storage. A copy takes its own entry table on the first Insert, Entry,
// GetMut, Remove or SortKeys, so keys added or removed on one side are never
// seen on the other. Like a slice, values replaced in place (through the
// mapping the table was built in, or through pointers from Get or All) are
// seen by every copy; use Clone for an independent mapping.
type Mapping struct {
	entries []mapEntry
	index   map[uint64][]int
	// owner is the only Mapping allowed to append to entries and index in
	// place.
	owner *Mapping
}

type mapEntry struct {
	key Value
	val Value
}

func NewMapping() *Mapping {
	return &Mapping{}
}

func NewMappingCap(n int) *Mapping {
	m := &Mapping{
		entries: make([]mapEntry, 0, n),
		index:   make(map[uint64][]int, n),
	}
	m.owner = m
	return m
}

func (m *Mapping) Len() int {
	return len(m.entries)
}

// own makes m the owner of its storage, copying the entry table when it may
// be shared with another Mapping.
func (m *Mapping) own() {
	if m.owner == m {
		return
	}
	if m.entries != nil || m.index != nil {
		*m = m.shallowCopy()
	}
	m.owner = m
}

func (m *Mapping) find(h uint64, match func(*Value) bool) int {
	for _, i := range m.index[h] {
		// slots past the end were pushed by a copy sharing the index
		if i >= len(m.entries) {
			continue
		}
		if match(&m.entries[i].key) {
			return i
		}
	}
	return -1
}

func (m *Mapping) indexOf(k *Value) int {
	if len(m.entries) == 0 {
		return -1
	}
	return m.find(k.Hash(), func(x *Value) bool { return Equal(x, k) })
}

func (m *Mapping) indexOfString(s string) int {
	if len(m.entries) == 0 {
		return -1
	}
	return m.find(hashString(s), func(x *Value) bool {
		return x.kind == StringKind && x.str == s
	})
}

func (m *Mapping) push(h uint64, k, v Value) *Value {
	m.own()
	if m.index == nil {
		m.index = map[uint64][]int{}
	}
	m.index[h] = append(m.index[h], len(m.entries))
	m.entries = append(m.entries, mapEntry{key: k, val: v})
	return &m.entries[len(m.entries)-1].val
}

func (m *Mapping) reindex() {
	m.index = make(map[uint64][]int, len(m.entries))
	for i := range m.entries {
		h := m.entries[i].key.Hash()
		m.index[h] = append(m.index[h], i)
	}
}

func (m *Mapping) ContainsKey(k Value) bool {
	return m.indexOf(&k) >= 0
}

func (m *Mapping) ContainsString(s string) bool {
	return m.indexOfString(s) >= 0
}

// Get returns the value stored under k, or nil.
func (m *Mapping) Get(k Value) *Value {
	i := m.indexOf(&k)
	if i < 0 {
		return nil
	}
	return &m.entries[i].val
}

// GetMut is Get for callers that intend to modify the result. Unlike Get,
// the write is not seen by copies of m.
func (m *Mapping) GetMut(k Value) *Value {
	m.own()
	return m.Get(k)
}

// GetString looks up the string key s without building a key Value.
func (m *Mapping) GetString(s string) *Value {
	i := m.indexOfString(s)
	if i < 0 {
		return nil
	}
	return &m.entries[i].val
}

func (m *Mapping) GetStringMut(s string) *Value {
	m.own()
	return m.GetString(s)
}

// Insert sets k to v. If k was present its position is kept and the previous
// value is returned.
func (m *Mapping) Insert(k, v Value) (Value, bool) {
	m.own()
	h := k.Hash()
	i := m.find(h, func(x *Value) bool { return Equal(x, &k) })
	if i >= 0 {
		old := m.entries[i].val
		m.entries[i].val = v
		return old, true
	}
	m.push(h, k, v)
	return Value{}, false
}

// Entry returns the slot for k, inserting null when k is absent.
func (m *Mapping) Entry(k Value) *Value {
	m.own()
	h := k.Hash()
	i := m.find(h, func(x *Value) bool { return Equal(x, &k) })
	if i >= 0 {
		return &m.entries[i].val
	}
	return m.push(h, k, Value{})
}

// EntryString is Entry for a string key.
func (m *Mapping) EntryString(s string) *Value {
	m.own()
	i := m.indexOfString(s)
	if i >= 0 {
		return &m.entries[i].val
	}
	return m.push(hashString(s), FromString(s), Value{})
}

// Remove deletes k, keeping the order of the remaining entries.
func (m *Mapping) Remove(k Value) (Value, bool) {
	return m.removeAt(m.indexOf(&k))
}

func (m *Mapping) RemoveString(s string) (Value, bool) {
	return m.removeAt(m.indexOfString(s))
}

func (m *Mapping) removeAt(i int) (Value, bool) {
	if i < 0 {
		return Value{}, false
	}
	m.own()
	old := m.entries[i].val
	// the old backing array may still be read by copies
	rest := make([]mapEntry, 0, len(m.entries)-1)
	rest = append(rest, m.entries[:i]...)
	m.entries = append(rest, m.entries[i+1:]...)
	m.reindex()
	return old, true
}

// All iterates over the entries in insertion order. Keys are copies; values
// may be modified through the yielded pointer.
func (m *Mapping) All() iter.Seq2[Value, *Value] {
	return func(yield func(Value, *Value) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].key, &m.entries[i].val) {
				return
			}
		}
	}
}

func (m *Mapping) Keys() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].key) {
				return
			}
		}
	}
}

func (m *Mapping) Values() iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		for i := range m.entries {
			if !yield(&m.entries[i].val) {
				return
			}
		}
	}
}

// EntryAt returns the i'th entry in insertion order.
func (m *Mapping) EntryAt(i int) (Value, *Value) {
	return m.entries[i].key, &m.entries[i].val
}

// SortKeys reorders the entries by Compare on their keys.
func (m *Mapping) SortKeys() {
	m.own()
	m.entries = slices.Clone(m.entries)
	slices.SortStableFunc(m.entries, func(a, b mapEntry) int {
		return Compare(&a.key, &b.key)
	})
	m.reindex()
}

func (m *Mapping) Clone() *Mapping {
	v := FromMapping(m)
	c := v.Clone()
	return &c.mapping
}

// shallowCopy copies the entry table so that the copy can be modified
// independently at the top level. Index slots left by other copies are
// dropped.
func (m *Mapping) shallowCopy() Mapping {
	res := Mapping{
		entries: slices.Clone(m.entries),
	}
	if m.index != nil {
		res.index = make(map[uint64][]int, len(m.index))
		for h, is := range m.index {
			var own []int
			for _, i := range is {
				if i < len(m.entries) {
					own = append(own, i)
				}
			}
			if own != nil {
				res.index[h] = own
			}
		}
	}
	return res
}

// Equal reports whether m and o hold equal keys mapped to equal values,
// regardless of order.
func (m *Mapping) Equal(o *Mapping) bool {
	a := Value{kind: MappingKind, mapping: *m}
	b := Value{kind: MappingKind, mapping: *o}
	return Equal(&a, &b)
}
