package encode

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/signadot/yval/format"
	"github.com/signadot/yval/value"
)

type EncState struct {
	indent   int
	sortKeys bool

	format format.Format

	Color func(value.Kind, ColorAttr, string) string

	buf bytes.Buffer
}

func newEncState(opts ...EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes v to w followed by a newline.
func Encode(v *value.Value, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts...)
	if err := es.encodeDoc(v); err != nil {
		return err
	}
	_, err := w.Write(es.buf.Bytes())
	return err
}

// EncodeAll writes a stream of documents, separated by "---" in YAML and by
// newlines in JSON.
func EncodeAll(vs []value.Value, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts...)
	for i := range vs {
		if i != 0 && !es.format.IsJSON() {
			es.write(es.color(value.NullKind, SepColor, "---"))
			es.write("\n")
		}
		if err := es.encodeDoc(&vs[i]); err != nil {
			return err
		}
	}
	_, err := w.Write(es.buf.Bytes())
	return err
}

func (es *EncState) encodeDoc(v *value.Value) error {
	if es.sortKeys {
		c := v.Clone()
		sortAll(&c)
		v = &c
	}
	if es.format.IsJSON() {
		return es.encodeJSON(v)
	}
	if err := es.node(v, 0, false); err != nil {
		return err
	}
	es.write("\n")
	return nil
}

func (es *EncState) encodeJSON(v *value.Value) error {
	d, err := json.Marshal(v, jsontext.WithIndent(strings.Repeat(" ", es.indent)))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	es.buf.Write(d)
	es.write("\n")
	return nil
}

func sortAll(v *value.Value) {
	stack := []*value.Value{v}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n.Kind() {
		case value.MappingKind:
			m, _ := n.AsMappingMut()
			m.SortKeys()
			for val := range m.Values() {
				stack = append(stack, val)
			}
		case value.SequenceKind:
			seq, _ := n.AsSequenceMut()
			for i := range *seq {
				stack = append(stack, &(*seq)[i])
			}
		case value.TaggedKind:
			t, _ := n.AsTagged()
			stack = append(stack, &t.Value)
		}
	}
}

func (es *EncState) write(s string) {
	es.buf.WriteString(s)
}

func (es *EncState) newline(indent int) {
	es.buf.WriteByte('\n')
	es.buf.WriteString(strings.Repeat(" ", indent))
}

func (es *EncState) color(k value.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

// node writes v. With afterKey the cursor follows a mapping key's ':' at
// column indent, otherwise it is where v's first line starts and further
// lines are indented by indent.
func (es *EncState) node(v *value.Value, indent int, afterKey bool) error {
	if t, ok := v.AsTagged(); ok {
		inner := &t.Value
		if inner.IsTagged() {
			return fmt.Errorf("%w: nested tags %s%s", ErrEncoding, t.Tag, mustTag(inner))
		}
		if afterKey {
			es.write(" ")
		}
		es.write(es.color(inner.Kind(), TagColor, t.Tag.String()))
		if !isBlock(inner) {
			es.write(" ")
			return es.scalar(inner, false)
		}
		if afterKey {
			indent += es.indent
		}
		es.newline(indent)
		return es.block(inner, indent)
	}
	if isBlock(v) {
		if afterKey {
			indent += es.indent
			es.newline(indent)
		}
		return es.block(v, indent)
	}
	if afterKey {
		es.write(" ")
	}
	return es.scalar(v, false)
}

func mustTag(v *value.Value) string {
	t, _ := v.AsTagged()
	return t.Tag.String()
}

// isBlock reports whether v is written in block style: a non empty
// sequence or mapping.
func isBlock(v *value.Value) bool {
	switch v.Kind() {
	case value.SequenceKind:
		seq, _ := v.AsSequence()
		return len(seq) != 0
	case value.MappingKind:
		m, _ := v.AsMapping()
		return m.Len() != 0
	}
	return false
}

func (es *EncState) block(v *value.Value, indent int) error {
	if seq, ok := v.AsSequenceMut(); ok {
		for i := range *seq {
			if i != 0 {
				es.newline(indent)
			}
			es.write(es.color(value.SequenceKind, SepColor, "- "))
			if err := es.node(&(*seq)[i], indent+2, false); err != nil {
				return err
			}
		}
		return nil
	}
	m, _ := v.AsMappingMut()
	i := 0
	for k, val := range m.All() {
		if i != 0 {
			es.newline(indent)
		}
		i++
		if err := es.key(&k, indent); err != nil {
			return err
		}
		if err := es.node(val, indent, true); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) key(k *value.Value, indent int) error {
	sep := es.color(value.MappingKind, SepColor, ":")
	if k.Kind().IsScalar() {
		text := scalarText(k, false)
		attr := FieldColor
		if s, _ := k.AsString(); s == value.MergeKey {
			attr = MergeColor
		}
		es.write(es.color(value.MappingKind, attr, text))
		es.write(sep)
		return nil
	}
	b := &strings.Builder{}
	if err := flow(b, k); err != nil {
		return err
	}
	es.write(es.color(value.MappingKind, SepColor, "? "))
	es.write(es.color(value.MappingKind, FieldColor, b.String()))
	es.newline(indent)
	es.write(sep)
	return nil
}

// scalar writes a scalar or an empty collection.
func (es *EncState) scalar(v *value.Value, inFlow bool) error {
	es.write(es.color(v.Kind(), ValueColor, scalarText(v, inFlow)))
	return nil
}

func scalarText(v *value.Value, inFlow bool) string {
	switch v.Kind() {
	case value.NullKind:
		return "null"
	case value.BoolKind:
		b, _ := v.AsBool()
		return strconv.FormatBool(b)
	case value.NumberKind:
		n, _ := v.AsNumber()
		return n.String()
	case value.StringKind:
		s, _ := v.AsString()
		return quoteString(s, inFlow)
	case value.SequenceKind:
		return "[]"
	case value.MappingKind:
		return "{}"
	}
	return ""
}

// flow writes v in flow style, used for complex mapping keys.
func flow(b *strings.Builder, v *value.Value) error {
	switch v.Kind() {
	case value.SequenceKind:
		seq, _ := v.AsSequenceMut()
		b.WriteByte('[')
		for i := range *seq {
			if i != 0 {
				b.WriteString(", ")
			}
			if err := flow(b, &(*seq)[i]); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case value.MappingKind:
		m, _ := v.AsMapping()
		b.WriteByte('{')
		i := 0
		for k, val := range m.All() {
			if i != 0 {
				b.WriteString(", ")
			}
			i++
			if err := flow(b, &k); err != nil {
				return err
			}
			b.WriteString(": ")
			if err := flow(b, val); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	case value.TaggedKind:
		t, _ := v.AsTagged()
		if t.Value.IsTagged() {
			return fmt.Errorf("%w: nested tags %s%s", ErrEncoding, t.Tag, mustTag(&t.Value))
		}
		b.WriteString(t.Tag.String())
		b.WriteByte(' ')
		return flow(b, &t.Value)
	default:
		b.WriteString(scalarText(v, true))
	}
	return nil
}
