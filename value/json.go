package value

import (
	"bytes"
	"fmt"

	json "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

var (
	_ json.MarshalerTo     = Value{}
	_ json.UnmarshalerFrom = (*Value)(nil)
)

// MarshalJSONTo encodes v as JSON. Mapping keys must be scalars and are
// written as their text. A tagged value is written as the single entry object
// {"Tag": value}.
func (v Value) MarshalJSONTo(enc *jsontext.Encoder) error {
	switch v.kind {
	case NullKind:
		return enc.WriteToken(jsontext.Null)
	case BoolKind:
		return enc.WriteToken(jsontext.Bool(v.boolean))
	case NumberKind:
		return writeJSONNumber(enc, v.number)
	case StringKind:
		return enc.WriteToken(jsontext.String(v.str))
	case SequenceKind:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for i := range v.seq {
			if err := v.seq[i].MarshalJSONTo(enc); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case MappingKind:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for i := range v.mapping.entries {
			e := &v.mapping.entries[i]
			k, err := jsonKey(&e.key)
			if err != nil {
				return err
			}
			if err := enc.WriteToken(jsontext.String(k)); err != nil {
				return err
			}
			if err := e.val.MarshalJSONTo(enc); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	case TaggedKind:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		if err := enc.WriteToken(jsontext.String(v.tagged.Tag.Name())); err != nil {
			return err
		}
		if err := v.tagged.Value.MarshalJSONTo(enc); err != nil {
			return err
		}
		return enc.WriteToken(jsontext.EndObject)
	}
	return fmt.Errorf("cannot encode %s as JSON", v.kind)
}

func writeJSONNumber(enc *jsontext.Encoder, n Number) error {
	switch n.kind {
	case posInt:
		return enc.WriteToken(jsontext.Uint(n.u))
	case negInt:
		return enc.WriteToken(jsontext.Int(n.i))
	}
	if n.IsNaN() || n.IsInf() {
		return fmt.Errorf("cannot encode %s as JSON", n)
	}
	// Float would write 1.0 as 1, which reads back as an integer.
	return enc.WriteValue(jsontext.Value(n.String()))
}

func jsonKey(k *Value) (string, error) {
	switch k.kind {
	case StringKind:
		return k.str, nil
	case NumberKind:
		return k.number.String(), nil
	case BoolKind:
		if k.boolean {
			return "true", nil
		}
		return "false", nil
	case NullKind:
		return "null", nil
	}
	return "", fmt.Errorf("cannot encode %s mapping key as JSON", k.kind)
}

// UnmarshalJSONFrom decodes a JSON value into v, keeping object key order
// and integer precision.
func (v *Value) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	switch dec.PeekKind() {
	case '{':
		if _, err := dec.ReadToken(); err != nil {
			return err
		}
		m := NewMapping()
		for dec.PeekKind() != '}' {
			tok, err := dec.ReadToken()
			if err != nil {
				return err
			}
			var elt Value
			if err := elt.UnmarshalJSONFrom(dec); err != nil {
				return err
			}
			m.Insert(FromString(tok.String()), elt)
		}
		if _, err := dec.ReadToken(); err != nil {
			return err
		}
		*v = FromMapping(m)
		return nil
	case '[':
		if _, err := dec.ReadToken(); err != nil {
			return err
		}
		seq := Sequence{}
		for dec.PeekKind() != ']' {
			var elt Value
			if err := elt.UnmarshalJSONFrom(dec); err != nil {
				return err
			}
			seq = append(seq, elt)
		}
		if _, err := dec.ReadToken(); err != nil {
			return err
		}
		*v = FromSequence(seq)
		return nil
	case '0':
		raw, err := dec.ReadValue()
		if err != nil {
			return err
		}
		n, err := ParseNumber(string(raw))
		if err != nil {
			return err
		}
		*v = FromNumber(n)
		return nil
	}
	tok, err := dec.ReadToken()
	if err != nil {
		return err
	}
	switch tok.Kind() {
	case 'n':
		*v = Null()
	case 't', 'f':
		*v = FromBool(tok.Bool())
	case '"':
		*v = FromString(tok.String())
	default:
		return fmt.Errorf("unexpected JSON token %s", tok.Kind())
	}
	return nil
}

// ToJSON encodes v as compact JSON.
func ToJSON(v *Value) ([]byte, error) {
	return json.Marshal(v)
}

// FromJSON decodes a single JSON document.
func FromJSON(d []byte) (Value, error) {
	var v Value
	dec := jsontext.NewDecoder(bytes.NewReader(d))
	if err := v.UnmarshalJSONFrom(dec); err != nil {
		return Value{}, err
	}
	return v, nil
}
