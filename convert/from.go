package convert

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"reflect"

	"github.com/signadot/yval/debug"
	"github.com/signadot/yval/value"
)

// Unmarshaler is implemented by types that decode themselves from a value.
type Unmarshaler interface {
	UnmarshalValue(v *value.Value) error
}

var (
	unmarshalerType     = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// FromValue stores v into the Go value out points to, the inverse of
// ToValue. Tags are looked through except when decoding into an interface,
// where a tagged value becomes map[string]any{tag: inner}.
//
// Null sets the target to its zero value. A value whose shape does not fit
// the target fails with a *TypeError; numbers out of range for the target
// fail with an *UnmarshalError.
func FromValue(v value.Value, out any, opts ...ConvertOption) error {
	rv := reflect.ValueOf(out)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &UnmarshalError{Message: fmt.Sprintf("invalid target %T", out)}
	}
	if debug.Convert() {
		debug.Logf("converting into %T from\n%s", out, &v)
	}
	c := &fromConverter{opts: newConvertOpts(opts...)}
	return c.convert(&v, rv.Elem(), "")
}

type fromConverter struct {
	opts *convertOpts
}

func (c *fromConverter) convert(v *value.Value, rv reflect.Value, path string) error {
	t := rv.Type()
	if t == valueType {
		rv.Set(reflect.ValueOf(v.Clone()))
		return nil
	}
	if rv.CanAddr() {
		pt := reflect.PointerTo(t)
		if pt.Implements(unmarshalerType) {
			if err := rv.Addr().Interface().(Unmarshaler).UnmarshalValue(v); err != nil {
				return &UnmarshalError{FieldPath: path, Message: "UnmarshalValue failed", Err: err}
			}
			return nil
		}
		if s, ok := v.AsString(); ok && pt.Implements(textUnmarshalerType) {
			if err := rv.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
				return &UnmarshalError{FieldPath: path, Message: "UnmarshalText failed", Err: err}
			}
			return nil
		}
	}
	if t.Kind() == reflect.Interface {
		if t.NumMethod() != 0 {
			return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("cannot decode into non-empty interface %s", t)}
		}
		x, err := ToAny(v)
		if err != nil {
			return withPath(err, path)
		}
		if x == nil {
			rv.SetZero()
			return nil
		}
		rv.Set(reflect.ValueOf(x))
		return nil
	}
	if v.IsNull() {
		rv.SetZero()
		return nil
	}
	if t.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(t.Elem()))
		}
		return c.convert(v, rv.Elem(), path)
	}
	u := v.Untagged()
	mismatch := func(expected string) error {
		return &TypeError{FieldPath: path, Expected: expected, Actual: u.Kind().String()}
	}

	switch t.Kind() {
	case reflect.Bool:
		b, ok := u.AsBool()
		if !ok {
			return mismatch("boolean")
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := u.AsNumber()
		if !ok || n.IsFloat64() {
			return mismatch("integer")
		}
		i, ok := n.AsInt64()
		if !ok || rv.OverflowInt(i) {
			return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("%s overflows %s", n, t)}
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, ok := u.AsNumber()
		if !ok || n.IsFloat64() {
			return mismatch("integer")
		}
		x, ok := n.AsUint64()
		if !ok || rv.OverflowUint(x) {
			return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("%s overflows %s", n, t)}
		}
		rv.SetUint(x)
	case reflect.Float32, reflect.Float64:
		f, ok := u.AsFloat64()
		if !ok {
			return mismatch("number")
		}
		if rv.OverflowFloat(f) {
			return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("%v overflows %s", f, t)}
		}
		rv.SetFloat(f)
	case reflect.String:
		s, ok := u.AsString()
		if !ok {
			return mismatch("string")
		}
		rv.SetString(s)
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			if s, ok := u.AsString(); ok {
				d, err := base64.StdEncoding.DecodeString(s)
				if err != nil {
					return &UnmarshalError{FieldPath: path, Message: "invalid base64", Err: err}
				}
				rv.SetBytes(d)
				return nil
			}
		}
		seq, ok := u.AsSequence()
		if !ok {
			return mismatch("sequence")
		}
		res := reflect.MakeSlice(t, len(seq), len(seq))
		for i := range seq {
			if err := c.convert(&seq[i], res.Index(i), indexPath(path, i)); err != nil {
				return err
			}
		}
		rv.Set(res)
	case reflect.Array:
		seq, ok := u.AsSequence()
		if !ok {
			return mismatch("sequence")
		}
		if len(seq) > rv.Len() {
			return &TypeError{FieldPath: path, Message: fmt.Sprintf("sequence of length %d does not fit %s", len(seq), t)}
		}
		rv.SetZero()
		for i := range seq {
			if err := c.convert(&seq[i], rv.Index(i), indexPath(path, i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		m, ok := u.AsMapping()
		if !ok {
			return mismatch("mapping")
		}
		res := reflect.MakeMapWithSize(t, m.Len())
		if err := c.mapInto(m, res, path); err != nil {
			return err
		}
		rv.Set(res)
	case reflect.Struct:
		m, ok := u.AsMapping()
		if !ok {
			return mismatch("mapping")
		}
		return c.structure(m, rv, path)
	default:
		return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("unsupported type %s", t)}
	}
	return nil
}

func (c *fromConverter) mapInto(m *value.Mapping, res reflect.Value, path string) error {
	t := res.Type()
	for k, v := range m.All() {
		kv := reflect.New(t.Key()).Elem()
		if err := c.convert(&k, kv, path); err != nil {
			return err
		}
		vv := reflect.New(t.Elem()).Elem()
		if err := c.convert(v, vv, fieldPath(path, keyText(&k))); err != nil {
			return err
		}
		res.SetMapIndex(kv, vv)
	}
	return nil
}

func (c *fromConverter) structure(m *value.Mapping, rv reflect.Value, path string) error {
	info := structFields(rv.Type(), c.opts.tagName)
	var extra reflect.Value
	for k, v := range m.All() {
		name, isStr := k.AsString()
		if i, ok := info.byName[name]; ok && isStr {
			f := info.fields[i]
			fv := allocFieldByIndex(rv, f.index)
			if err := c.convert(v, fv, fieldPath(path, f.name)); err != nil {
				return err
			}
			continue
		}
		if info.inlineMap != nil && isStr {
			mv := allocFieldByIndex(rv, info.inlineMap)
			if !extra.IsValid() {
				if mv.IsNil() {
					mv.Set(reflect.MakeMap(mv.Type()))
				}
				extra = mv
			}
			ev := reflect.New(extra.Type().Elem()).Elem()
			if err := c.convert(v, ev, fieldPath(path, name)); err != nil {
				return err
			}
			extra.SetMapIndex(reflect.ValueOf(name).Convert(extra.Type().Key()), ev)
			continue
		}
		if c.opts.strictFields {
			return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("unknown field %s in %s", keyText(&k), rv.Type())}
		}
	}
	return nil
}

// allocFieldByIndex is reflect.Value.FieldByIndex allocating nil embedded
// pointers on the way.
func allocFieldByIndex(rv reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 && rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				rv.Set(reflect.New(rv.Type().Elem()))
			}
			rv = rv.Elem()
		}
		rv = rv.Field(x)
	}
	return rv
}

func keyText(k *value.Value) string {
	if s, ok := k.AsString(); ok {
		return s
	}
	return k.String()
}

func withPath(err error, path string) error {
	if te, ok := err.(*TypeError); ok && te.FieldPath == "" {
		te.FieldPath = path
	}
	return err
}
