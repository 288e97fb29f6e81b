package convert

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"reflect"
	"slices"

	"github.com/signadot/yval/debug"
	"github.com/signadot/yval/value"
)

// Marshaler is implemented by types that build their own value.
type Marshaler interface {
	MarshalValue() (value.Value, error)
}

var (
	valueType         = reflect.TypeOf(value.Value{})
	marshalerType     = reflect.TypeOf((*Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// ToValue converts a Go value to a value.Value.
//
// Structs become mappings keyed by field name, lower cased unless a yaml
// struct tag names the field. Tag flags "omitempty" and "inline" are
// honoured, and "-" skips a field. Maps become mappings with their keys
// sorted, []byte a base64 string.
//
// ToValue fails on channels, functions, complex numbers and pointer cycles.
func ToValue(v any, opts ...ConvertOption) (value.Value, error) {
	c := &toConverter{
		opts:    newConvertOpts(opts...),
		visited: map[uintptr]bool{},
	}
	res, err := c.convert(reflect.ValueOf(v), "")
	if err != nil {
		return value.Value{}, err
	}
	if debug.Convert() {
		debug.Logf("converted %T to\n%s", v, &res)
	}
	return res, nil
}

type toConverter struct {
	opts    *convertOpts
	visited map[uintptr]bool
}

func (c *toConverter) convert(rv reflect.Value, path string) (value.Value, error) {
	if !rv.IsValid() {
		return value.Null(), nil
	}
	t := rv.Type()
	if t == valueType {
		v := rv.Interface().(value.Value)
		return v.Clone(), nil
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return value.Null(), nil
		}
	}
	if t.Implements(marshalerType) {
		res, err := rv.Interface().(Marshaler).MarshalValue()
		if err != nil {
			return value.Value{}, &MarshalError{FieldPath: path, Message: "MarshalValue failed", Err: err}
		}
		return res, nil
	}
	if t.Kind() != reflect.Pointer && rv.CanAddr() && reflect.PointerTo(t).Implements(marshalerType) {
		return c.convert(rv.Addr(), path)
	}
	if t.Implements(textMarshalerType) {
		text, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return value.Value{}, &MarshalError{FieldPath: path, Message: "MarshalText failed", Err: err}
		}
		return value.FromString(string(text)), nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		ptr := rv.Pointer()
		if c.visited[ptr] {
			return value.Value{}, &MarshalError{FieldPath: path, Message: fmt.Sprintf("cycle through %s", t)}
		}
		c.visited[ptr] = true
		defer delete(c.visited, ptr)
		return c.convert(rv.Elem(), path)
	case reflect.Interface:
		return c.convert(rv.Elem(), path)
	case reflect.Bool:
		return value.FromBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return value.FromUint(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return value.FromFloat(rv.Float()), nil
	case reflect.String:
		return value.FromString(rv.String()), nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return value.FromString(base64.StdEncoding.EncodeToString(rv.Bytes())), nil
		}
		return c.sequence(rv, path)
	case reflect.Array:
		return c.sequence(rv, path)
	case reflect.Map:
		return c.mapping(rv, path)
	case reflect.Struct:
		return c.structure(rv, path)
	}
	return value.Value{}, &MarshalError{FieldPath: path, Message: fmt.Sprintf("unsupported type %s", t)}
}

func (c *toConverter) sequence(rv reflect.Value, path string) (value.Value, error) {
	seq := make(value.Sequence, rv.Len())
	for i := range seq {
		v, err := c.convert(rv.Index(i), indexPath(path, i))
		if err != nil {
			return value.Value{}, err
		}
		seq[i] = v
	}
	return value.FromSequence(seq), nil
}

func (c *toConverter) mapping(rv reflect.Value, path string) (value.Value, error) {
	if rv.Len() != 0 {
		ptr := rv.Pointer()
		if c.visited[ptr] {
			return value.Value{}, &MarshalError{FieldPath: path, Message: fmt.Sprintf("cycle through %s", rv.Type())}
		}
		c.visited[ptr] = true
		defer delete(c.visited, ptr)
	}
	type entry struct{ k, v value.Value }
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := c.convert(iter.Key(), path)
		if err != nil {
			return value.Value{}, err
		}
		v, err := c.convert(iter.Value(), fieldPath(path, fmt.Sprint(iter.Key().Interface())))
		if err != nil {
			return value.Value{}, err
		}
		entries = append(entries, entry{k, v})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return value.Compare(&a.k, &b.k)
	})
	m := value.NewMappingCap(len(entries))
	for _, e := range entries {
		m.Insert(e.k, e.v)
	}
	return value.FromMapping(m), nil
}

func (c *toConverter) structure(rv reflect.Value, path string) (value.Value, error) {
	info := structFields(rv.Type(), c.opts.tagName)
	m := value.NewMappingCap(len(info.fields))
	for _, f := range info.fields {
		fv, ok := fieldByIndex(rv, f.index)
		if !ok {
			continue
		}
		if f.omitEmpty && fv.IsZero() {
			continue
		}
		v, err := c.convert(fv, fieldPath(path, f.name))
		if err != nil {
			return value.Value{}, err
		}
		m.Insert(value.FromString(f.name), v)
	}
	if info.inlineMap != nil {
		mv, ok := fieldByIndex(rv, info.inlineMap)
		if ok && !mv.IsNil() {
			extra, err := c.mapping(mv, path)
			if err != nil {
				return value.Value{}, err
			}
			em, _ := extra.AsMapping()
			for k, v := range em.All() {
				if m.ContainsKey(k) {
					continue
				}
				m.Insert(k, *v)
			}
		}
	}
	return value.FromMapping(m), nil
}

// fieldByIndex is reflect.Value.FieldByIndex that reports false instead of
// panicking on nil embedded pointers.
func fieldByIndex(rv reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return reflect.Value{}, false
			}
			rv = rv.Elem()
		}
		rv = rv.Field(x)
	}
	return rv, true
}

func fieldPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
