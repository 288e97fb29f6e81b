package convert

import (
	"reflect"
	"strings"
	"sync"
)

// field is a struct field as seen by the converter, possibly promoted from
// an inlined struct.
type field struct {
	name      string
	index     []int
	typ       reflect.Type
	omitEmpty bool
}

// structInfo lists the fields of a struct type. inlineMap, when not nil, is
// the index of a map[string]T field that collects keys matching no field.
type structInfo struct {
	fields    []field
	byName    map[string]int
	inlineMap []int
}

type cacheKey struct {
	typ     reflect.Type
	tagName string
}

var structCache sync.Map // cacheKey -> *structInfo

func structFields(t reflect.Type, tagName string) *structInfo {
	key := cacheKey{typ: t, tagName: tagName}
	if info, ok := structCache.Load(key); ok {
		return info.(*structInfo)
	}
	info := &structInfo{byName: map[string]int{}}
	var all []field
	collectFields(t, tagName, nil, info, &all, map[reflect.Type]bool{})
	// shallower fields win, as for Go's own field promotion
	depth := map[string]int{}
	for _, f := range all {
		if d, ok := depth[f.name]; !ok || len(f.index) < d {
			depth[f.name] = len(f.index)
		}
	}
	for _, f := range all {
		if _, dup := info.byName[f.name]; dup || len(f.index) != depth[f.name] {
			continue
		}
		info.byName[f.name] = len(info.fields)
		info.fields = append(info.fields, f)
	}
	actual, _ := structCache.LoadOrStore(key, info)
	return actual.(*structInfo)
}

func collectFields(t reflect.Type, tagName string, prefix []int, info *structInfo, all *[]field, seen map[reflect.Type]bool) {
	if seen[t] {
		return
	}
	seen[t] = true
	defer delete(seen, t)
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get(tagName)
		if tag == "-" {
			continue
		}
		name, flags := parseTag(tag)
		index := append(append([]int(nil), prefix...), i)
		ft := sf.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		inline := flags["inline"] || (sf.Anonymous && name == "" && ft.Kind() == reflect.Struct)
		if inline {
			switch {
			case ft.Kind() == reflect.Struct:
				collectFields(ft, tagName, index, info, all, seen)
				continue
			case sf.Type.Kind() == reflect.Map && sf.Type.Key().Kind() == reflect.String && info.inlineMap == nil:
				info.inlineMap = index
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = strings.ToLower(sf.Name)
		}
		*all = append(*all, field{
			name:      name,
			index:     index,
			typ:       sf.Type,
			omitEmpty: flags["omitempty"],
		})
	}
}

// parseTag splits a tag such as "name,omitempty,inline".
func parseTag(tag string) (string, map[string]bool) {
	parts := strings.Split(tag, ",")
	flags := map[string]bool{}
	for _, p := range parts[1:] {
		flags[strings.TrimSpace(p)] = true
	}
	return parts[0], flags
}
