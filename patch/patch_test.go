package patch

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/yval/value"
)

var valueCmp = cmp.Comparer(func(a, b value.Value) bool { return value.Equal(&a, &b) })

func mustJSON(t *testing.T, s string) value.Value {
	t.Helper()
	v, err := value.FromJSON([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func keys(v value.Value) []string {
	m, _ := v.AsMapping()
	var res []string
	for k := range m.Keys() {
		s, _ := k.AsString()
		res = append(res, s)
	}
	return res
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		ops  string
		want string
	}{
		{
			name: "add and replace",
			doc:  `{"b": 1, "a": {"x": [1, 2]}}`,
			ops:  `[{"op": "add", "path": "/a/x/-", "value": 3}, {"op": "replace", "path": "/b", "value": "two"}]`,
			want: `{"b": "two", "a": {"x": [1, 2, 3]}}`,
		},
		{
			name: "remove and move",
			doc:  `{"a": 1, "b": {"c": true}}`,
			ops:  `[{"op": "remove", "path": "/a"}, {"op": "move", "from": "/b/c", "path": "/c"}]`,
			want: `{"b": {}, "c": true}`,
		},
		{
			name: "test passes",
			doc:  `{"a": 18446744073709551615}`,
			ops:  `[{"op": "test", "path": "/a", "value": 18446744073709551615}]`,
			want: `{"a": 18446744073709551615}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustJSON(t, tt.doc)
			got, err := Apply(doc, mustJSON(t, tt.ops))
			if err != nil {
				t.Fatal(err)
			}
			want := mustJSON(t, tt.want)
			if diff := cmp.Diff(want, got, valueCmp); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(keys(want), keys(got)); diff != "" {
				t.Errorf("key order (-want +got):\n%s", diff)
			}
			if !value.Equal(&doc, ptr(mustJSON(t, tt.doc))) {
				t.Errorf("input document modified")
			}
		})
	}
}

func ptr(v value.Value) *value.Value { return &v }

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  value.Value
		ops  string
	}{
		{"failed test", mustJSON(t, `{"a": 1}`), `[{"op": "test", "path": "/a", "value": 2}]`},
		{"missing path", mustJSON(t, `{"a": 1}`), `[{"op": "remove", "path": "/nope/x"}]`},
		{"not a patch", mustJSON(t, `{"a": 1}`), `{"op": "add"}`},
		{"sequence key", value.FromMapping(func() *value.Mapping {
			m := value.NewMapping()
			m.Insert(value.FromValues(), value.Null())
			return m
		}()), `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(tt.doc, mustJSON(t, tt.ops))
			if !errors.Is(err, ErrPatch) {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	doc := mustJSON(t, `{"title": "Goodbye!", "author": {"givenName": "John", "familyName": "Doe"}, "tags": ["example", "sample"], "content": "This will be unchanged"}`)
	mp := mustJSON(t, `{"title": "Hello!", "phoneNumber": "+01-123-456-7890", "author": {"familyName": null}, "tags": ["example"]}`)
	got, err := Merge(doc, mp)
	if err != nil {
		t.Fatal(err)
	}
	want := mustJSON(t, `{"title": "Hello!", "author": {"givenName": "John"}, "tags": ["example"], "content": "This will be unchanged", "phoneNumber": "+01-123-456-7890"}`)
	if diff := cmp.Diff(want, got, valueCmp); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(keys(want), keys(got)); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
}

func TestCreateMerge(t *testing.T) {
	from := mustJSON(t, `{"a": 1, "b": {"c": 2, "d": 3}}`)
	to := mustJSON(t, `{"a": 1, "b": {"c": 4}}`)
	mp, err := CreateMerge(from, to)
	if err != nil {
		t.Fatal(err)
	}
	want := mustJSON(t, `{"b": {"c": 4, "d": null}}`)
	if diff := cmp.Diff(want, mp, valueCmp); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got, err := Merge(from, mp)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(to, got, valueCmp); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestKeepOrderNonStringKeys(t *testing.T) {
	m := value.NewMapping()
	m.Insert(value.FromInt(2), value.FromString("two"))
	m.Insert(value.FromInt(1), value.FromString("one"))
	got, err := Merge(value.FromMapping(m), mustJSON(t, `{"3": "three"}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"2", "1", "3"}, keys(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestKeepOrderScalarKeys(t *testing.T) {
	m := value.NewMapping()
	m.Insert(value.FromFloat(2), value.FromString("two"))
	m.Insert(value.FromFloat(1.5), value.FromString("one and a half"))
	m.Insert(value.FromBool(true), value.FromString("yes"))
	m.Insert(value.Null(), value.FromString("nothing"))
	got, err := Merge(value.FromMapping(m), mustJSON(t, `{"0": "zero"}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"2.0", "1.5", "true", "null", "0"}, keys(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestUntouchedFloatsStayFloats(t *testing.T) {
	doc := mustJSON(t, `{"x": 1.0, "y": [2.0, 3], "z": 0}`)
	tests := []struct {
		name string
		run  func() (value.Value, error)
	}{
		{"apply", func() (value.Value, error) {
			return Apply(doc, mustJSON(t, `[{"op": "replace", "path": "/z", "value": 1}]`))
		}},
		{"merge", func() (value.Value, error) {
			return Merge(doc, mustJSON(t, `{"z": 1}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.run()
			if err != nil {
				t.Fatal(err)
			}
			for _, p := range []*value.Value{got.At(value.Key("x")), got.At(value.Key("y")).At(value.Pos(0))} {
				if !p.IsFloat64() {
					t.Errorf("%s is no longer a float", p)
				}
			}
			if got.At(value.Key("y")).At(value.Pos(1)).IsFloat64() {
				t.Errorf("integer 3 became a float")
			}
			want := mustJSON(t, `{"x": 1.0, "y": [2.0, 3], "z": 1}`)
			if diff := cmp.Diff(want, got, valueCmp); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
