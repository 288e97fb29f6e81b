package query

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

func TestEval(t *testing.T) {
	t.Setenv("YVAL_QUERY_TEST", "here")
	doc := mustJSON(t, `{"name": "web", "replicas": 3, "ports": [{"port": 80}, {"port": 443}], "enabled": true}`)
	tests := []struct {
		src  string
		want value.Value
	}{
		{`name`, value.FromString("web")},
		{`replicas * 2`, value.FromInt(6)},
		{`doc.ports[1].port`, value.FromInt(443)},
		{`len(ports)`, value.FromInt(2)},
		{`map(ports, .port)`, value.FromValues(value.FromInt(80), value.FromInt(443))},
		{`enabled && name == "web"`, value.FromBool(true)},
		{`getpath("ports[0].port")`, value.FromInt(80)},
		{`getpath("missing")`, value.Null()},
		{`getenv("YVAL_QUERY_TEST")`, value.FromString("here")},
		{`undefinedVar`, value.Null()},
		{`{"a": name}`, mustJSON(t, `{"a": "web"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Eval(tt.src, doc)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got, valueCmp); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvalNonMappingDoc(t *testing.T) {
	got, err := Eval(`doc[1] + 1`, value.FromValues(value.FromInt(1), value.FromInt(2)))
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := got.AsInt64(); n != 3 {
		t.Errorf("got %s", got)
	}
}

func TestEvalErrors(t *testing.T) {
	doc := mustJSON(t, `{"a": 1}`)
	for _, src := range []string{`a +`, `getpath("a..b")`, `1 / "x"`} {
		t.Run(src, func(t *testing.T) {
			if _, err := Eval(src, doc); !errors.Is(err, ErrQuery) {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestExpand(t *testing.T) {
	doc := mustJSON(t, `{
		"name": "web",
		"port": 8080,
		"url": "http://$[name]:$[port]/",
		"copy": "$[port]",
		"list": ["$[ name + '-0' ]", "plain", "$[unterminated"],
		"ports": "$[ [port, port + 1] ]"
	}`)
	if err := Expand(&doc); err != nil {
		t.Fatal(err)
	}
	want := mustJSON(t, `{
		"name": "web",
		"port": 8080,
		"url": "http://web:8080/",
		"copy": 8080,
		"list": ["web-0", "plain", "$[unterminated"],
		"ports": [8080, 8081]
	}`)
	if diff := cmp.Diff(want, doc, valueCmp); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestExpandString(t *testing.T) {
	doc := mustJSON(t, `{"xs": [1, 2], "m": {"k": null}}`)
	got, err := ExpandString("xs=$[xs] m=$[m] none=$[m.k]", doc)
	if err != nil {
		t.Fatal(err)
	}
	if want := `xs=[1,2] m={"k":null} none=null`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
