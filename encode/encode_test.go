package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/signadot/yval/format"
	"github.com/signadot/yval/value"
)

func mapOf(kvs ...value.Value) value.Value {
	m := value.NewMapping()
	for i := 0; i < len(kvs); i += 2 {
		m.Insert(kvs[i], kvs[i+1])
	}
	return value.FromMapping(m)
}

func str(s string) value.Value { return value.FromString(s) }

func TestEncodeYAML(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		want string
	}{
		{
			name: "scalar",
			v:    value.FromInt(3),
			want: "3\n",
		},
		{
			name: "nested",
			v: mapOf(
				str("a"), value.FromInt(1),
				str("b"), value.FromValues(str("x"), str("y")),
				str("c"), mapOf(),
				str("d"), mapOf(str("e"), value.Null()),
			),
			want: `a: 1
b:
  - x
  - y
c: {}
d:
  e: null
`,
		},
		{
			name: "sequence items",
			v: value.FromValues(
				mapOf(str("a"), value.FromInt(1), str("b"), value.FromInt(2)),
				value.FromValues(value.FromInt(1), value.FromInt(2)),
				str("s"),
				value.FromValues(),
			),
			want: `- a: 1
  b: 2
- - 1
  - 2
- s
- []
`,
		},
		{
			name: "tags",
			v: mapOf(
				str("p"), value.FromTagged("!Point", mapOf(str("x"), value.FromInt(1))),
				str("s"), value.FromTagged("!T", str("x")),
				str("e"), value.FromTagged("E", value.FromValues()),
				str("l"), value.FromValues(value.FromTagged("!V", value.FromValues(value.Null()))),
			),
			want: `p: !Point
  x: 1
s: !T x
e: !E []
l:
  - !V
    - null
`,
		},
		{
			name: "top level tag",
			v:    value.FromTagged("!L", value.FromValues(value.FromInt(1))),
			want: "!L\n- 1\n",
		},
		{
			name: "scalars",
			v: value.FromValues(
				value.FromBool(false),
				value.FromFloat(1),
				value.FromFloat(math.NaN()),
				value.FromFloat(math.Inf(-1)),
				value.FromInt(-3),
				value.FromUint(math.MaxUint64),
			),
			want: `- false
- 1.0
- .nan
- -.inf
- -3
- 18446744073709551615
`,
		},
		{
			name: "non string keys",
			v: mapOf(
				value.FromInt(1), str("one"),
				value.Null(), str("nil"),
				value.FromBool(true), str("yes"),
				str("1"), str("string one"),
			),
			want: `1: one
null: nil
true: "yes"
"1": string one
`,
		},
		{
			name: "complex key",
			v: mapOf(
				value.FromValues(value.FromInt(1), str("a,b")), str("v"),
				mapOf(str("k"), value.Null()), mapOf(str("x"), value.FromInt(0)),
			),
			want: `? [1, "a,b"]
: v
? {k: null}
:
  x: 0
`,
		},
		{
			name: "merge key",
			v:    mapOf(str("<<"), mapOf(str("a"), value.FromInt(1))),
			want: "<<:\n  a: 1\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := Encode(&tt.v, buf); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestQuoteString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", `""`},
		{"plain text", "plain text"},
		{"true", `"true"`},
		{"No", `"No"`},
		{"~", `"~"`},
		{"123", `"123"`},
		{"1_000", `"1_000"`},
		{"0x1F", `"0x1F"`},
		{".inf", `".inf"`},
		{"-x", `"-x"`},
		{"a: b", `"a: b"`},
		{"a #b", `"a #b"`},
		{"trailing:", `"trailing:"`},
		{" lead", `" lead"`},
		{"multi\nline", `"multi\nline"`},
		{"tab\there", `"tab\there"`},
		{"---", `"---"`},
		{"*alias", `"*alias"`},
		{"<<", "<<"},
		{"héllo wörld", "héllo wörld"},
		{"path/to.file", "path/to.file"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := quoteString(tt.in, false); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
	if got := quoteString("a,b", true); got != `"a,b"` {
		t.Errorf("flow context: got %s", got)
	}
	if got := quoteString("a,b", false); got != "a,b" {
		t.Errorf("block context: got %s", got)
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		opts []EncodeOption
	}{
		{"nested tags", value.FromTagged("!a", value.FromTagged("!b", value.Null())), nil},
		{"nested tags in key", mapOf(value.FromTagged("!a", value.FromTagged("!b", value.Null())), value.Null()), nil},
		{"json nan", value.FromFloat(math.NaN()), []EncodeOption{EncodeFormat(format.JSONFormat)}},
		{"json sequence key", mapOf(value.FromValues(), value.Null()), []EncodeOption{EncodeFormat(format.JSONFormat)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Encode(&tt.v, &bytes.Buffer{}, tt.opts...)
			if !errors.Is(err, ErrEncoding) {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestEncodeJSON(t *testing.T) {
	v := mapOf(str("b"), value.FromValues(value.FromInt(1), value.FromBool(true)), str("a"), value.Null())
	buf := &bytes.Buffer{}
	if err := Encode(&v, buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "{\n  \"b\":") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("unexpected layout:\n%s", out)
	}
	back, err := value.FromJSON(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(&v, &back) {
		t.Errorf("got %s, want %s", back, v)
	}
}

func TestEncodeSortKeys(t *testing.T) {
	v := mapOf(str("b"), mapOf(str("z"), value.Null(), str("y"), value.Null()), str("a"), value.FromInt(2))
	got := MustString(&v, EncodeSortKeys(true))
	want := "a: 2\nb:\n  y: null\n  z: null"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if unsorted := MustString(&v); !strings.HasPrefix(unsorted, "b:") {
		t.Errorf("sorting modified the input:\n%s", unsorted)
	}
}

func TestEncodeAll(t *testing.T) {
	docs := []value.Value{mapOf(str("a"), value.FromInt(1)), value.FromValues(value.FromInt(1))}
	buf := &bytes.Buffer{}
	if err := EncodeAll(docs, buf); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "a: 1\n---\n- 1\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	buf.Reset()
	if err := EncodeAll(docs, buf, EncodeFormat(format.JSONFormat), EncodeIndent(1)); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "\n}\n"); got != 1 {
		t.Errorf("got %d objects in\n%s", got, buf.String())
	}
}

func TestEncodeColors(t *testing.T) {
	mark := func(s string, _ ...any) string { return "<" + s + ">" }
	colors := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Kind: value.NumberKind, Attr: ValueColor}:  mark,
			{Kind: value.MappingKind, Attr: FieldColor}: mark,
			{Kind: value.StringKind, Attr: TagColor}:    mark,
		},
	}
	v := mapOf(str("n"), value.FromInt(1), str("t"), value.FromTagged("!T", str("x")))
	got := MustString(&v, EncodeColors(colors))
	want := "<n>: <1>\n<t>: <!T> x"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := MustString(&v, EncodeColors(nil)); got != "n: 1\nt: !T x" {
		t.Errorf("nil colors: got %q", got)
	}
	if NewColors().Get(value.StringKind, ValueColor) == nil {
		t.Errorf("missing string color")
	}
}
