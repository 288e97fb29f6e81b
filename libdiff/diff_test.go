package libdiff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/yval/encode"
	"github.com/signadot/yval/value"
)

func mapOf(kvs ...value.Value) value.Value {
	m := value.NewMapping()
	for i := 0; i < len(kvs); i += 2 {
		m.Insert(kvs[i], kvs[i+1])
	}
	return value.FromMapping(m)
}

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want []Line
	}{
		{"same", "x\ny\n", "x\ny\n", []Line{{Equal, "x"}, {Equal, "y"}}},
		{"both empty", "", "", nil},
		{"insert", "x\n", "x\ny\n", []Line{{Equal, "x"}, {Insert, "y"}}},
		{"delete", "x\ny\nz\n", "x\nz\n", []Line{{Equal, "x"}, {Delete, "y"}, {Equal, "z"}}},
		{"replace", "x\ny\n", "x\nw\n", []Line{{Equal, "x"}, {Delete, "y"}, {Insert, "w"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.a, tt.b)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiff(t *testing.T) {
	from := mapOf(value.FromString("a"), value.FromInt(1), value.FromString("b"), value.FromInt(2))
	to := mapOf(value.FromString("b"), value.FromInt(3), value.FromString("a"), value.FromInt(1))

	lines, err := Diff(&from, &to, encode.EncodeSortKeys(true))
	if err != nil {
		t.Fatal(err)
	}
	want := []Line{{Equal, "a: 1"}, {Delete, "b: 2"}, {Insert, "b: 3"}}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Changed(lines) {
		t.Errorf("expected a change")
	}

	same, err := Diff(&from, &from)
	if err != nil {
		t.Fatal(err)
	}
	if Changed(same) {
		t.Errorf("unexpected change: %v", same)
	}

	nested := value.FromTagged("!A", value.FromTagged("!B", value.Null()))
	if _, err := Diff(&from, &nested); err == nil {
		t.Errorf("expected an encoding error")
	}
}

func TestWrite(t *testing.T) {
	lines := []Line{{Equal, "a: 1"}, {Delete, "b: 2"}, {Insert, "b: 3"}}
	buf := &bytes.Buffer{}
	if err := Write(buf, lines, false); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), " a: 1\n-b: 2\n+b: 3\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	buf.Reset()
	if err := Write(buf, lines, true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") || !strings.Contains(out, " a: 1\n") {
		t.Errorf("expected colour escapes around changes only: %q", out)
	}
}
