package value

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToJSON(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null(), "null"},
		{"scalars", FromValues(FromBool(true), FromInt(-1), FromUint(math.MaxUint64), FromFloat(1.5), str("x")), `[true,-1,18446744073709551615,1.5,"x"]`},
		{"ordered keys", mapOf(str("z"), FromInt(1), str("a"), FromInt(2)), `{"z":1,"a":2}`},
		{"scalar keys", mapOf(FromInt(1), Null(), FromBool(false), Null(), Null(), Null()), `{"1":null,"false":null,"null":null}`},
		{"tagged", FromTagged("!Point", mapOf(str("x"), FromInt(0))), `{"Point":{"x":0}}`},
		{"empty containers", FromValues(FromValues(), mapOf()), `[[],{}]`},
		{"integral floats", FromValues(FromFloat(1), FromFloat(-100), FromFloat(math.Copysign(0, -1)), FromFloat(1e100)), `[1.0,-100.0,-0.0,1e+100]`},
		{"float key", mapOf(FromFloat(2), Null()), `{"2.0":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToJSON(&tt.v)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestToJSONErrors(t *testing.T) {
	for name, v := range map[string]Value{
		"nan":          FromFloat(math.NaN()),
		"inf":          FromValues(FromFloat(math.Inf(1))),
		"sequence key": mapOf(FromValues(), Null()),
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ToJSON(&v); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestFromJSON(t *testing.T) {
	got, err := FromJSON([]byte(`{"b": [1, -2, 1.0, 18446744073709551615, "s", null, true], "a": {}}`))
	if err != nil {
		t.Fatal(err)
	}
	want := mapOf(
		str("b"), FromValues(FromInt(1), FromInt(-2), FromFloat(1), FromUint(math.MaxUint64), str("s"), Null(), FromBool(true)),
		str("a"), mapOf(),
	)
	if diff := cmp.Diff(want, got, valueCmp); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	m, _ := got.AsMapping()
	k, _ := m.EntryAt(0)
	if s, _ := k.AsString(); s != "b" {
		t.Errorf("key order lost: first key %s", k)
	}

	if _, err := FromJSON([]byte(`{"a":`)); err == nil {
		t.Errorf("expected error for truncated input")
	}
}

func TestJSONRoundTripKeepsNumberKinds(t *testing.T) {
	for _, v := range []Value{
		FromFloat(1),
		FromFloat(-3),
		FromFloat(1e21),
		FromFloat(0.5),
		FromInt(1),
		FromInt(-1),
		FromUint(math.MaxUint64),
	} {
		t.Run(v.String(), func(t *testing.T) {
			d, err := ToJSON(&v)
			if err != nil {
				t.Fatal(err)
			}
			back, err := FromJSON(d)
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(&v, &back) {
				t.Errorf("%s came back as %s", d, &back)
			}
			if v.IsFloat64() != back.IsFloat64() {
				t.Errorf("%s changed kind: float %v -> %v", d, v.IsFloat64(), back.IsFloat64())
			}
		})
	}
}
