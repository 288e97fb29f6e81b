package debug

import (
	"bytes"
	"testing"

	"github.com/signadot/yval/value"
)

func TestBoolEnv(t *testing.T) {
	t.Setenv("YV_TEST_ON", "true")
	t.Setenv("YV_TEST_JUNK", "maybe")
	if !boolEnv("YV_TEST_ON") {
		t.Errorf("expected true")
	}
	if boolEnv("YV_TEST_JUNK") || boolEnv("YV_TEST_UNSET") {
		t.Errorf("expected false")
	}
}

func TestLogf(t *testing.T) {
	buf := &bytes.Buffer{}
	old := out
	out = buf
	defer func() { out = old }()

	m := value.NewMapping()
	m.Insert(value.FromString("a"), value.FromInt(1))
	v := value.FromMapping(m)
	Logf("value %s|map %s|n %d\n", &v, map[string]any{"k": 1}, 3)
	want := "value a: 1\n|map {\n   |  \"k\": 1\n   |}|n 3\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
