package main

import (
	"strings"
	"testing"

	"github.com/signadot/yval/value"
)

func TestAssign(t *testing.T) {
	doc := value.FromValues(value.FromInt(1))
	if err := assign(&doc, "[0]", value.FromString("x")); err != nil {
		t.Fatal(err)
	}
	if s, _ := doc.At(value.Pos(0)).AsString(); s != "x" {
		t.Errorf("got %s", doc)
	}
	err := assign(&doc, "[3]", value.Null())
	if err == nil || !strings.Contains(err.Error(), "cannot set [3]") {
		t.Errorf("got %v", err)
	}
	if err := assign(&doc, "a..b", value.Null()); err == nil {
		t.Errorf("expected a path error")
	}
}
