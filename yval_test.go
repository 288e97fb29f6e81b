package yval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/yval/convert"
	"github.com/signadot/yval/encode"
	"github.com/signadot/yval/format"
	"github.com/signadot/yval/parse"
	"github.com/signadot/yval/value"
)

type Port struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

type Service struct {
	Name   string            `yaml:"name"`
	Ports  []Port            `yaml:"ports"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

func TestUnmarshal(t *testing.T) {
	in := `
defaults: &defaults
  name: http
  port: 80
name: web
ports:
  - <<: *defaults
  - <<: *defaults
    port: 8080
`
	var s Service
	if err := Unmarshal([]byte(in), &s, parse.ParseMerge(true)); err != nil {
		t.Fatal(err)
	}
	want := Service{Name: "web", Ports: []Port{{"http", 80}, {"http", 8080}}}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	var s Service
	if err := Unmarshal([]byte("name: [1"), &s); !errors.Is(err, parse.ErrParse) {
		t.Errorf("got %v", err)
	}
	var te *convert.TypeError
	if err := Unmarshal([]byte("ports: {}"), &s); !errors.As(err, &te) || te.FieldPath != "ports" {
		t.Errorf("got %v", err)
	}
}

func TestMarshal(t *testing.T) {
	s := Service{Name: "web", Ports: []Port{{"http", 80}}}
	got, err := Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	want := "name: web\nports:\n  - name: http\n    port: 80\n"
	if string(got) != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	j, err := Marshal(s, encode.EncodeFormat(format.JSONFormat))
	if err != nil {
		t.Fatal(err)
	}
	var back Service
	if err := Unmarshal(j, &back, parse.ParseJSON()); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(s, back); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	if _, err := Marshal(make(chan int)); err == nil {
		t.Errorf("expected error marshaling a channel")
	}
}

func TestUnmarshalAll(t *testing.T) {
	docs, err := UnmarshalAll([]byte("a: 1\n---\nb: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents", len(docs))
	}
	if !docs[1].At(value.Key("b")).IsNumber() {
		t.Errorf("got %s", docs[1])
	}
}
