package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  error
	}{
		{"y", YAMLFormat, nil},
		{"yml", YAMLFormat, nil},
		{"json", JSONFormat, nil},
		{"toml", 0, ErrBadFormat},
		{"", 0, ErrBadFormat},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if err == nil && got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != f {
			t.Errorf("%s came back as %s", f, back)
		}
		if FromPath("x/y"+f.Suffix()) != f {
			t.Errorf("FromPath(%s) != %s", f.Suffix(), f)
		}
	}
	if _, err := Format(7).MarshalText(); err == nil {
		t.Errorf("expected error for unknown format")
	}
	if FromPath("notes.txt") != YAMLFormat {
		t.Errorf("unknown extension should default to yaml")
	}
}
