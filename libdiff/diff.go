package libdiff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/signadot/yval/encode"
	"github.com/signadot/yval/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

// Line is one line of a diff. Text does not include the line terminator.
type Line struct {
	Op   Op
	Text string
}

func (l Line) String() string {
	return l.Op.String() + l.Text
}

// Diff encodes from and to with opts and returns the line diff of the two
// encodings.
func Diff(from, to *value.Value, opts ...encode.EncodeOption) ([]Line, error) {
	a, err := encodeText(from, opts)
	if err != nil {
		return nil, fmt.Errorf("encoding from: %w", err)
	}
	b, err := encodeText(to, opts)
	if err != nil {
		return nil, fmt.Errorf("encoding to: %w", err)
	}
	return Lines(a, b), nil
}

func encodeText(v *value.Value, opts []encode.EncodeOption) (string, error) {
	buf := &bytes.Buffer{}
	// colour escapes would show up as changes
	opts = append(opts[:len(opts):len(opts)], encode.EncodeColors(nil))
	if err := encode.Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Lines diffs two texts line by line.
func Lines(a, b string) []Line {
	dmp := diffpatch.New()
	ra, rb, lineArray := dmp.DiffLinesToRunes(a, b)
	diffs := dmp.DiffMainRunes(ra, rb, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, text := range splitLines(d.Text) {
			res = append(res, Line{Op: op, Text: text})
		}
	}
	return res
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Changed reports whether any line was inserted or deleted.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}
