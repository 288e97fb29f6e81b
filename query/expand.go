package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/yval/convert"
	"github.com/signadot/yval/value"
)

// Expand evaluates the $[expr] references found in the strings of doc
// against doc as it was before expansion. A string that is exactly one
// reference is replaced by the value of the expression; otherwise each
// reference is replaced by the text of its result. Mapping keys are left
// alone.
func Expand(doc *value.Value) error {
	orig := doc.Clone()
	env, err := Env(&orig)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
	stack := []*value.Value{doc}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch v.Kind() {
		case value.SequenceKind:
			seq, _ := v.AsSequenceMut()
			for i := range *seq {
				stack = append(stack, &(*seq)[i])
			}
		case value.MappingKind:
			m, _ := v.AsMappingMut()
			for x := range m.Values() {
				stack = append(stack, x)
			}
		case value.TaggedKind:
			t, _ := v.AsTagged()
			stack = append(stack, &t.Value)
		case value.StringKind:
			s, _ := v.AsString()
			if src, ok := wholeRef(s); ok {
				x, err := run(src, &orig, env)
				if err != nil {
					return err
				}
				res, err := convert.ToValue(x)
				if err != nil {
					return fmt.Errorf("%w: result of %q: %w", ErrQuery, src, err)
				}
				*v = res
				continue
			}
			res, err := expandString(s, &orig, env)
			if err != nil {
				return err
			}
			*v = value.FromString(res)
		}
	}
	return nil
}

// ExpandString interpolates the $[expr] references in s, evaluated against
// doc.
func ExpandString(s string, doc value.Value) (string, error) {
	env, err := Env(&doc)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return expandString(s, &doc, env)
}

func wholeRef(s string) (string, bool) {
	if !strings.HasPrefix(s, "$[") || !strings.HasSuffix(s, "]") {
		return "", false
	}
	if closing(s[2:]) != len(s)-3 {
		return "", false
	}
	return strings.TrimSpace(s[2 : len(s)-1]), true
}

// closing returns the index of the ']' closing a reference whose text
// starts s, or -1.
func closing(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

func expandString(s string, root *value.Value, env map[string]any) (string, error) {
	var b strings.Builder
	for {
		i := strings.Index(s, "$[")
		if i == -1 {
			b.WriteString(s)
			return b.String(), nil
		}
		j := closing(s[i+2:])
		if j == -1 {
			// unterminated references are kept as text
			b.WriteString(s)
			return b.String(), nil
		}
		b.WriteString(s[:i])
		src := strings.TrimSpace(s[i+2 : i+2+j])
		x, err := run(src, root, env)
		if err != nil {
			return "", err
		}
		text, err := anyText(x)
		if err != nil {
			return "", fmt.Errorf("%w: result of %q: %w", ErrQuery, src, err)
		}
		b.WriteString(text)
		s = s[i+2+j+1:]
	}
}

func anyText(x any) (string, error) {
	switch y := x.(type) {
	case nil:
		return "null", nil
	case string:
		return y, nil
	case bool:
		return strconv.FormatBool(y), nil
	case int:
		return strconv.Itoa(y), nil
	case float64:
		return strconv.FormatFloat(y, 'f', -1, 64), nil
	}
	v, err := convert.ToValue(x)
	if err != nil {
		return "", err
	}
	d, err := value.ToJSON(&v)
	if err != nil {
		return "", err
	}
	return string(d), nil
}
