package value

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePath parses a path such as
//
//	a.b[0].'c.d'
//
// into the indices it denotes. Fields are separated by '.', positions are
// written [n] and fields holding '.', '[', ']', quotes or spaces are single or
// double quoted. An optional leading '$' names the root; "" and "$" are the
// empty path.
func ParsePath(path string) ([]Index, error) {
	p := strings.TrimPrefix(path, "$")
	var res []Index
	i, n := 0, len(p)
	for i < n {
		switch c := p[i]; c {
		case '.':
			if i == 0 && len(res) == 0 && path[0] != '$' {
				return nil, fmt.Errorf("%w: %q: unexpected '.' at %d", ErrPath, path, i)
			}
			i++
			if i == n {
				return nil, fmt.Errorf("%w: %q: missing field after '.'", ErrPath, path)
			}
			field, next, err := parseField(p, i)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrPath, path, err)
			}
			res = append(res, Key(field))
			i = next
		case '[':
			end := strings.IndexByte(p[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: %q: unterminated '['", ErrPath, path)
			}
			u, err := strconv.ParseUint(p[i+1:i+end], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: bad position %q", ErrPath, path, p[i+1:i+end])
			}
			res = append(res, Pos(u))
			i += end + 1
		default:
			if len(res) != 0 {
				return nil, fmt.Errorf("%w: %q: unexpected %q at %d", ErrPath, path, c, i)
			}
			field, next, err := parseField(p, i)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrPath, path, err)
			}
			res = append(res, Key(field))
			i = next
		}
	}
	return res, nil
}

func parseField(p string, i int) (string, int, error) {
	if q := p[i]; q == '\'' || q == '"' {
		end := strings.IndexByte(p[i+1:], q)
		if end < 0 {
			return "", 0, fmt.Errorf("unterminated quote at %d", i)
		}
		return p[i+1 : i+1+end], i + end + 2, nil
	}
	j := i
	for j < len(p) && p[j] != '.' && p[j] != '[' {
		if p[j] == ']' || p[j] == '\'' || p[j] == '"' {
			return "", 0, fmt.Errorf("unexpected %q at %d", p[j], j)
		}
		j++
	}
	if j == i {
		return "", 0, fmt.Errorf("empty field at %d", i)
	}
	return p[i:j], j, nil
}

// FormatPath renders indices in the syntax accepted by ParsePath, so that
// ParsePath(FormatPath(p)) gives p back. Value indices must be strings, and
// fields holding both quote characters have no spelling; both fail with
// ErrPath.
func FormatPath(path []Index) (string, error) {
	b := &strings.Builder{}
	for _, idx := range path {
		var field string
		switch x := idx.(type) {
		case Pos:
			fmt.Fprintf(b, "[%d]", uint64(x))
			continue
		case Key:
			field = string(x)
		case Value:
			s, ok := x.AsString()
			if !ok {
				return "", fmt.Errorf("%w: cannot format %s key %s", ErrPath, x.Kind(), x)
			}
			field = s
		case *Value:
			s, ok := x.AsString()
			if !ok {
				return "", fmt.Errorf("%w: cannot format %s key %s", ErrPath, x.Kind(), x)
			}
			field = s
		}
		if b.Len() != 0 {
			b.WriteByte('.')
		}
		if field == "" || field[0] == '$' || strings.ContainsAny(field, ".[]'\" ") {
			q := "'"
			if strings.Contains(field, "'") {
				if strings.Contains(field, `"`) {
					return "", fmt.Errorf("%w: cannot quote field %q", ErrPath, field)
				}
				q = `"`
			}
			field = q + field + q
		}
		b.WriteString(field)
	}
	return b.String(), nil
}

// Lookup follows path from v with Get and returns nil if any step is
// missing. It only fails if path does not parse.
func (v *Value) Lookup(path string) (*Value, error) {
	idxs, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	cur := v
	for _, idx := range idxs {
		cur = cur.Get(idx)
		if cur == nil {
			return nil, nil
		}
	}
	return cur, nil
}

// Assign follows path from v with Entry, creating mappings along the way,
// and stores x at the end. Like Entry, it panics when a step cannot be
// indexed.
func (v *Value) Assign(path string, x Value) error {
	idxs, err := ParsePath(path)
	if err != nil {
		return err
	}
	cur := v
	for _, idx := range idxs {
		cur = cur.Entry(idx)
	}
	*cur = x
	return nil
}
