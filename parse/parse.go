package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/signadot/yval/debug"
	"github.com/signadot/yval/format"
	"github.com/signadot/yval/value"
)

// Parse parses a single document. Empty input is null.
func Parse(d []byte, opts ...ParseOption) (value.Value, error) {
	docs, err := ParseAll(d, opts...)
	if err != nil {
		return value.Value{}, err
	}
	switch len(docs) {
	case 0:
		return value.Null(), nil
	case 1:
		return docs[0], nil
	}
	return value.Value{}, fmt.Errorf("%w, found %d", ErrMultipleDocs, len(docs))
}

// ParseAll parses a stream of documents: "---" separated YAML documents or
// whitespace separated JSON values.
func ParseAll(d []byte, opts ...ParseOption) ([]value.Value, error) {
	pOpts := &parseOpts{format: format.YAMLFormat}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		docs []value.Value
		err  error
	)
	switch pOpts.format {
	case format.JSONFormat:
		docs, err = parseJSON(d)
	default:
		docs, err = parseYAML(d)
	}
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if debug.Parse() {
			debug.Logf("parsed document %d:\n%s", i, &docs[i])
		}
		if !pOpts.merge {
			continue
		}
		if err := docs[i].ApplyMerge(); err != nil {
			return nil, fmt.Errorf("%w: document %d: %w", ErrParse, i, err)
		}
		if debug.Merge() {
			debug.Logf("document %d after merging:\n%s", i, &docs[i])
		}
	}
	return docs, nil
}

func parseJSON(d []byte) ([]value.Value, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(d))
	var res []value.Value
	for {
		var v value.Value
		err := v.UnmarshalJSONFrom(dec)
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		res = append(res, v)
	}
}

func parseYAML(d []byte) ([]value.Value, error) {
	file, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	res := make([]value.Value, 0, len(file.Docs))
	for _, doc := range file.Docs {
		if doc == nil || doc.Body == nil {
			if len(file.Docs) == 1 {
				continue
			}
			res = append(res, value.Null())
			continue
		}
		c := &converter{anchors: map[string]*value.Value{}}
		v, err := c.convert(doc.Body)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

// converter turns one YAML document's AST into a value. Anchors are
// document scoped.
type converter struct {
	anchors map[string]*value.Value
}

func (c *converter) convert(node ast.Node) (value.Value, error) {
	switch n := node.(type) {
	case nil:
		return value.Null(), nil
	case *ast.NullNode:
		return value.Null(), nil
	case *ast.BoolNode:
		return value.FromBool(n.Value), nil
	case *ast.IntegerNode:
		return integer(n)
	case *ast.FloatNode:
		return value.FromFloat(n.Value), nil
	case *ast.InfinityNode:
		return value.FromFloat(n.Value), nil
	case *ast.NanNode:
		return value.FromFloat(math.NaN()), nil
	case *ast.StringNode:
		return value.FromString(n.Value), nil
	case *ast.LiteralNode:
		if n.Value == nil {
			return value.FromString(""), nil
		}
		return value.FromString(n.Value.Value), nil
	case *ast.MergeKeyNode:
		return value.FromString(value.MergeKey), nil
	case *ast.MappingNode:
		m := value.NewMappingCap(len(n.Values))
		for _, mv := range n.Values {
			if err := c.entry(m, mv); err != nil {
				return value.Value{}, err
			}
		}
		return value.FromMapping(m), nil
	case *ast.MappingValueNode:
		m := value.NewMappingCap(1)
		if err := c.entry(m, n); err != nil {
			return value.Value{}, err
		}
		return value.FromMapping(m), nil
	case *ast.MappingKeyNode:
		return c.convert(n.Value)
	case *ast.SequenceNode:
		seq := make(value.Sequence, 0, len(n.Values))
		for _, elt := range n.Values {
			v, err := c.convert(elt)
			if err != nil {
				return value.Value{}, err
			}
			seq = append(seq, v)
		}
		return value.FromSequence(seq), nil
	case *ast.AnchorNode:
		v, err := c.convert(n.Value)
		if err != nil {
			return value.Value{}, err
		}
		if n.Name != nil {
			c.anchors[tokenValue(n.Name)] = &v
		}
		return v, nil
	case *ast.AliasNode:
		name := tokenValue(n.Value)
		v, ok := c.anchors[name]
		if !ok {
			return value.Value{}, fmt.Errorf("%w %q at %s", ErrUnknownAnchor, name, position(n))
		}
		return v.Clone(), nil
	case *ast.TagNode:
		return c.tagged(n)
	case *ast.DocumentNode:
		return c.convert(n.Body)
	case *ast.CommentGroupNode:
		return value.Null(), nil
	}
	return value.Value{}, fmt.Errorf("%w %s at %s", ErrUnsupportedYAML, node.Type(), position(node))
}

func (c *converter) entry(m *value.Mapping, mv *ast.MappingValueNode) error {
	k, err := c.convert(mv.Key)
	if err != nil {
		return err
	}
	if m.ContainsKey(k) {
		return fmt.Errorf("%w %s at %s", ErrDuplicateKey, k, position(mv))
	}
	v, err := c.convert(mv.Value)
	if err != nil {
		return err
	}
	m.Insert(k, v)
	return nil
}

func integer(n *ast.IntegerNode) (value.Value, error) {
	switch x := n.Value.(type) {
	case int64:
		return value.FromInt(x), nil
	case uint64:
		return value.FromUint(x), nil
	case int:
		return value.FromInt(int64(x)), nil
	case uint:
		return value.FromUint(uint64(x)), nil
	}
	num, err := value.ParseNumber(strings.ReplaceAll(tokenValue(n), "_", ""))
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w at %s", ErrParse, err, position(n))
	}
	return value.FromNumber(num), nil
}

// tagged applies core schema tags and keeps any other tag.
func (c *converter) tagged(n *ast.TagNode) (value.Value, error) {
	tag := ""
	if n.Start != nil {
		tag = n.Start.Value
	}
	inner, err := c.convert(n.Value)
	if err != nil {
		return value.Value{}, err
	}
	if !strings.HasPrefix(tag, "!!") {
		return value.FromTagged(value.NewTag(tag), inner), nil
	}
	bad := func() (value.Value, error) {
		return value.Value{}, fmt.Errorf("%w: %s %s at %s", ErrCoreTag, tag, inner, position(n))
	}
	switch tag {
	case "!!str", "!!binary", "!!timestamp":
		if inner.IsString() {
			return inner, nil
		}
		if !inner.Kind().IsScalar() {
			return bad()
		}
		if n.Value == nil {
			return value.FromString(""), nil
		}
		return value.FromString(tokenValue(n.Value)), nil
	case "!!int", "!!float":
		num, ok := inner.AsNumber()
		if s, isStr := inner.AsString(); isStr {
			var err error
			num, err = value.ParseNumber(s)
			ok = err == nil
		}
		if !ok {
			return bad()
		}
		if tag == "!!float" {
			f, _ := num.AsFloat64()
			return value.FromFloat(f), nil
		}
		if num.IsFloat64() {
			return bad()
		}
		return value.FromNumber(num), nil
	case "!!bool":
		if inner.IsBool() {
			return inner, nil
		}
		s, _ := inner.AsString()
		b, err := strconv.ParseBool(s)
		if err != nil {
			return bad()
		}
		return value.FromBool(b), nil
	case "!!null":
		if inner.IsNull() {
			return inner, nil
		}
		if s, _ := inner.AsString(); s == "" || s == "~" || strings.EqualFold(s, "null") {
			return value.Null(), nil
		}
		return bad()
	case "!!map", "!!omap":
		if !inner.IsMapping() {
			return bad()
		}
		return inner, nil
	case "!!seq", "!!set":
		if !inner.IsSequence() && !inner.IsMapping() {
			return bad()
		}
		return inner, nil
	}
	return value.FromTagged(value.NewTag(tag), inner), nil
}

func tokenValue(n ast.Node) string {
	if tk := n.GetToken(); tk != nil {
		return tk.Value
	}
	return ""
}

func position(n ast.Node) string {
	tk := n.GetToken()
	if tk == nil || tk.Position == nil {
		return "unknown position"
	}
	return fmt.Sprintf("line %d column %d", tk.Position.Line, tk.Position.Column)
}
