package query

import (
	"os"

	"github.com/expr-lang/expr"
	"github.com/signadot/yval/convert"
	"github.com/signadot/yval/value"
)

func exprOpts(root *value.Value, env map[string]any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		expr.Function("getpath", func(params ...any) (any, error) {
			v, err := root.Lookup(params[0].(string))
			if err != nil || v == nil {
				return nil, err
			}
			return convert.ToAny(v)
		},
			new(func(string) any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Env returns the variables an expression sees when run against doc.
func Env(doc *value.Value) (map[string]any, error) {
	d, err := convert.ToAny(doc)
	if err != nil {
		return nil, err
	}
	env := map[string]any{}
	if m, ok := d.(map[string]any); ok {
		for k, v := range m {
			env[k] = v
		}
	}
	env["doc"] = d
	return env, nil
}
