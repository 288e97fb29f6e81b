package query

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/signadot/yval/convert"
	"github.com/signadot/yval/debug"
	"github.com/signadot/yval/value"
)

var ErrQuery = errors.New("query error")

// Eval compiles src and runs it against doc, converting the result back to
// a value. doc is not modified.
func Eval(src string, doc value.Value) (value.Value, error) {
	env, err := Env(&doc)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	x, err := run(src, &doc, env)
	if err != nil {
		return value.Value{}, err
	}
	res, err := convert.ToValue(x)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: result of %q: %w", ErrQuery, src, err)
	}
	return res, nil
}

func run(src string, root *value.Value, env map[string]any) (any, error) {
	prg, err := expr.Compile(src, exprOpts(root, env)...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrQuery, src, err)
	}
	x, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: evaluating %q: %w", ErrQuery, src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %v\n", src, x)
	}
	return x, nil
}
