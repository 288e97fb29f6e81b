package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/yval/encode"
	"github.com/signadot/yval/value"
)

var out io.Writer = os.Stderr

// Logf writes a debug message to stderr. Values among args are rendered as
// YAML; maps and slices from encoding/json style data as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *value.Value:
			args[i] = render(x)
		case value.Value:
			args[i] = render(&x)
		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}

func render(v *value.Value) string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf); err != nil {
		return fmt.Sprintf("[raw value] %s", v)
	}
	return buf.String()
}
