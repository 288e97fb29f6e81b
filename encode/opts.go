package encode

import "github.com/signadot/yval/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeSortKeys orders mapping entries by key instead of insertion order.
func EncodeSortKeys(v bool) EncodeOption {
	return func(es *EncState) { es.sortKeys = v }
}

// EncodeIndent sets the number of spaces per nesting level, 2 by default.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) {
		if n > 0 {
			es.indent = n
		}
	}
}
