package convert

// ConvertOption controls conversion in both directions.
type ConvertOption func(*convertOpts)

type convertOpts struct {
	tagName      string
	strictFields bool
}

func newConvertOpts(opts ...ConvertOption) *convertOpts {
	res := &convertOpts{tagName: "yaml"}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// TagName sets the struct tag read for field names and flags, "yaml" by
// default.
func TagName(name string) ConvertOption {
	return func(o *convertOpts) { o.tagName = name }
}

// StrictFields makes FromValue fail on mapping keys that match no struct
// field.
func StrictFields(v bool) ConvertOption {
	return func(o *convertOpts) { o.strictFields = v }
}
