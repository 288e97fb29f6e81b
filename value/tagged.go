package value

import "strings"

// Tag is a YAML tag such as "!Point". The leading '!' is optional: "Point"
// and "!Point" are the same tag.
type Tag string

func NewTag(s string) Tag {
	return Tag(s)
}

// Name returns the tag without its leading '!'.
func (t Tag) Name() string {
	return strings.TrimPrefix(string(t), "!")
}

func (t Tag) String() string {
	return "!" + t.Name()
}

func (t Tag) Equal(o Tag) bool {
	return t.Name() == o.Name()
}

// TaggedValue is a value carrying an explicit tag, for instance the variant
// of an enum-like document node.
type TaggedValue struct {
	Tag   Tag
	Value Value
}
