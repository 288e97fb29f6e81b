package value

import "fmt"

type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	SequenceKind
	MappingKind
	TaggedKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:     "null",
		BoolKind:     "boolean",
		NumberKind:   "number",
		StringKind:   "string",
		SequenceKind: "sequence",
		MappingKind:  "mapping",
		TaggedKind:   "tagged",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"null":     NullKind,
		"boolean":  BoolKind,
		"number":   NumberKind,
		"string":   StringKind,
		"sequence": SequenceKind,
		"mapping":  MappingKind,
		"tagged":   TaggedKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		NumberKind,
		StringKind,
		SequenceKind,
		MappingKind,
		TaggedKind,
	}
}

// IsScalar reports whether values of kind k have no children.
func (k Kind) IsScalar() bool {
	switch k {
	case SequenceKind, MappingKind, TaggedKind:
		return false
	default:
		return true
	}
}
