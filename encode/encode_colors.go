package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/yval/value"
)

type Colorable struct {
	Kind value.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	TagColor ColorAttr = iota
	FieldColor
	ValueColor
	SepColor
	MergeColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range value.Kinds() {
		able := Colorable{Kind: k, Attr: TagColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = value.NumberKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Attr = ValueColor

	able.Kind = value.NullKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = value.BoolKind
	colors.Map[able] = color.CyanString

	able.Kind = value.MappingKind
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = MergeColor
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Kind = value.StringKind
	able.Attr = ValueColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k value.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k value.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
