package encode

import (
	"strings"

	"github.com/pson-format/go-pson/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	FieldColor
	SepColor
	QuotedColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// palette holds the default colors. Separators of every type not listed
// use sepRGB.
var palette = map[Colorable][3]int{
	{Type: ir.IntegerType, Attr: ValueColor}: {128, 216, 236},
	{Type: ir.FloatType, Attr: ValueColor}:   {96, 176, 236},
	{Type: ir.NullType, Attr: ValueColor}:    {168, 0, 196},
	{Type: ir.MapType, Attr: FieldColor}:     {128, 168, 196},
	{Type: ir.MapType, Attr: SepColor}:       {196, 128, 128},
	{Type: ir.StringType, Attr: ValueColor}:  {8, 196, 16},
	{Type: ir.StringType, Attr: QuotedColor}: {88, 158, 86},
}

var sepRGB = [3]int{255, 0, 196}

// NewColors returns the default colors.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		colors.set(Colorable{Type: t, Attr: SepColor}, color.RGB(sepRGB[0], sepRGB[1], sepRGB[2]).SprintfFunc())
	}
	for able, rgb := range palette {
		colors.set(able, color.RGB(rgb[0], rgb[1], rgb[2]).SprintfFunc())
	}
	colors.set(Colorable{Type: ir.BoolType, Attr: ValueColor}, color.CyanString)
	return colors
}

// set installs f for able. Encoded text is passed as the format, so %
// is escaped.
func (c *Colors) set(able Colorable, f func(string, ...any) string) {
	c.Map[able] = func(v string, _ ...any) string {
		return f(strings.ReplaceAll(v, "%", "%%"))
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
