package encode

import "github.com/fatih/color"

// ColorAttr names the colorable parts of a grid view.
type ColorAttr int

const (
	HeaderColor ColorAttr = iota
	TrueColor
	FalseColor
	MissingColor
	CoverColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			HeaderColor:  color.RGB(128, 168, 196).SprintfFunc(),
			TrueColor:    color.GreenString,
			FalseColor:   color.RGB(196, 96, 16).SprintfFunc(),
			MissingColor: color.RGB(128, 128, 128).SprintfFunc(),
			CoverColor:   color.CyanString,
		},
	}
}

func (c *Colors) sprintf(attr ColorAttr) func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	if f, ok := c.Map[attr]; ok {
		return f
	}
	return c.Default
}

func colorDefault(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return color.WhiteString(format, args...)
}
