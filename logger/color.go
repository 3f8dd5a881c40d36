package logger

import (
	"strconv"
	"strings"
)

// Color is an ANSI SGR foreground code.
type Color int

const (
	// Gray is the bright black code; type hints use it highlighted.
	Gray Color = 90
	// Red is the ERROR prompt color.
	Red Color = 31
	// Green is the SUCCESS prompt color.
	Green Color = 32
	// Yellow is the WARNING prompt color.
	Yellow Color = 33
	// Blue is the INFO prompt color.
	Blue Color = 34
	// Magenta is the DEBUG prompt color.
	Magenta Color = 35
	// Cyan is the default for Log and Print.
	Cyan Color = 36
	// White is plain white.
	White Color = 37
	// Crimson is code 38. Most terminals need extra parameters for it and
	// show the default foreground instead.
	Crimson Color = 38
)

const (
	escape = "\x1b["
	reset  = "\x1b[0m"
)

var colorNames = map[Color]string{
	Gray:    "GRAY",
	Red:     "RED",
	Green:   "GREEN",
	Yellow:  "YELLOW",
	Blue:    "BLUE",
	Magenta: "MAGENTA",
	Cyan:    "CYAN",
	White:   "WHITE",
	Crimson: "CRIMSON",
}

var colors = NewRegistry("color",
	[]Color{Gray, Red, Green, Yellow, Blue, Magenta, Cyan, White, Crimson},
	Color.String,
)

// String returns the upper-case color name, or the numeric code for
// unregistered values.
func (c Color) String() string {
	if n, ok := colorNames[c]; ok {
		return n
	}
	return strconv.Itoa(int(c))
}

// ParseColor resolves a color by case-insensitive name.
func ParseColor(name string) (Color, error) {
	return colors.Lookup(name)
}

// AllColors returns every registered color in declaration order.
func AllColors() []Color {
	return colors.Members()
}

// ColorNames returns the canonical color names in declaration order.
func ColorNames() []string {
	return colors.Names()
}

// Colorize wraps text in an SGR sequence and always resets afterwards:
//
//	\x1b[31;1m text \x1b[0m
//	code ;bold       reset
//
// A highlighted color sends code+10 instead of the base value.
func Colorize(text string, c Color, bold, highlight bool) string {
	code := int(c)
	if highlight {
		code += 10
	}
	var b strings.Builder
	b.Grow(len(text) + 12)
	b.WriteString(escape)
	b.WriteString(strconv.Itoa(code))
	if bold {
		b.WriteString(";1")
	}
	b.WriteByte('m')
	b.WriteString(text)
	b.WriteString(reset)
	return b.String()
}
