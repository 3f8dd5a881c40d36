package logger

import "strconv"

// Level defines log severity. Levels are totally ordered; a logger emits
// every entry whose level is at or above its threshold.
type Level int

const (
	// DebugLevel is the most permissive threshold.
	DebugLevel Level = iota
	// InfoLevel is for informational messages.
	InfoLevel
	// WarningLevel is for recoverable problems.
	WarningLevel
	// SuccessLevel marks completed work.
	SuccessLevel
	// ErrorLevel is for failures.
	ErrorLevel
)

type levelInfo struct {
	name  string
	color Color
	glyph string
}

var levelTable = map[Level]levelInfo{
	DebugLevel:   {name: "DEBUG", color: Magenta},
	InfoLevel:    {name: "INFO", color: Blue},
	WarningLevel: {name: "WARNING", color: Yellow, glyph: "⚠"},
	SuccessLevel: {name: "SUCCESS", color: Green, glyph: "✔"},
	ErrorLevel:   {name: "ERROR", color: Red, glyph: "✖"},
}

var levels = NewRegistry("level",
	[]Level{DebugLevel, InfoLevel, WarningLevel, SuccessLevel, ErrorLevel},
	Level.String,
)

// AllLevels returns all supported levels in ascending order.
func AllLevels() []Level {
	return levels.Members()
}

// LevelNames returns the canonical level names in ascending order.
func LevelNames() []string {
	return levels.Names()
}

// IsLevel reports whether name is a known level, ignoring case.
func IsLevel(name string) bool {
	return levels.Valid(name)
}

// ParseLevel resolves a level by case-insensitive name.
func ParseLevel(name string) (Level, error) {
	return levels.Lookup(name)
}

// String returns the upper-case level name.
func (l Level) String() string {
	if info, ok := levelTable[l]; ok {
		return info.name
	}
	return "LEVEL(" + strconv.Itoa(int(l)) + ")"
}

// Color returns the default prompt color of the level.
func (l Level) Color() Color {
	if info, ok := levelTable[l]; ok {
		return info.color
	}
	return White
}

// Glyph returns the prompt symbol of the level; DEBUG and INFO have none.
func (l Level) Glyph() string {
	return levelTable[l].glyph
}

// prompt renders "glyph [NAME]" without color.
func (l Level) prompt() string {
	return l.Glyph() + " [" + l.String() + "]"
}
