package logger

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"unicode/utf8"
)

// Logger renders colored prompts followed by an optional payload.
// It is safe for concurrent use; each entry is written with a single
// Write call so entries from different goroutines never interleave.
type Logger struct {
	mu          sync.Mutex
	out         io.Writer
	threshold   Level
	typeHinting bool
	maxLineLen  int
}

// Option adjusts a single log call.
type Option func(*entry)

// Inline forces the payload onto the prompt line (true) or onto the
// following lines (false) instead of measuring it. It has no effect on a
// nil payload, which always ends the prompt line.
func Inline(inline bool) Option {
	return func(e *entry) {
		e.inline = &inline
	}
}

// entry is one log call; it is rendered immediately and never retained.
type entry struct {
	msg     string
	payload payload
	level   Level
	color   *Color
	inline  *bool
}

// New returns a Logger for cfg. An unknown cfg.Level is reported as a
// warning through the new logger and the threshold falls back to DEBUG.
func New(cfg Config) *Logger {
	l := &Logger{
		out:         cfg.writer(),
		threshold:   DebugLevel,
		typeHinting: cfg.TypeHinting,
		maxLineLen:  cfg.MaxLineLen,
	}
	if l.maxLineLen <= 0 {
		l.maxLineLen = defaultMaxLineLen
	}
	if cfg.Level == "" {
		return l
	}
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		l.Warning(fmt.Sprintf("Invalid log level %q, set to default %q!", cfg.Level, defaultLevel), nil)
		return l
	}
	l.threshold = level
	return l
}

// SetLevel sets the minimum severity.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.threshold = level
}

// SetLevelName sets the minimum severity by name. Unknown names return a
// *NameError and leave the threshold unchanged.
func (l *Logger) SetLevelName(name string) error {
	level, err := ParseLevel(name)
	if err != nil {
		return err
	}
	l.SetLevel(level)
	return nil
}

// SetLevels would enable an explicit set of levels. It is not supported
// yet and always returns ErrNotImplemented.
func (l *Logger) SetLevels(levels []Level) error {
	return fmt.Errorf("set %d levels: %w", len(levels), ErrNotImplemented)
}

// Level returns the current minimum severity.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.threshold
}

// SetTypeHinting toggles printing of payload types.
func (l *Logger) SetTypeHinting(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.typeHinting = enabled
}

// TypeHinting reports whether payload types are printed.
func (l *Logger) TypeHinting() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.typeHinting
}

// MaxLineLen returns the inline length threshold.
func (l *Logger) MaxLineLen() int {
	return l.maxLineLen
}

// Debug logs msg and payload at DEBUG.
func (l *Logger) Debug(msg string, payload any, opts ...Option) {
	l.log(newEntry(msg, payload, DebugLevel, nil, opts))
}

// Info logs msg and payload at INFO.
func (l *Logger) Info(msg string, payload any, opts ...Option) {
	l.log(newEntry(msg, payload, InfoLevel, nil, opts))
}

// Warning logs msg and payload at WARNING.
func (l *Logger) Warning(msg string, payload any, opts ...Option) {
	l.log(newEntry(msg, payload, WarningLevel, nil, opts))
}

// Success logs msg and payload at SUCCESS.
func (l *Logger) Success(msg string, payload any, opts ...Option) {
	l.log(newEntry(msg, payload, SuccessLevel, nil, opts))
}

// Error logs msg and payload at ERROR.
func (l *Logger) Error(msg string, payload any, opts ...Option) {
	l.log(newEntry(msg, payload, ErrorLevel, nil, opts))
}

// Log logs at DEBUG using the named color for prompt and message. An empty
// color selects CYAN; an unknown one returns a *NameError and logs nothing.
func (l *Logger) Log(msg string, payload any, color string, opts ...Option) error {
	c := Cyan
	if color != "" {
		parsed, err := ParseColor(color)
		if err != nil {
			return err
		}
		c = parsed
	}
	l.log(newEntry(msg, payload, DebugLevel, &c, opts))
	return nil
}

// Print logs payload without a message under a CYAN DEBUG prompt. The
// payload goes on its own line unless Inline says otherwise.
func (l *Logger) Print(payload any, opts ...Option) {
	c := Cyan
	opts = append([]Option{Inline(false)}, opts...)
	l.log(newEntry("", payload, DebugLevel, &c, opts))
}

func newEntry(msg string, v any, level Level, color *Color, opts []Option) *entry {
	e := &entry{msg: msg, payload: classify(v), level: level, color: color}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (l *Logger) log(e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e.level < l.threshold {
		return
	}

	var buf bytes.Buffer
	l.render(&buf, e)
	_, _ = l.out.Write(buf.Bytes())
}

func (l *Logger) render(buf *bytes.Buffer, e *entry) {
	body := e.payload.body()
	inline := l.isInline(e, body)

	color := e.level.Color()
	if e.color != nil {
		color = *e.color
	}

	msg := e.msg
	if inline {
		msg += ": "
	}
	buf.WriteString(Colorize(e.level.prompt(), color, true, false))
	buf.WriteByte(' ')
	buf.WriteString(Colorize(msg, color, false, false))
	if !inline {
		buf.WriteByte('\n')
	}

	if e.payload.kind == payloadNone {
		return
	}
	buf.WriteString(body.text)
	buf.WriteByte('\n')

	if l.typeHinting {
		buf.WriteString(Colorize(fmt.Sprintf("%T", e.payload.value), Gray, false, true))
		buf.WriteByte('\n')
	}
}

// isInline decides the layout of e from its rendered body. A nil payload
// always ends the prompt line; mappings always go below it.
func (l *Logger) isInline(e *entry, body textResult) bool {
	if e.payload.kind == payloadNone {
		return false
	}
	if e.inline != nil {
		return *e.inline
	}
	if e.payload.kind == payloadMapping || !body.ok {
		return false
	}
	return utf8.RuneCountInString(body.text) < l.maxLineLen
}

// --- Process-wide default logger ---

var (
	stdMu sync.RWMutex
	std   = New(DefaultConfig())
)

// Init replaces the default logger. Call it once at start-up.
func Init(cfg Config) {
	l := New(cfg)
	stdMu.Lock()
	std = l
	stdMu.Unlock()
}

// Default returns the process-wide logger used by the package functions.
func Default() *Logger {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

// Debug logs at DEBUG on the default logger.
func Debug(msg string, payload any, opts ...Option) { Default().Debug(msg, payload, opts...) }

// Info logs at INFO on the default logger.
func Info(msg string, payload any, opts ...Option) { Default().Info(msg, payload, opts...) }

// Warning logs at WARNING on the default logger.
func Warning(msg string, payload any, opts ...Option) { Default().Warning(msg, payload, opts...) }

// Success logs at SUCCESS on the default logger.
func Success(msg string, payload any, opts ...Option) { Default().Success(msg, payload, opts...) }

// Error logs at ERROR on the default logger.
func Error(msg string, payload any, opts ...Option) { Default().Error(msg, payload, opts...) }

// Log logs with a named color on the default logger.
func Log(msg string, payload any, color string, opts ...Option) error {
	return Default().Log(msg, payload, color, opts...)
}

// Print prints payload on the default logger.
func Print(payload any, opts ...Option) { Default().Print(payload, opts...) }

// SetLevel sets the minimum severity of the default logger.
func SetLevel(level Level) { Default().SetLevel(level) }

// SetLevelName sets the minimum severity of the default logger by name.
func SetLevelName(name string) error { return Default().SetLevelName(name) }

// SetTypeHinting toggles type hints on the default logger.
func SetTypeHinting(enabled bool) { Default().SetTypeHinting(enabled) }
