package logger

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"gopkg.in/yaml.v3"
)

const (
	defaultLevel      = "DEBUG"
	defaultMaxLineLen = 70
)

// Config defines options for New and Init. Start from DefaultConfig; the
// zero value disables type hinting.
type Config struct {
	// Level is the starting minimum severity name. Unknown names fall back
	// to DEBUG with a warning.
	// Default: "DEBUG"
	Level string `yaml:"level"`
	// TypeHinting prints the Go type of every payload on its own line.
	// Default: true
	TypeHinting bool `yaml:"type_hinting"`
	// MaxLineLen is the payload length below which the payload is printed
	// on the prompt line. Values <= 0 use the default.
	// Default: 70
	MaxLineLen int `yaml:"max_line_len"`
	// NoColor strips ANSI escape sequences from everything written.
	// Default: false
	NoColor bool `yaml:"no_color"`
	// Output receives the rendered entries.
	// Default: os.Stdout
	Output io.Writer `yaml:"-"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Level:       defaultLevel,
		TypeHinting: true,
		MaxLineLen:  defaultMaxLineLen,
		Output:      os.Stdout,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys missing from the
// file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if cfg.MaxLineLen <= 0 {
		return DefaultConfig(), fmt.Errorf("max_line_len must be positive, got %d: %w", cfg.MaxLineLen, ErrInvalidArgument)
	}
	return cfg, nil
}

func (c Config) writer() io.Writer {
	out := c.Output
	if out == nil {
		out = os.Stdout
	}
	if c.NoColor {
		return &plainWriter{w: out}
	}
	return out
}

// plainWriter strips ANSI escape sequences before writing.
type plainWriter struct {
	w io.Writer
}

func (p *plainWriter) Write(data []byte) (int, error) {
	if _, err := io.WriteString(p.w, ansi.Strip(string(data))); err != nil {
		return 0, err
	}
	return len(data), nil
}
