package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "colorlog.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "DEBUG" || !cfg.TypeHinting || cfg.MaxLineLen != 70 || cfg.NoColor {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Output != os.Stdout {
		t.Fatalf("default output should be stdout")
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "level: warning\ntype_hinting: false\nmax_line_len: 120\nno_color: true\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Level != "warning" || cfg.TypeHinting || cfg.MaxLineLen != 120 || !cfg.NoColor {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Output == nil {
		t.Fatalf("output should keep its default")
	}

	l := New(cfg)
	if l.Level() != WarningLevel || l.MaxLineLen() != 120 || l.TypeHinting() {
		t.Fatalf("logger does not reflect config: level=%s max=%d hints=%v", l.Level(), l.MaxLineLen(), l.TypeHinting())
	}
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "level: ERROR\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Level != "ERROR" || !cfg.TypeHinting || cfg.MaxLineLen != 70 {
		t.Fatalf("missing keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	cases := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing", filepath.Join(t.TempDir(), "absent.yaml"), "config file not found"},
		{"malformed", writeConfig(t, "level: [unterminated\n"), "failed to parse config YAML"},
		{"bad length", writeConfig(t, "max_line_len: 0\n"), "max_line_len must be positive"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(tc.path)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("LoadConfig() error = %v, want %q", err, tc.wantErr)
			}
		})
	}
}
