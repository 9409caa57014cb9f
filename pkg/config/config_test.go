package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", home)
	t.Setenv("CAL_CONFIG_PATH", "")
	for _, k := range []string{"CAL_PATH", "CAL_BACKEND", "CAL_MONTH_LIMIT", "CAL_WEEK_LIMIT", "CAL_DAY_LIMIT", "CAL_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Path != DefaultPath || cfg.Backend != DefaultBackend || cfg.LogLevel != DefaultLogLevel {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if l := cfg.Limits(); l.Month != 2 || l.Week != 3 || l.Day != 0 {
		t.Fatalf("unexpected limits: %+v", l)
	}
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	body := "path: /tmp/cal-test.db\nbackend: SQLite\nmonth_limit: 4\n"
	if err := os.WriteFile(filepath.Join(dir, ".cal.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CAL_CONFIG_PATH", dir)
	t.Setenv("CAL_WEEK_LIMIT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BasePath() != "/tmp/cal-test.db" {
		t.Fatalf("path = %q", cfg.BasePath())
	}
	if cfg.BackendName() != "sqlite" {
		t.Fatalf("backend = %q", cfg.BackendName())
	}
	if cfg.MonthLimit != 4 || cfg.WeekLimit != 5 {
		t.Fatalf("limits = %+v", cfg.Limits())
	}
}

func TestBasePathExpandsHome(t *testing.T) {
	home := isolate(t)
	cfg := Default()
	if got, want := cfg.BasePath(), filepath.Join(home, ".cal.db"); got != want {
		t.Fatalf("BasePath = %q, want %q", got, want)
	}
}

func TestNormalize(t *testing.T) {
	cfg := &Config{MonthLimit: -1, LogLevel: "chatty"}
	cfg.Normalize()
	if cfg.Path != DefaultPath || cfg.Backend != DefaultBackend {
		t.Fatalf("missing defaults: %+v", cfg)
	}
	if cfg.MonthLimit != 0 {
		t.Fatalf("negative limit should become unlimited, got %d", cfg.MonthLimit)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Fatalf("bad log level kept: %q", cfg.LogLevel)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "info")
	log.Debug("hidden")
	log.Info("shown", "key", "value")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line logged at info level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Fatalf("unexpected output: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("color used for a non-terminal writer")
	}

	if lvl, err := ParseLevel("ERROR"); err != nil || lvl != slog.LevelError {
		t.Fatalf("ParseLevel(ERROR) = %v, %v", lvl, err)
	}
}
