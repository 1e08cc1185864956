package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CLIPSCRUB_KEEP_FORMAT_MARKS",
		"CLIPSCRUB_KEEP_NBSP",
		"CLIPSCRUB_NO_SOUND",
		"CLIPSCRUB_NO_TOAST",
		"CLIPSCRUB_NO_HISTORY",
		"CLIPSCRUB_HISTORY_PATH",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadFromPath_Success(t *testing.T) {
	clearEnv(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	configContent := `policy:
  keep_format_marks: true
  keep_no_break_space: true
notify:
  suppress_sound: true
history:
  disabled: true
  path: /tmp/other.db
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	cfg, err := loadFromPath(configPath)
	if err != nil {
		t.Fatalf("loadFromPath() returned error: %v", err)
	}

	if !cfg.Policy.KeepFormatMarks {
		t.Error("Expected keep_format_marks to be true")
	}
	if !cfg.Policy.KeepNoBreakSpace {
		t.Error("Expected keep_no_break_space to be true")
	}
	if !cfg.Notify.SuppressSound {
		t.Error("Expected suppress_sound to be true")
	}
	if cfg.Notify.SuppressToast {
		t.Error("Expected suppress_toast to default to false")
	}
	if !cfg.History.Disabled {
		t.Error("Expected history disabled to be true")
	}
	if cfg.History.Path != "/tmp/other.db" {
		t.Errorf("History path = %q, want /tmp/other.db", cfg.History.Path)
	}
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := loadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("loadFromPath() returned error for missing file: %v", err)
	}

	if cfg.Policy.KeepFormatMarks || cfg.Policy.KeepNoBreakSpace {
		t.Error("Expected aggressive cleaning defaults with no config file")
	}
	if cfg.Notify.SuppressSound || cfg.Notify.SuppressToast {
		t.Error("Expected notifications enabled by default")
	}
	if cfg.History.Disabled {
		t.Error("Expected history enabled by default")
	}
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("policy: [not a map"), 0644); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	if _, err := loadFromPath(configPath); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadFromPath_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLIPSCRUB_KEEP_NBSP", "true")
	t.Setenv("CLIPSCRUB_NO_TOAST", "1")
	t.Setenv("CLIPSCRUB_HISTORY_PATH", "/tmp/env.db")

	cfg, err := loadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("loadFromPath() returned error: %v", err)
	}

	if !cfg.Policy.KeepNoBreakSpace {
		t.Error("Expected CLIPSCRUB_KEEP_NBSP to apply")
	}
	if !cfg.Notify.SuppressToast {
		t.Error("Expected CLIPSCRUB_NO_TOAST to apply")
	}
	if cfg.History.Path != "/tmp/env.db" {
		t.Errorf("History path = %q, want /tmp/env.db", cfg.History.Path)
	}
}

func TestLoadFromPath_EnvBadBoolIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLIPSCRUB_KEEP_NBSP", "banana")

	cfg, err := loadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("loadFromPath() returned error: %v", err)
	}

	if cfg.Policy.KeepNoBreakSpace {
		t.Error("Unparseable boolean env value should be ignored")
	}
}
