package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if path == "" {
		t.Fatal("expected resolved path")
	}
	if cfg.Tools.FFprobeBinary != "ffprobe" {
		t.Errorf("ffprobe binary = %q", cfg.Tools.FFprobeBinary)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if !cfg.Cache.Enabled || cfg.Cache.MaxEntries != 512 {
		t.Errorf("unexpected cache defaults: %+v", cfg.Cache)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[tools]
ffprobe_binary = "/opt/ffmpeg/bin/ffprobe"

[logging]
level = "DEBUG"

[cache]
enabled = false
dir = "` + filepath.Join(dir, "cache") + `"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.Tools.FFprobeBinary != "/opt/ffmpeg/bin/ffprobe" {
		t.Errorf("ffprobe binary = %q", cfg.Tools.FFprobeBinary)
	}
	if cfg.Tools.FFmpegBinary != "ffmpeg" {
		t.Errorf("ffmpeg binary default lost: %q", cfg.Tools.FFmpegBinary)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level not lower-cased: %q", cfg.Logging.Level)
	}
	if cfg.Cache.Enabled {
		t.Error("cache should be disabled")
	}
	if !filepath.IsAbs(cfg.Cache.Dir) {
		t.Errorf("cache dir not absolute: %q", cfg.Cache.Dir)
	}
}

func TestLoadRejectsBadLogging(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for unsupported format")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "ffprobe_binary") {
		t.Error("sample config missing expected keys")
	}
}
