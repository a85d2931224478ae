package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func withConfigHome(t *testing.T, contents string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if contents != "" {
		appDir := filepath.Join(dir, appName)
		if err := os.MkdirAll(appDir, 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(appDir, "config.toml"), []byte(contents), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	withConfigHome(t, "")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.CacheDir != "" || cfg.LogLevel != "" || cfg.Redis.Addr != "" {
		t.Errorf("missing file should yield zero config, got %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	withConfigHome(t, `
cache_dir = "/tmp/transversal-cache"
log_level = "debug"

[redis]
addr = "localhost:6379"
db = 2
`)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.CacheDir != "/tmp/transversal-cache" {
		t.Errorf("CacheDir = %q", cfg.CacheDir)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 2 {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if level, ok := cfg.logLevel(); !ok || level != log.DebugLevel {
		t.Errorf("logLevel = %v, %v", level, ok)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	withConfigHome(t, "cache_dir = [broken")

	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig = nil error for malformed TOML")
	}
}

func TestConfigLogLevelUnknown(t *testing.T) {
	cfg := Config{LogLevel: "chatty"}
	if _, ok := cfg.logLevel(); ok {
		t.Error("unknown level name should not map to a level")
	}
}
