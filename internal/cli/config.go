package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/grouptools/transversal/pkg/errors"
)

// Config holds the optional settings read from the user's config file.
// Every field has a working zero value; a missing file means defaults.
type Config struct {
	// CacheDir overrides the XDG cache directory.
	CacheDir string `toml:"cache_dir"`

	// LogLevel sets the default log level ("debug", "info", "warn",
	// "error"). The --verbose flag still wins.
	LogLevel string `toml:"log_level"`

	// Redis configures the shared result cache used by serve. When
	// Addr is empty the server falls back to the file cache.
	Redis RedisConfig `toml:"redis"`
}

// RedisConfig mirrors cache.RedisConfig in TOML form.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// logLevel maps the configured level name to a log.Level.
func (c Config) logLevel() (log.Level, bool) {
	switch c.LogLevel {
	case "debug":
		return log.DebugLevel, true
	case "info":
		return log.InfoLevel, true
	case "warn":
		return log.WarnLevel, true
	case "error":
		return log.ErrorLevel, true
	}
	return 0, false
}

// configPath returns the config file location using XDG standard
// (~/.config/transversal/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file. A missing file is not an error; a
// malformed one is.
func loadConfig() (Config, error) {
	var cfg Config
	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "config %s", path)
	}
	return cfg, nil
}
