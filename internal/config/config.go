package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/gravitrone/objedit/internal/mapfile"
)

// Config holds CLI configuration stored at ~/.objedit/config.
type Config struct {
	Theme    string `yaml:"theme"`
	VimKeys  bool   `yaml:"vim_keys"`
	Format   string `yaml:"format"`
	Indent   int    `yaml:"indent"`
	NewValue string `yaml:"new_value,omitempty"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file,omitempty"`
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".objedit", "config")
}

// DefaultLogFile is where logs go unless the config says otherwise.
func DefaultLogFile() string {
	return filepath.Join(filepath.Dir(Path()), "objedit.log")
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme:    "dark",
		VimKeys:  true,
		Format:   string(mapfile.FormatJSON),
		Indent:   2,
		LogLevel: "info",
	}
}

// Load reads and parses the config file. A missing file returns an error
// wrapping os.ErrNotExist; a file others can write is refused.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm&0022 != 0 {
		return nil, fmt.Errorf("config permissions too open: %04o (others must not write)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk with owner-only permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs error
	if _, err := mapfile.ParseFormat(c.Format); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("format: %w", err))
	}
	if c.Indent < 0 || c.Indent > 8 {
		errs = multierr.Append(errs, fmt.Errorf("indent: %d out of range 0-8", c.Indent))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("log_level: %w", err))
	}
	switch c.Theme {
	case "dark", "light":
	default:
		errs = multierr.Append(errs, fmt.Errorf("theme: %q (want dark or light)", c.Theme))
	}
	return errs
}

// FileFormat returns the configured default file format.
func (c *Config) FileFormat() mapfile.Format {
	f, err := mapfile.ParseFormat(c.Format)
	if err != nil {
		return mapfile.FormatJSON
	}
	return f
}

// NewEntryValue returns the value added rows start with. The second result
// is false when no default is configured and new rows start unset.
func (c *Config) NewEntryValue() (any, bool) {
	if c.NewValue == "" {
		return nil, false
	}
	return mapfile.ParseValue(c.NewValue), true
}

// LogPath returns the log file path, falling back to DefaultLogFile.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return DefaultLogFile()
}
