package readkey

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	defaultQuitKey = "q"
	defaultLevel   = "info"
)

// Config drives the readkey command. Both yaml and toml files are accepted;
// the extension picks the decoder.
type Config struct {
	// Descriptor keys are read from.
	Fd int `yaml:"fd" toml:"fd"`

	// Key that ends the read loop. Must be a single byte.
	QuitKey string `yaml:"quitKey" toml:"quit_key"`

	// Use the full raw mode (signals, input translation and output
	// processing off) instead of clearing only echo and canonical input.
	FullRaw bool `yaml:"fullRaw" toml:"full_raw"`

	// Stop after this many keys. 0 means no limit.
	Count int `yaml:"count" toml:"count"`

	LogLevel string `yaml:"logLevel" toml:"log_level"`

	path string
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		QuitKey:  defaultQuitKey,
		LogLevel: defaultLevel,
	}
}

// SearchPaths lists the files Load tries, in order, when no path is given.
func SearchPaths() []string {
	paths := []string{"readkey.yaml", "readkey.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		dir = filepath.Join(dir, "readkey")
		paths = append(paths,
			filepath.Join(dir, "config.yaml"),
			filepath.Join(dir, "config.toml"),
		)
	}
	return paths
}

// Load reads the config at path. An empty path searches SearchPaths and
// falls back to Default when none exists.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
	} else {
		for _, p := range SearchPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path == "" {
		err := cfg.Validate()
		return cfg, err
	}

	if err := cfg.decode(path); err != nil {
		return cfg, err
	}
	cfg.path = path

	err := cfg.Validate()
	return cfg, err
}

func (c *Config) decode(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: failed to open file: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(f).Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("config: failed to decode file: %w", err)
		}
	case ".toml":
		if _, err := toml.NewDecoder(f).Decode(c); err != nil {
			return fmt.Errorf("config: failed to decode file: %w", err)
		}
	default:
		return fmt.Errorf("config: %w: %q", ErrConfigFormat, ext)
	}
	return nil
}

// Path returns the file the config was loaded from, if any.
func (c Config) Path() string {
	return c.path
}

// Validate checks field ranges and fills empty fields with defaults.
func (c *Config) Validate() error {
	if c.QuitKey == "" {
		c.QuitKey = defaultQuitKey
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLevel
	}

	var errs []error
	if c.Fd < 0 {
		errs = append(errs, fmt.Errorf("%w: fd %d", ErrConfigInvalid, c.Fd))
	}
	if len(c.QuitKey) != 1 {
		errs = append(errs, fmt.Errorf("%w: quit key %q is not a single byte", ErrConfigInvalid, c.QuitKey))
	}
	if c.Count < 0 {
		errs = append(errs, fmt.Errorf("%w: count %d", ErrConfigInvalid, c.Count))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Quit returns the quit key as a byte.
func (c Config) Quit() byte {
	if c.QuitKey == "" {
		return defaultQuitKey[0]
	}
	return c.QuitKey[0]
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrConfigInvalid, c.LogLevel)
	}
	return level, nil
}
