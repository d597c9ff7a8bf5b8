package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/philipp01105/nlogcolor/console"
	"github.com/philipp01105/nlogcolor/core"
	"github.com/philipp01105/nlogcolor/formatter"
	"github.com/philipp01105/nlogcolor/handler/consolehandler"
)

var (
	// ErrUnknownTarget is returned for a target other than stdout or stderr.
	ErrUnknownTarget = errors.New("unknown target")
	// ErrUnknownFormat is returned for a format other than pattern, text or json.
	ErrUnknownFormat = errors.New("unknown format")
)

// Output targets.
const (
	TargetStdout = "stdout"
	TargetStderr = "stderr"
)

// Record formats.
const (
	FormatPattern = "pattern"
	FormatText    = "text"
	FormatJSON    = "json"
)

// Config describes one color console handler and the level of the logger
// in front of it.
type Config struct {
	Target    string
	ColorMode console.ColorMode
	Format    string
	Pattern   string
	Level     core.Level
	Caller    bool
	Colors    map[core.Level]console.Attribute
}

// fileConfig is the on-disk TOML layout.
type fileConfig struct {
	Target    string            `toml:"target"`
	ColorMode string            `toml:"color_mode"`
	Format    string            `toml:"format"`
	Pattern   string            `toml:"pattern"`
	Level     string            `toml:"level"`
	Caller    bool              `toml:"caller"`
	Colors    map[string]string `toml:"colors"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Target:    TargetStdout,
		ColorMode: console.Automatic,
		Format:    FormatPattern,
		Pattern:   formatter.DefaultPattern,
		Level:     core.InfoLevel,
	}
}

// Load reads the TOML file at path. A missing file yields Default().
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	resolved, err := expandPath(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML data on top of Default() and validates the result.
func Parse(data []byte) (Config, error) {
	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if v := strings.TrimSpace(raw.Target); v != "" {
		cfg.Target = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.Format); v != "" {
		cfg.Format = strings.ToLower(v)
	}
	if raw.Pattern != "" {
		cfg.Pattern = raw.Pattern
	}
	cfg.Caller = raw.Caller

	mode, err := console.ParseColorMode(raw.ColorMode)
	if err != nil {
		return Config{}, fmt.Errorf("color_mode: %w", err)
	}
	cfg.ColorMode = mode

	if strings.TrimSpace(raw.Level) != "" {
		level, err := core.ParseLevel(raw.Level)
		if err != nil {
			return Config{}, fmt.Errorf("level: %w", err)
		}
		cfg.Level = level
	}

	if len(raw.Colors) > 0 {
		cfg.Colors = make(map[core.Level]console.Attribute, len(raw.Colors))
		for name, desc := range raw.Colors {
			level, err := core.ParseLevel(name)
			if err != nil {
				return Config{}, fmt.Errorf("colors: %w", err)
			}
			attr, err := console.ParseAttribute(desc)
			if err != nil {
				return Config{}, fmt.Errorf("colors.%s: %w", name, err)
			}
			cfg.Colors[level] = attr
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the target and format names.
func (c Config) Validate() error {
	switch c.Target {
	case TargetStdout, TargetStderr:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTarget, c.Target)
	}
	switch c.Format {
	case FormatPattern, FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	return nil
}

// Device returns the console device for the configured target.
func (c Config) Device() (console.Device, error) {
	switch c.Target {
	case TargetStdout:
		return console.Stdout(), nil
	case TargetStderr:
		return console.Stderr(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, c.Target)
	}
}

// Formatter builds the configured formatter.
func (c Config) Formatter() (formatter.Formatter, error) {
	switch c.Format {
	case FormatPattern:
		return formatter.NewPatternFormatter(c.Pattern), nil
	case FormatText:
		return formatter.NewTextFormatter(formatter.Config{IncludeCaller: c.Caller}), nil
	case FormatJSON:
		return formatter.NewJSONFormatter(formatter.Config{IncludeCaller: c.Caller}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
}

// NewHandler creates a color console handler for the configured target.
// lock may be nil; handlers sharing a device should share one lock.
func (c Config) NewHandler(lock sync.Locker) (*consolehandler.ColorConsoleHandler, error) {
	dev, err := c.Device()
	if err != nil {
		return nil, err
	}
	return c.NewHandlerFor(dev, lock)
}

// NewHandlerFor creates a color console handler writing to dev.
func (c Config) NewHandlerFor(dev console.Device, lock sync.Locker) (*consolehandler.ColorConsoleHandler, error) {
	f, err := c.Formatter()
	if err != nil {
		return nil, err
	}
	return consolehandler.NewColorConsoleHandler(consolehandler.ColorConfig{
		Device:    dev,
		Mode:      c.ColorMode,
		Formatter: f,
		Lock:      lock,
		Colors:    c.Colors,
	}), nil
}

// Apply reconfigures a running handler: formatter, color mode and colors
// change together under the handler's lock. Target and level are fixed at
// construction and are not applied.
func (c Config) Apply(h *consolehandler.ColorConsoleHandler) error {
	f, err := c.Formatter()
	if err != nil {
		return err
	}
	h.Reconfigure(f, c.ColorMode, c.Colors)
	return nil
}

// Marshal encodes c in the on-disk TOML layout.
func (c Config) Marshal() ([]byte, error) {
	raw := fileConfig{
		Target:    c.Target,
		ColorMode: c.ColorMode.String(),
		Format:    c.Format,
		Pattern:   c.Pattern,
		Level:     strings.ToLower(c.Level.String()),
		Caller:    c.Caller,
	}
	if len(c.Colors) > 0 {
		raw.Colors = make(map[string]string, len(c.Colors))
		for level, attr := range c.Colors {
			raw.Colors[strings.ToLower(level.String())] = attr.String()
		}
	}
	data, err := toml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
