package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/agiangrant/winblur"
)

// DefaultConfigFile is written by 'blurctl init-config'.
const DefaultConfigFile = "blurctl.toml"

// configCandidates are searched in order when no --config is given.
var configCandidates = []string{"blurctl.toml", "blurctl.yaml", "blurctl.yml"}

// Environment overrides, applied after the file is read.
const (
	envLibraryPath = "WINBLUR_LIB_PATH"
	envLogLevel    = "WINBLUR_LOG_LEVEL"
)

// Config represents the blurctl configuration file
type Config struct {
	Library LibraryConfig `toml:"library" yaml:"library"`
	Effect  EffectConfig  `toml:"effect" yaml:"effect"`
	Log     LogConfig     `toml:"log" yaml:"log"`
}

type LibraryConfig struct {
	// Path to blur_lib.dll; empty searches next to the executable
	Path string `toml:"path" yaml:"path"`
	// blur_lib's own verbosity: error, warn, info or debug
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

type EffectConfig struct {
	// Disabled makes 'blurctl watch' clear the blur instead of applying it
	Disabled  bool    `toml:"disabled" yaml:"disabled"`
	Intensity float32 `toml:"intensity" yaml:"intensity"`
	// ARGB tint as hex, e.g. "0x80000000" or "#80000000"
	Color       string `toml:"color" yaml:"color"`
	Animate     bool   `toml:"animate" yaml:"animate"`
	AnimationMs uint32 `toml:"animation_ms" yaml:"animation_ms"`
}

type LogConfig struct {
	Level       string `toml:"level" yaml:"level"`
	Development bool   `toml:"development" yaml:"development"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		Library: LibraryConfig{
			LogLevel: "warn",
		},
		Effect: EffectConfig{
			Intensity: 1.0,
			Color:     "0x80000000",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from path. An empty path looks for
// blurctl.toml or blurctl.yaml in the current directory and falls back to
// defaults when neither exists.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if path == "" {
		for _, candidate := range configCandidates {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return config, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := unmarshalConfig(path, data, &config); err != nil {
			return config, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if v := os.Getenv(envLibraryPath); v != "" {
		config.Library.Path = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		config.Log.Level = v
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func unmarshalConfig(path string, data []byte, config *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, config)
	case ".toml", "":
		return toml.Unmarshal(data, config)
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
}

// Validate checks values the native library would otherwise reject.
func (c Config) Validate() error {
	if c.Effect.Intensity < 0 || c.Effect.Intensity > 1 {
		return fmt.Errorf("effect.intensity must be between 0.0 and 1.0, got %v", c.Effect.Intensity)
	}
	if _, err := ParseColor(c.Effect.Color); err != nil {
		return fmt.Errorf("effect.color: %w", err)
	}
	if c.Library.LogLevel != "" {
		if _, err := winblur.ParseLogLevel(c.Library.LogLevel); err != nil {
			return fmt.Errorf("library.log_level: %w", err)
		}
	}
	return nil
}

// Params builds the effect parameters described by the config.
func (e EffectConfig) Params() (winblur.EffectParams, error) {
	color, err := ParseColor(e.Color)
	if err != nil {
		return winblur.EffectParams{}, err
	}
	p := winblur.NewEffectParams(e.Intensity, color)
	p.Animate = e.Animate
	p.AnimationMs = e.AnimationMs
	return p, nil
}

// ParseColor parses an ARGB color written as hex with an optional "0x" or
// "#" prefix. An empty string is the default tint.
func ParseColor(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return winblur.DefaultEffectParams().ColorARGB, nil
	}
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid ARGB color %q", s)
	}
	return uint32(v), nil
}

// SaveConfig writes config as TOML
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
