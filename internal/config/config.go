// Package config holds session settings and their file/env plumbing.
// Precedence is CLI flags > local config file > global config file >
// environment > defaults; the CLI layer does the merging.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Settings is the resolved configuration one session runs with.
type Settings struct {
	// Width is the display width for layout decisions. Zero means
	// detect from the terminal, falling back to 80.
	Width int

	// SurroundingBytes is kept on each side of a match for decoding.
	SurroundingBytes int

	// Matches outside [MinDecodeLength, MaxDecodeLength] skip decode
	// attempts and only get the raw/hex rows.
	MinDecodeLength int
	MaxDecodeLength int

	SuppressDecodes bool
	NoColor         bool
}

// Defaults mirrors the constants the scanner was tuned with.
func Defaults() Settings {
	return Settings{
		Width:            0,
		SurroundingBytes: 64,
		MinDecodeLength:  1,
		MaxDecodeLength:  256,
	}
}

// FileConfig is the on-disk YAML shape. Pointer fields distinguish
// "absent" from zero values when merging.
type FileConfig struct {
	Width            *int  `yaml:"width"`
	SurroundingBytes *int  `yaml:"surrounding_bytes"`
	MinDecodeLength  *int  `yaml:"min_decode_length"`
	MaxDecodeLength  *int  `yaml:"max_decode_length"`
	SuppressDecodes  *bool `yaml:"suppress_decodes"`
	NoColor          *bool `yaml:"no_color"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches dir for a .rulegaze.yml/.yaml or rulegaze.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".rulegaze.yml", ".rulegaze.yaml", "rulegaze.yml", "rulegaze.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the config from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "rulegaze", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// Apply overlays the file config onto s, field by field.
func (fc FileConfig) Apply(s *Settings) {
	if fc.Width != nil {
		s.Width = *fc.Width
	}
	if fc.SurroundingBytes != nil {
		s.SurroundingBytes = *fc.SurroundingBytes
	}
	if fc.MinDecodeLength != nil {
		s.MinDecodeLength = *fc.MinDecodeLength
	}
	if fc.MaxDecodeLength != nil {
		s.MaxDecodeLength = *fc.MaxDecodeLength
	}
	if fc.SuppressDecodes != nil {
		s.SuppressDecodes = *fc.SuppressDecodes
	}
	if fc.NoColor != nil {
		s.NoColor = *fc.NoColor
	}
}

// ApplyEnv overlays RULEGAZE_* environment variables onto s.
func ApplyEnv(s *Settings) {
	if v, ok := envInt("RULEGAZE_WIDTH"); ok {
		s.Width = v
	}
	if v, ok := envInt("RULEGAZE_SURROUNDING_BYTES"); ok {
		s.SurroundingBytes = v
	}
	if v, ok := envInt("RULEGAZE_MIN_DECODE_LENGTH"); ok {
		s.MinDecodeLength = v
	}
	if v, ok := envInt("RULEGAZE_MAX_DECODE_LENGTH"); ok {
		s.MaxDecodeLength = v
	}
	if v, ok := envBool("RULEGAZE_SUPPRESS_DECODES"); ok {
		s.SuppressDecodes = v
	}
	if v, ok := envBool("RULEGAZE_NO_COLOR"); ok {
		s.NoColor = v
	}
}

func envInt(name string) (int, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envBool(name string) (bool, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
