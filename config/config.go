// Package config holds the interpreter settings that do not come from the
// program itself.
package config

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Colour modes.
const (
	COLOR_AUTO   = "auto"   // Colour when the output is a terminal.
	COLOR_ALWAYS = "always" // Always colour.
	COLOR_NEVER  = "never"  // Never colour.
)

// ENV_CONFIG names the configuration file when no flag does.
const ENV_CONFIG = "TWOQ_CONFIG"

// Config is the interpreter configuration.
type Config struct {
	Verbose bool              `yaml:"verbose"` // Log each instruction.
	Color   string            `yaml:"color"`   // Colour mode of the console.
	Fps     int               `yaml:"fps"`     // Initial frame rate cap, 0 for the display default.
	Frames  string            `yaml:"frames"`  // Directory for rendered frames.
	Seed    uint64            `yaml:"seed"`    // Seed for 'rand', 0 for a random seed.
	Define  map[string]string `yaml:"define"`  // Predefined alias expressions.
	Trace   string            `yaml:"trace"`   // Extra options line letters.
}

// Default returns the built-in configuration.
func Default() (cfg *Config) {
	cfg = &Config{
		Color:  COLOR_AUTO,
		Define: map[string]string{},
	}
	return
}

// Path returns the configuration file to load: the flag value when set,
// otherwise the environment.
func Path(flag string) string {
	if len(flag) != 0 {
		return flag
	}
	return os.Getenv(ENV_CONFIG)
}

// Load reads a YAML configuration file over the defaults. An empty path
// loads only the defaults.
func Load(path string) (cfg *Config, err error) {
	cfg = Default()
	if len(path) == 0 {
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		err = &ErrLoad{Path: path, Err: err}
		return
	}
	defer inf.Close()

	err = cfg.Decode(inf)
	if err != nil {
		err = &ErrLoad{Path: path, Err: err}
		return
	}

	return
}

// Decode YAML over the current settings, and validate the result.
func (cfg *Config) Decode(input io.Reader) (err error) {
	decoder := yaml.NewDecoder(input)
	decoder.KnownFields(true)

	err = decoder.Decode(cfg)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		return
	}

	if cfg.Define == nil {
		cfg.Define = map[string]string{}
	}

	err = cfg.Validate()
	return
}

// Validate checks the settings.
func (cfg *Config) Validate() (err error) {
	switch cfg.Color {
	case COLOR_AUTO, COLOR_ALWAYS, COLOR_NEVER:
	default:
		err = ErrColorInvalid(cfg.Color)
		return
	}

	if cfg.Fps < 0 {
		err = ErrFrameRate
		return
	}

	return
}

// UseColor decides whether output to the file descriptor is coloured.
func (cfg *Config) UseColor(fd uintptr) bool {
	switch cfg.Color {
	case COLOR_ALWAYS:
		return true
	case COLOR_NEVER:
		return false
	}
	return term.IsTerminal(int(fd))
}
