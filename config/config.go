package config

import (
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	EnvLogLevel = "OVERTURE_LOG_LEVEL"
	EnvColors   = "OVERTURE_COLORS"
)

// Config holds the settings of a command line run.
type Config struct {
	Width     uint32 `yaml:"width"`
	Height    uint32 `yaml:"height"`
	MinHeight uint32 `yaml:"min_height"`
	Colors    string `yaml:"colors"`
	LogLevel  string `yaml:"log_level"`
	LogFile   string `yaml:"log_file"`
	AltScreen bool   `yaml:"alt_screen"`
	Pause     bool   `yaml:"pause"`
	Device    string `yaml:"device"`
}

// Output devices.
const (
	DeviceStdout = "stdout"
	DeviceTcell  = "tcell"
)

func Default() Config {
	return Config{
		Width:     130,
		Height:    27,
		MinHeight: 30,
		Colors:    "auto",
		LogLevel:  "warn",
		Device:    DeviceStdout,
	}
}

// Load reads a YAML config over the defaults. A leading ~ in path is
// expanded.
func Load(path string) (Config, error) {
	cfg := Default()
	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config %q", path)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %q", path)
	}
	return cfg, nil
}

// ApplyEnv overrides the log level and colour profile from the
// environment.
func (c *Config) ApplyEnv() {
	if level, ok := os.LookupEnv(EnvLogLevel); ok && level != "" {
		c.LogLevel = level
	}
	if colors, ok := os.LookupEnv(EnvColors); ok && colors != "" {
		c.Colors = colors
	}
}

func (c Config) Validate() error {
	if c.Width == 0 {
		return errors.New("width must be positive")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Colors != "auto" {
		if _, err := ParseProfile(c.Colors); err != nil {
			return err
		}
	}
	switch c.Device {
	case DeviceStdout, DeviceTcell:
	default:
		return errors.Errorf("unknown device %q", c.Device)
	}
	return nil
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	return level, nil
}

// Profile resolves the colour profile; "auto" uses detect.
func (c Config) Profile(detect func() termenv.Profile) (termenv.Profile, error) {
	if c.Colors == "" || c.Colors == "auto" {
		return detect(), nil
	}
	return ParseProfile(c.Colors)
}

var profiles = map[string]termenv.Profile{
	"truecolor": termenv.TrueColor,
	"ansi256":   termenv.ANSI256,
	"ansi":      termenv.ANSI,
	"ascii":     termenv.Ascii,
	"none":      termenv.Ascii,
}

func ParseProfile(name string) (termenv.Profile, error) {
	if profile, ok := profiles[strings.ToLower(name)]; ok {
		return profile, nil
	}
	return termenv.Ascii, errors.Errorf("unknown colors %q", name)
}

func ProfileName(profile termenv.Profile) string {
	switch profile {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	}
	return "ascii"
}
