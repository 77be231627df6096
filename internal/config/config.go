// ABOUTME: Trimmer configuration loading and validation
// ABOUTME: Uses kkyr/fig for file/env values and spf13/pflag for flags
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kkyr/fig"
	"github.com/spf13/pflag"
)

const (
	EnvPrefix = "TRIMMER"
	FileName  = "trimmer.yaml"
)

var (
	ErrNoSource     = errors.New("no source file given")
	ErrInvalidValue = errors.New("invalid configuration value")
)

// Config holds every runtime setting
type Config struct {
	Source       string  `fig:"source"`
	Width        int     `fig:"width" default:"78"`
	DeviceRate   int     `fig:"device_rate" default:"44100"`
	Volume       float64 `fig:"volume" default:"1"`
	LogFile      string  `fig:"log_file" default:"trimmer.log"`
	NoTUI        bool    `fig:"no_tui"`
	NoAudio      bool    `fig:"no_audio"`
	ExportFormat string  `fig:"export_format" default:"wav"`

	ShowVersion bool `fig:"show_version"`
}

// AddFlags binds c's fields to fs
func (c *Config) AddFlags(fs *pflag.FlagSet) *Config {
	fs.IntVarP(&c.Width, "width", "w", 78, "Progress bar width in cells")
	fs.IntVarP(&c.DeviceRate, "device-rate", "r", 44100, "Output device sample rate in Hz")
	fs.Float64VarP(&c.Volume, "volume", "", 1, "Playback volume between 0 and 1")
	fs.StringVarP(&c.LogFile, "log-file", "", "trimmer.log", "Log file path")
	fs.BoolVarP(&c.NoTUI, "no-tui", "", false, "Use the line prompt instead of the TUI")
	fs.BoolVarP(&c.NoAudio, "no-audio", "", false, "Play through a silent clock-driven device")
	fs.StringVarP(&c.ExportFormat, "export-format", "f", "wav", "Extension appended to save names without one")
	fs.BoolVarP(&c.ShowVersion, "version", "v", false, "Print version and exit")
	return c
}

// Parse builds a Config from args (without the program name). The first
// positional argument is the source path.
func Parse(args []string) (*Config, error) {
	var flags Config

	fs := pflag.NewFlagSet("trimmer", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: trimmer [flags] <source>\n")
		fs.PrintDefaults()
	}
	path := fs.StringP("config", "c", "", "Config file (default ./"+FileName+" or $HOME/.config/trimmer/"+FileName+")")
	flags.AddFlags(fs)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := Load(cfg, *path); err != nil {
		return nil, err
	}
	cfg.override(fs, &flags)
	if fs.NArg() > 0 {
		cfg.Source = fs.Arg(0)
	}

	if cfg.ShowVersion {
		return cfg, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load fills cfg from a config file and the environment. With an empty path
// the default locations are searched and a missing file is not an error.
func Load(cfg *Config, path string) error {
	if path != "" {
		if err := fig.Load(cfg, fig.File(filepath.Base(path)), fig.Dirs(filepath.Dir(path)), fig.UseEnv(EnvPrefix)); err != nil {
			return fmt.Errorf("failed to load config %s: %w", path, err)
		}
		return nil
	}

	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "trimmer"))
	}

	err := fig.Load(cfg, fig.File(FileName), fig.Dirs(dirs...), fig.UseEnv(EnvPrefix))
	if errors.Is(err, fig.ErrFileNotFound) {
		err = fig.Load(cfg, fig.IgnoreFile(), fig.UseEnv(EnvPrefix))
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// override copies flag values that were set on the command line
func (c *Config) override(fs *pflag.FlagSet, flags *Config) {
	if fs.Changed("width") {
		c.Width = flags.Width
	}
	if fs.Changed("device-rate") {
		c.DeviceRate = flags.DeviceRate
	}
	if fs.Changed("volume") {
		c.Volume = flags.Volume
	}
	if fs.Changed("log-file") {
		c.LogFile = flags.LogFile
	}
	if fs.Changed("no-tui") {
		c.NoTUI = flags.NoTUI
	}
	if fs.Changed("no-audio") {
		c.NoAudio = flags.NoAudio
	}
	if fs.Changed("export-format") {
		c.ExportFormat = flags.ExportFormat
	}
	if fs.Changed("version") {
		c.ShowVersion = flags.ShowVersion
	}
}

// Validate checks that every value is usable
func (c *Config) Validate() error {
	if c.Source == "" {
		return ErrNoSource
	}
	if c.Width < 1 {
		return fmt.Errorf("%w: width %d must be at least 1", ErrInvalidValue, c.Width)
	}
	if c.DeviceRate <= 0 {
		return fmt.Errorf("%w: device rate %d must be positive", ErrInvalidValue, c.DeviceRate)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume %g must be between 0 and 1", ErrInvalidValue, c.Volume)
	}
	if c.ExportFormat == "" {
		return fmt.Errorf("%w: export format is empty", ErrInvalidValue)
	}
	if c.LogFile == "" {
		return fmt.Errorf("%w: log file is empty", ErrInvalidValue)
	}
	return nil
}
