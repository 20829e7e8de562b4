// Package config provides configuration loading for the life command.
package config

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"lifeterm/internal/sims/life"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Renderer names.
const (
	RendererTerminal = "terminal"
	RendererPlain    = "plain"
	RendererWindow   = "window"
)

// Config holds every setting of a run.
type Config struct {
	Seed       string        `yaml:"seed"`
	Interval   time.Duration `yaml:"interval"`
	Iterations int           `yaml:"iterations"`
	Survive    life.Range    `yaml:"survive"`
	Birth      life.Range    `yaml:"birth"`
	Preset     string        `yaml:"preset"`
	Renderer   string        `yaml:"renderer"`
	RNGSeed    int64         `yaml:"rng_seed"`

	Display DisplayConfig `yaml:"display"`
	Speed   SpeedConfig   `yaml:"speed"`
	Log     LogConfig     `yaml:"log"`

	// Command-line only.
	File        string `yaml:"-"`
	DumpConfig  bool   `yaml:"-"`
	ListPresets bool   `yaml:"-"`
}

// DisplayConfig holds renderer settings.
type DisplayConfig struct {
	Alive  string `yaml:"alive"`
	Dead   string `yaml:"dead"`
	Color  string `yaml:"color"`
	Status bool   `yaml:"status"`
	Scale  int    `yaml:"scale"` // window pixels per cell
}

// SpeedConfig bounds runtime interval adjustment.
type SpeedConfig struct {
	MinInterval time.Duration `yaml:"min_interval"`
	MaxInterval time.Duration `yaml:"max_interval"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load reads the embedded defaults and overlays the YAML file at path, if any.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	// Only fields present in the file are overwritten.
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "path to a YAML config file")
	fs.StringVar(&c.Seed, "seed", c.Seed, "seed file of 0/1 digit rows, or randW,H for a random grid")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between generations")
	fs.IntVar(&c.Iterations, "iterations", c.Iterations, "generations to render (-1 = until interrupted)")
	fs.TextVar(&c.Survive, "survive", c.Survive, "neighbour counts that keep a live cell alive, as min-max")
	fs.TextVar(&c.Birth, "birth", c.Birth, "neighbour counts that bring a dead cell to life, as min-max")
	fs.StringVar(&c.Preset, "preset", c.Preset, "named rule, overrides -survive and -birth")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "terminal, plain or window")
	fs.Int64Var(&c.RNGSeed, "rng-seed", c.RNGSeed, "seed for random grids (0 = time-based)")
	fs.StringVar(&c.Display.Alive, "alive", c.Display.Alive, "glyph for live cells")
	fs.StringVar(&c.Display.Dead, "dead", c.Display.Dead, "glyph for dead cells")
	fs.StringVar(&c.Display.Color, "color", c.Display.Color, "colour of live cells")
	fs.IntVar(&c.Display.Scale, "scale", c.Display.Scale, "window pixels per cell")
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "debug, info, warn or error")
	fs.StringVar(&c.Log.File, "log-file", c.Log.File, "write logs to this file instead of stderr")
	fs.BoolVar(&c.DumpConfig, "dump-config", c.DumpConfig, "print the effective config as YAML and exit")
	fs.BoolVar(&c.ListPresets, "list-presets", c.ListPresets, "list named rules and exit")
}

// Parse builds the configuration from defaults, the -config file and the
// remaining flags, in increasing order of precedence.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.File != "" {
		if err := cfg.mergeFile(cfg.File); err != nil {
			return nil, err
		}
		// Re-apply the command line over the file.
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Rules resolves the preset or the explicit ranges. Range bounds are clamped
// to [0, 8] before validation.
func (c *Config) Rules() (life.Rules, error) {
	if c.Preset != "" {
		return life.LookupPreset(c.Preset)
	}
	rules := life.Rules{Survive: c.Survive.Clamp(), Birth: c.Birth.Clamp()}
	if err := rules.Validate(); err != nil {
		return life.Rules{}, err
	}
	return rules, nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return lvl, nil
}

// AliveRune returns the live-cell glyph.
func (c *Config) AliveRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Display.Alive)
	return r
}

// DeadRune returns the dead-cell glyph.
func (c *Config) DeadRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Display.Dead)
	return r
}

// Color returns the live-cell colour.
func (c *Config) Color() tcell.Color { return tcell.GetColor(strings.ToLower(c.Display.Color)) }

// Validate checks the settings that the loaders cannot.
func (c *Config) Validate() error {
	if _, err := c.Rules(); err != nil {
		return fmt.Errorf("%w: rules: %w", ErrInvalidConfig, err)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %v", ErrInvalidConfig, c.Interval)
	}
	if c.Speed.MinInterval <= 0 || c.Speed.MaxInterval < c.Speed.MinInterval {
		return fmt.Errorf("%w: speed bounds %v..%v", ErrInvalidConfig, c.Speed.MinInterval, c.Speed.MaxInterval)
	}
	switch c.Renderer {
	case RendererTerminal, RendererPlain, RendererWindow:
	default:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalidConfig, c.Renderer)
	}
	if utf8.RuneCountInString(c.Display.Alive) != 1 || utf8.RuneCountInString(c.Display.Dead) != 1 {
		return fmt.Errorf("%w: alive and dead glyphs must be single characters", ErrInvalidConfig)
	}
	if _, ok := tcell.ColorNames[strings.ToLower(c.Display.Color)]; !ok {
		return fmt.Errorf("%w: unknown colour %q", ErrInvalidConfig, c.Display.Color)
	}
	if c.Display.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive", ErrInvalidConfig)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// WriteYAML writes the configuration as YAML.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return enc.Close()
}
