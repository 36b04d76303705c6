// Package config loads game settings from the environment. Command-line
// flags registered with RegisterFlags take precedence over the environment.
package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Renderer names accepted by Config.Renderer
const (
	RendererTUI    = "tui"
	RendererWindow = "window"
)

// ErrInvalid is returned by Validate
var ErrInvalid = errors.New("invalid configuration")

// Config controls a game process
type Config struct {
	Layout    string        `env:"ESCAPEROOM_LAYOUT"     envDefault:"classic"`
	TimeLimit time.Duration `env:"ESCAPEROOM_TIME_LIMIT" envDefault:"20m"`
	Tick      time.Duration `env:"ESCAPEROOM_TICK"       envDefault:"1s"`

	SavePath string `env:"ESCAPEROOM_SAVE_PATH" envDefault:"escaperoom.db"`
	Slot     string `env:"ESCAPEROOM_SLOT"      envDefault:"ve_room_state_v1"`
	Autosave bool   `env:"ESCAPEROOM_AUTOSAVE"  envDefault:"true"`

	Lang     string `env:"ESCAPEROOM_LANG"     envDefault:"en"`
	Renderer string `env:"ESCAPEROOM_RENDERER" envDefault:"tui"`

	LogFile  string `env:"ESCAPEROOM_LOG_FILE"  envDefault:"escaperoom.log"`
	LogLevel string `env:"ESCAPEROOM_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

// RegisterFlags binds cfg's fields to fs, using the current values as
// defaults so that flags override the environment.
func (cfg *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&cfg.Layout, "layout", cfg.Layout, "room layout (classic, practice)")
	fs.DurationVar(&cfg.TimeLimit, "time", cfg.TimeLimit, "time limit")
	fs.DurationVar(&cfg.Tick, "tick", cfg.Tick, "countdown tick interval")
	fs.StringVar(&cfg.SavePath, "save", cfg.SavePath, "save database path, empty disables saving")
	fs.StringVar(&cfg.Slot, "slot", cfg.Slot, "save slot name")
	fs.BoolVar(&cfg.Autosave, "autosave", cfg.Autosave, "save after every change")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "message language")
	fs.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "front end (tui, window)")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file, empty disables logging")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
}

// TimeLimitSeconds returns the time limit in whole seconds
func (cfg Config) TimeLimitSeconds() int {
	return int(cfg.TimeLimit / time.Second)
}

// Validate checks the values that Load and flags cannot
func (cfg Config) Validate() error {
	if cfg.TimeLimit < time.Second {
		return errors.Wrapf(ErrInvalid, "time limit %s is under a second", cfg.TimeLimit)
	}
	if cfg.Tick <= 0 {
		return errors.Wrapf(ErrInvalid, "tick %s must be positive", cfg.Tick)
	}
	if cfg.Slot == "" {
		return errors.Wrap(ErrInvalid, "empty save slot")
	}
	switch cfg.Renderer {
	case RendererTUI, RendererWindow:
	default:
		return errors.Wrapf(ErrInvalid, "unknown renderer %q", cfg.Renderer)
	}
	return nil
}
