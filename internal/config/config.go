// Package config provides Viper-based configuration loading for fairplay.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// GameConfig holds round sequencing settings.
type GameConfig struct {
	// Rounds is the number of resolved rounds to play before exiting.
	// Help requests do not count towards it.
	Rounds int `mapstructure:"rounds"`
	// Color enables ANSI styling of console output.
	Color bool `mapstructure:"color"`
}

// MenuConfig holds the sentinel keys of the selection menu.
type MenuConfig struct {
	// ExitKey ends the game without revealing the key.
	ExitKey string `mapstructure:"exit_key"`
	// HelpKey prints the relation table and restarts the round.
	HelpKey string `mapstructure:"help_key"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
	Menu    MenuConfig    `mapstructure:"menu"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateMenu(c.Menu); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateGame(g GameConfig) error {
	if g.Rounds < 1 {
		return fmt.Errorf("game.rounds must be >= 1, got %d", g.Rounds)
	}
	return nil
}

func validateMenu(m MenuConfig) error {
	var errs []string
	for _, k := range []struct{ name, value string }{
		{"menu.exit_key", m.ExitKey},
		{"menu.help_key", m.HelpKey},
	} {
		switch {
		case strings.TrimSpace(k.value) == "":
			errs = append(errs, fmt.Sprintf("%s must not be empty", k.name))
		case strings.TrimSpace(k.value) != k.value:
			errs = append(errs, fmt.Sprintf("%s must not have leading or trailing spaces, got %q", k.name, k.value))
		case isPositiveInt(k.value):
			errs = append(errs, fmt.Sprintf("%s must not be a positive number, those select moves; got %q", k.name, k.value))
		}
	}
	if m.ExitKey != "" && m.ExitKey == m.HelpKey {
		errs = append(errs, "menu.exit_key and menu.help_key must differ")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// isPositiveInt reports whether s parses as an integer >= 1.
func isPositiveInt(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= 1
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with FAIRPLAY_ prefix
	v.SetEnvPrefix("FAIRPLAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	v.SetDefault("game.rounds", 1)
	v.SetDefault("game.color", false)

	v.SetDefault("menu.exit_key", "0")
	v.SetDefault("menu.help_key", "?")
}
