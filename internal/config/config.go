package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	List   ListConfig   `mapstructure:"list"`
	Search SearchConfig `mapstructure:"search"`
	UI     UIConfig     `mapstructure:"ui"`
	Log    LogConfig    `mapstructure:"log"`
}

// ListConfig controls how the shopping list starts out.
type ListConfig struct {
	InitialCapacity int      `mapstructure:"initial_capacity"`
	SeedItems       []string `mapstructure:"seed_items"`
}

// SearchConfig holds value lookup settings.
type SearchConfig struct {
	IgnoreCase bool `mapstructure:"ignore_case"`
	// SuggestDistance is the largest edit distance offered as "did you mean".
	// Zero disables suggestions.
	SuggestDistance int `mapstructure:"suggest_distance"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Color bool `mapstructure:"color"`
}

// LogConfig holds logger settings. An empty File logs to stderr.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load reads configuration from file and env. Env var overrides use prefix SHOPLIST_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("list.initial_capacity", 10)
	v.SetDefault("list.seed_items", []string{})
	v.SetDefault("search.ignore_case", true)
	v.SetDefault("search.suggest_distance", 2)
	v.SetDefault("ui.color", true)
	v.SetDefault("log.level", "error")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SHOPLIST_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "shoplist"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHOPLIST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// the default location is optional, an explicit file is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
