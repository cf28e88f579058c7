// Package config provides viper-based hierarchical configuration: defaults,
// an optional config.yaml, and CARDSHEET_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"moabook/cardsheet/internal/logging"
	"moabook/cardsheet/internal/models"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	AI struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // never serialized
	} `mapstructure:"ai" yaml:"ai"`

	Classification struct {
		Mode string `mapstructure:"mode" yaml:"mode"` // "all" or "defaultOnly"
	} `mapstructure:"classification" yaml:"classification"`

	Files struct {
		// Passwords maps a filename substring pattern to the workbook
		// password; encrypted statements are matched here.
		Passwords map[string]string `mapstructure:"passwords" yaml:"-"`
		// Owners maps a filename substring pattern to the owner tag the
		// statement belongs to.
		Owners map[string]string `mapstructure:"owners" yaml:"owners"`
	} `mapstructure:"files" yaml:"files"`

	Rules struct {
		ExpenseFile string `mapstructure:"expense_file" yaml:"expense_file"`
		IncomeFile  string `mapstructure:"income_file" yaml:"income_file"`
	} `mapstructure:"rules" yaml:"rules"`
}

// Load initializes viper configuration with hierarchical loading.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.cardsheet")
	v.AddConfigPath(".cardsheet")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CARDSHEET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file %s: %w", v.ConfigFileUsed(), err)
		}
		// No config file is fine; defaults and env vars apply.
	}

	// The API key always comes from the environment, unprefixed.
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("binding GEMINI_API_KEY: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 30)

	v.SetDefault("classification.mode", "all")

	v.SetDefault("rules.expense_file", "expense-rules.yaml")
	v.SetDefault("rules.income_file", "income-rules.yaml")
}

func validate(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}
	if config.Classification.Mode != "all" && config.Classification.Mode != "defaultOnly" {
		return fmt.Errorf("invalid classification mode: %s", config.Classification.Mode)
	}
	if config.AI.Enabled && config.AI.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
	}
	if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
		return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
	}
	return nil
}

// PasswordFor returns the password configured for a filename, matching
// substring patterns case-insensitively. Empty string when nothing matches.
func (c *Config) PasswordFor(filename string) string {
	return matchPattern(c.Files.Passwords, filename, "")
}

// OwnerFor returns the owner tag configured for a filename, falling back to
// the shared owner.
func (c *Config) OwnerFor(filename string) string {
	return matchPattern(c.Files.Owners, filename, models.OwnerShared)
}

func matchPattern(patterns map[string]string, filename, fallback string) string {
	lower := strings.ToLower(filename)
	for pattern, value := range patterns {
		if strings.Contains(lower, strings.ToLower(pattern)) {
			return value
		}
	}
	return fallback
}

// NewLogger builds the application logger from the Log section.
func (c *Config) NewLogger() logging.Logger {
	return logging.NewLogrusAdapter(c.Log.Level, c.Log.Format)
}
