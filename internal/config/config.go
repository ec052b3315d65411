package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Book    BookConfig    `mapstructure:"book"`
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
}

// BookConfig represents address book behavior settings
type BookConfig struct {
	UpcomingWindowDays int `mapstructure:"upcoming_window_days"`
}

// SessionConfig represents interactive session settings
type SessionConfig struct {
	Prompt   string `mapstructure:"prompt"`
	Greeting string `mapstructure:"greeting"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. A missing file is not an error:
// the app is fully usable with defaults, so only a file that exists
// but cannot be read or parsed fails the load.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.contact-book")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Book.UpcomingWindowDays < 0 {
		return fmt.Errorf("book.upcoming_window_days must not be negative")
	}
	return nil
}

// GetUpcomingWindowDays returns the upcoming-birthday window in days
func (c *BookConfig) GetUpcomingWindowDays() int {
	if c.UpcomingWindowDays == 0 {
		return 7
	}
	return c.UpcomingWindowDays
}

// GetPrompt returns the session input prompt
func (c *SessionConfig) GetPrompt() string {
	if c.Prompt == "" {
		return "> "
	}
	return c.Prompt
}

// GetGreeting returns the session greeting line
func (c *SessionConfig) GetGreeting() string {
	if c.Greeting == "" {
		return "Welcome to your contact assistant!"
	}
	return c.Greeting
}

// GetLevel returns the configured log level
func (c *LogConfig) GetLevel() string {
	if c.Level == "" {
		return "info"
	}
	return c.Level
}
