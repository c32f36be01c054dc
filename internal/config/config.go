// /internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN"`
	DeveloperID  string `env:"DEVELOPER_ID"`
	Prefix       string `env:"COMMAND_PREFIX" envDefault:"!"`
	StoragePath  string `env:"STORAGE_PATH" envDefault:"datastore.json"`

	NoPermissionMessage string `env:"NO_PERMISSION_MESSAGE" envDefault:"You don't have permission to perform this command"`
	NoConsoleMessage    string `env:"NO_CONSOLE_MESSAGE" envDefault:"The command you've tried to run is player only."`

	HelpCommand    string `env:"HELP_COMMAND" envDefault:"help"`
	HelpPermission string `env:"HELP_PERMISSION"`

	// CooldownPerMinute caps how many commands one sender may run per
	// minute; 0 disables the limit.
	CooldownPerMinute int `env:"COOLDOWN_PER_MINUTE" envDefault:"20"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}
	return Parse()
}

// Parse builds a Config from the process environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.CooldownPerMinute < 0 {
		return nil, fmt.Errorf("COOLDOWN_PER_MINUTE must not be negative, got %d", cfg.CooldownPerMinute)
	}
	return &cfg, nil
}

// ValidateDiscord checks the settings the Discord bot cannot run without.
func (c *Config) ValidateDiscord() error {
	if c.DiscordToken == "" {
		return errors.New("DISCORD_TOKEN is not set")
	}
	if c.Prefix == "" {
		return errors.New("COMMAND_PREFIX must not be empty")
	}
	return nil
}

// IsDeveloper reports whether userID is the configured developer.
func IsDeveloper(cfg *Config, userID string) bool {
	return cfg != nil && cfg.DeveloperID != "" && cfg.DeveloperID == userID
}
