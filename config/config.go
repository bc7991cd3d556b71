package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"novabot/database"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string
	GuildID      string // Primary Discord guild ID

	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// Progression configuration
	XPPerMessageMin int64
	XPPerMessageMax int64
	LevelUpBonus    int64
	CooldownWindow  time.Duration

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		GuildID:      os.Getenv("GUILD_ID"),

		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		// Progression defaults match the long-standing bot behavior: 5-15 XP
		// per message, 100 bonus coins per level, 10 second cooldown.
		XPPerMessageMin: 5,
		XPPerMessageMax: 15,
		LevelUpBonus:    100,
		CooldownWindow:  10 * time.Second,

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if v := os.Getenv("XP_PER_MESSAGE_MIN"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.XPPerMessageMin = parsed
		}
	}
	if v := os.Getenv("XP_PER_MESSAGE_MAX"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.XPPerMessageMax = parsed
		}
	}
	if v := os.Getenv("LEVEL_UP_BONUS"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.LevelUpBonus = parsed
		}
	}
	if v := os.Getenv("XP_COOLDOWN_SECONDS"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			config.CooldownWindow = time.Duration(parsed) * time.Second
		}
	}

	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.DatabaseName != "" && strings.TrimSpace(config.DatabaseName) == "" {
			return nil, fmt.Errorf("DATABASE_NAME cannot be empty when provided")
		}
	}
	if config.XPPerMessageMin <= 0 || config.XPPerMessageMax < config.XPPerMessageMin {
		return nil, fmt.Errorf("invalid XP per message range [%d, %d]", config.XPPerMessageMin, config.XPPerMessageMax)
	}

	return config, nil
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:     "test",
		XPPerMessageMin: 5,
		XPPerMessageMax: 15,
		LevelUpBonus:    100,
		CooldownWindow:  10 * time.Second,
	}
}
