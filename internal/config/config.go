package config

import (
	"os"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Console ConsoleConfig `mapstructure:"console"`
	Stub    StubConfig    `mapstructure:"stub"`
	Log     LogConfig     `mapstructure:"log"`
}

// APIConfig holds the remote marketplace API configuration
type APIConfig struct {
	BaseURL   string        `mapstructure:"baseUrl"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RetryMax  int           `mapstructure:"retryMax"`
	RetryWait time.Duration `mapstructure:"retryWait"`
}

// ConsoleConfig holds list screen defaults
type ConsoleConfig struct {
	PageSize        int   `mapstructure:"pageSize"`
	PageSizeChoices []int `mapstructure:"pageSizeChoices"`
}

// StubConfig holds the local stub server configuration
type StubConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// PageSizeOrDefault returns the configured default page size
func (c *Config) PageSizeOrDefault() int {
	if c.Console.PageSize > 0 {
		return c.Console.PageSize
	}
	return 10
}

// PageSizeChoicesOrDefault returns the selectable page sizes
func (c *Config) PageSizeChoicesOrDefault() []int {
	if len(c.Console.PageSizeChoices) > 0 {
		return c.Console.PageSizeChoices
	}
	return []int{5, 10, 25}
}

// GetStubAddress returns the stub server address for binding
func (c *Config) GetStubAddress() string {
	host := c.Stub.Host
	port := c.Stub.Port
	if port == "" {
		port = "8080"
	}
	return host + ":" + port
}

// GetEnvironment returns the current environment
func GetEnvironment() string {
	if env := os.Getenv("GAME_ACCOUNTS_ENV"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "development"
}
