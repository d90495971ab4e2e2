package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for ChatFolio
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Chat      ChatConfig      `mapstructure:"chat"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ProvidersConfig holds the chat backend configuration. Both providers are
// served by the same backend host under different endpoint paths.
type ProvidersConfig struct {
	ChatBaseURL    string `mapstructure:"chat_base_url"`
	SiteURL        string `mapstructure:"site_url"`
	SiteTitle      string `mapstructure:"site_title"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// ChatConfig holds conversation defaults
type ChatConfig struct {
	DefaultModel string `mapstructure:"default_model"`
	DefaultRole  string `mapstructure:"default_role"`
	Greeting     string `mapstructure:"greeting"`
}

// Load loads configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read config file if specified
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables
	v.SetEnvPrefix("CHATFOLIO")
	v.AutomaticEnv()

	// Read config
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")

	v.SetDefault("database.path", "./data/chatfolio.db")

	v.SetDefault("providers.chat_base_url", "http://127.0.0.1:8000")
	v.SetDefault("providers.site_url", "https://openresume.app")
	v.SetDefault("providers.site_title", "OpenResume - AI Resume Builder")
	v.SetDefault("providers.timeout_seconds", 120)

	v.SetDefault("chat.default_model", "gemini-pro")
	v.SetDefault("chat.default_role", "general")
	v.SetDefault("chat.greeting",
		"👋 Hi! I'm your AI resume assistant. Select a model and let's build your resume together!")
}

// Address returns the server address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
