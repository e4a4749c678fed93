package config

import (
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig `yaml:"server"`
	Auth     AuthConfig   `yaml:"auth"`
	News     NewsConfig   `yaml:"news"`
	AI       AIConfig     `yaml:"ai"`
	LogLevel string       `yaml:"log_level"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	FrontendURL string `yaml:"frontend_url"`
}

// AuthConfig represents token signing configuration
type AuthConfig struct {
	// JWTSecret signs session tokens. The default is a development
	// fallback and must be overridden via JWT_SECRET in production.
	JWTSecret    string `yaml:"jwt_secret"`
	TokenTTLHour int    `yaml:"token_ttl_hours"`
}

// NewsConfig represents the upstream news API configuration.
// An empty APIKey means the feed serves the built-in mock set.
type NewsConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// AIConfig represents the generative model configuration.
// An empty APIKey means chat and analysis serve fallback responses.
type AIConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Auth: AuthConfig{
			JWTSecret:    "crux-dev-secret-change-me",
			TokenTTLHour: 24,
		},
		News: NewsConfig{
			BaseURL: "https://newsapi.org",
		},
		AI: AIConfig{
			Model: "gemini-1.5-flash",
		},
		LogLevel: "info",
	}
}

// Load loads configuration from a YAML file
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(cfg)
			return cfg, nil // Return default config if file doesn't exist
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Override with environment variables
	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides overrides configuration with environment variables
func applyEnvOverrides(cfg *Config) {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if key := os.Getenv("NEWS_API_KEY"); key != "" {
		cfg.News.APIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.AI.APIKey = key
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.AI.Model = model
	}
	if url := os.Getenv("FRONTEND_URL"); url != "" {
		cfg.Server.FrontendURL = url
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
}

// Save saves configuration to a YAML file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
