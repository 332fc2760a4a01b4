package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `json:"server"`
	Assets  AssetsConfig  `json:"assets"`
	Seed    SeedConfig    `json:"seed"`
	Logging LoggingConfig `json:"logging"`
	App     AppConfig     `json:"app"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host         string        `json:"host"`
	Port         int           `json:"port"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
}

// AssetsConfig points at the directory holding project photos.
type AssetsConfig struct {
	Dir string `json:"dir"`
}

// SeedConfig optionally replaces the built-in project catalog with a JSON file.
type SeedConfig struct {
	ProjectsFile string `json:"projects_file"`
}

// LoggingConfig
type LoggingConfig struct {
	Level string `json:"level"`
}

// AppConfig
type AppConfig struct {
	Environment string `json:"environment"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Default config
	config := &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Assets: AssetsConfig{
			Dir: "assets/project-images",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		App: AppConfig{
			Environment: "development",
		},
	}

	// Load from file if exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Override with environment variables
	overrideWithEnv(config)

	return config, nil
}

func overrideWithEnv(config *Config) {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if dir := os.Getenv("ASSETS_DIR"); dir != "" {
		config.Assets.Dir = dir
	}
	if seed := os.Getenv("SEED_PROJECTS_FILE"); seed != "" {
		config.Seed.ProjectsFile = seed
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		config.App.Environment = env
	}
}

// GetServerAddr returns the server address
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
