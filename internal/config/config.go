package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// Config represents the application configuration
type Config struct {
	Server ServerConfig `yaml:"server" json:"server"`
	Log    LogConfig    `yaml:"log" json:"log"`
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// LoadConfig loads the application configuration
func LoadConfig() (*Config, error) {
	// Set default configuration
	config := &Config{}

	config.Server = ServerConfig{
		Host: "0.0.0.0",
		Port: 5000,
	}
	config.Log = LogConfig{
		Level: "info",
		File:  "app.log",
	}

	// Load configuration from environment variables
	if host := os.Getenv("SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	if port, err := strconv.Atoi(os.Getenv("SERVER_PORT")); err == nil {
		config.Server.Port = port
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Log.Level = level
	}

	if file := os.Getenv("LOG_FILE"); file != "" {
		config.Log.File = file
	}

	// Load configuration from file
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/storefront")

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found, use default and environment values
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		// Config file found, override default and environment values
		if viper.IsSet("server.host") {
			config.Server.Host = viper.GetString("server.host")
		}

		if viper.IsSet("server.port") {
			config.Server.Port = viper.GetInt("server.port")
		}

		if viper.IsSet("log.level") {
			config.Log.Level = viper.GetString("log.level")
		}

		if viper.IsSet("log.file") {
			config.Log.File = viper.GetString("log.file")
		}
	}

	return config, nil
}
