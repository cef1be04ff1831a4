package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the whole server.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Files  FilesConfig  `yaml:"files"`
}

// ServerConfig holds the listener settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port" validate:"gte=0,lte=65535"`

	// PortAttempts is how many consecutive ports Listen tries, starting at Port.
	PortAttempts int `yaml:"port_attempts" validate:"gte=1"`

	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"gte=0"`
}

// FilesConfig holds the static file settings.
type FilesConfig struct {
	Root string `yaml:"root" validate:"required"`
}

var validate = validator.New()

// Default returns the settings used when nothing else is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			PortAttempts: 10,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Files: FilesConfig{
			Root: "pages",
		},
	}
}

// Load builds the configuration from the defaults, the YAML file at path (skipped when
// path is empty) and the SERVER_HOST, PORT and FILES_ROOT environment variables, in that
// order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.Server.Host = getEnvOrDefault("SERVER_HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvAsIntOrDefault("PORT", cfg.Server.Port)
	cfg.Files.Root = getEnvOrDefault("FILES_ROOT", cfg.Files.Root)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the struct tags of every section.
func (c *Config) Validate() error {
	err := validate.Struct(c)

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		return fmt.Errorf("%s failed on %q", invalid[0].Namespace(), invalid[0].Tag())
	}

	return err
}

// ServerAddress returns the listen address for port.
func (c *Config) ServerAddress(port int) string {
	return fmt.Sprintf("%s:%d", c.Server.Host, port)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
