package server

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config is the server configuration, usually read from a YAML file.
type Config struct {
	Port     string        `yaml:"port" validate:"required,numeric"`
	MapsDir  string        `yaml:"maps_dir" validate:"required"`
	Watch    bool          `yaml:"watch"`
	LogLevel string        `yaml:"log_level" validate:"oneof=trace debug info warn error"`
	Timeout  time.Duration `yaml:"timeout" validate:"gt=0"`
}

func DefaultConfig() Config {
	return Config{
		Port:     "8080",
		MapsDir:  "data",
		LogLevel: "info",
		Timeout:  200 * time.Millisecond,
	}
}

// LoadConfig starts from DefaultConfig, applies the YAML file at path when
// path is not empty and the PORT environment variable when set.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("server: reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("server: parsing config %s: %w", path, err)
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	} else if path == "" {
		log.Printf("Defaulting to port %s", cfg.Port)
	}
	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("server: invalid config: %w", err)
	}
	return cfg, nil
}

// Level returns the logrus level named by LogLevel.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
