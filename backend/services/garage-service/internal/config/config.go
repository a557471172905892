package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "gearlog/backend/libs/config"
)

// Config defines garage service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"GARAGE_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		DSN string `yaml:"dsn" env:"GARAGE_POSTGRES_DSN"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr" env:"GARAGE_REDIS_ADDR"`
		Password string `yaml:"password" env:"GARAGE_REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"GARAGE_REDIS_DB"`
		TTL      int    `yaml:"ttlSeconds" env:"GARAGE_REDIS_TTL"`
	} `yaml:"redis"`
	Auth struct {
		JWTSecret string `yaml:"jwtSecret" env:"GARAGE_JWT_SECRET"`
	} `yaml:"auth"`
	Analytics struct {
		MaxEfficiency float64 `yaml:"maxEfficiency" env:"GARAGE_MAX_EFFICIENCY"`
	} `yaml:"analytics"`
}

// Load reads configuration via shared helper.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8084"
	cfg.Redis.Addr = "localhost:6379"
	cfg.Redis.TTL = 3600

	if err := libconfig.Load(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return nil, errors.New("config: database dsn required")
	}
	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		return nil, errors.New("config: jwt secret required")
	}
	if strings.TrimSpace(cfg.Redis.Addr) == "" {
		return nil, errors.New("config: redis addr required")
	}
	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8084"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// ReportTTL returns the health report cache ttl as duration.
func (c *Config) ReportTTL() time.Duration {
	if c.Redis.TTL <= 0 {
		return time.Hour
	}
	return time.Duration(c.Redis.TTL) * time.Second
}
