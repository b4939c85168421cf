package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Monitor  MonitorConfig
	Notifier NotifierConfig
	DB       DatabaseConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	RateLimitRPS   int
	RateLimitBurst int
}

type MonitorConfig struct {
	ScanInterval      time.Duration
	TempThreshold     float64
	HumidityThreshold float64
}

type NotifierConfig struct {
	Workers    int
	BufferSize int
}

type DatabaseConfig struct {
	Path string
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "localhost"),
			Port:           getEnvInt("SERVER_PORT", 8080),
			RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 100),
			RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 200),
		},
		Monitor: MonitorConfig{
			ScanInterval:      getEnvDuration("SCAN_INTERVAL", time.Minute),
			TempThreshold:     getEnvFloat("TEMP_THRESHOLD", 40),
			HumidityThreshold: getEnvFloat("HUMIDITY_THRESHOLD", 15),
		},
		Notifier: NotifierConfig{
			Workers:    getEnvInt("NOTIFIER_WORKERS", 2),
			BufferSize: getEnvInt("NOTIFIER_BUFFER_SIZE", 20),
		},
		DB: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/wildfire-monitor.db"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Monitor.ScanInterval < time.Second {
		return fmt.Errorf("scan interval must be at least 1 second")
	}
	if c.Monitor.HumidityThreshold < 0 || c.Monitor.HumidityThreshold > 100 {
		return fmt.Errorf("invalid humidity threshold: %.2f", c.Monitor.HumidityThreshold)
	}
	if c.Notifier.Workers < 1 {
		return fmt.Errorf("notifier worker count must be at least 1")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
