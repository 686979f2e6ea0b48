package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds server configuration
type Config struct {
	Port            string        `yaml:"port"`
	EnableTLS       bool          `yaml:"enable_tls"`
	CertFile        string        `yaml:"cert_file"`
	KeyFile         string        `yaml:"key_file"`
	EnableCORS      bool          `yaml:"enable_cors"`
	LogRequests     bool          `yaml:"log_requests"`
	RateLimitRPS    float64       `yaml:"rate_limit_rps"`
	RateLimitBurst  int           `yaml:"rate_limit_burst"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Hostname        string        `yaml:"-"`
}

func defaultConfig() Config {
	return Config{
		Port:            "8080",
		CertFile:        "server.crt",
		KeyFile:         "server.key",
		LogRequests:     true,
		ShutdownTimeout: 10 * time.Second,
	}
}

// loadConfig builds a Config from defaults, an optional YAML file named by
// CONFIG_FILE, and environment variables, in increasing precedence.
func loadConfig() (Config, error) {
	cfg := defaultConfig()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	if hostname, _ := os.Hostname(); hostname != "" {
		cfg.Hostname = hostname
	}
	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.EnableTLS = getEnv("ENABLE_TLS", strconv.FormatBool(cfg.EnableTLS)) == "true"
	cfg.CertFile = getEnv("CERT_FILE", cfg.CertFile)
	cfg.KeyFile = getEnv("KEY_FILE", cfg.KeyFile)
	cfg.EnableCORS = getEnv("ENABLE_CORS", strconv.FormatBool(cfg.EnableCORS)) == "true"
	cfg.LogRequests = getEnv("LOG_REQUESTS", strconv.FormatBool(cfg.LogRequests)) == "true"
	cfg.RateLimitRPS = parseFloat64(getEnv("RATE_LIMIT_RPS", strconv.FormatFloat(cfg.RateLimitRPS, 'f', -1, 64)))
	cfg.RateLimitBurst = int(parseInt64(getEnv("RATE_LIMIT_BURST", strconv.Itoa(cfg.RateLimitBurst))))
	cfg.ShutdownTimeout = parseDuration(getEnv("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout.String()), cfg.ShutdownTimeout)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseInt64(s string) int64 {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return 0
}

func parseFloat64(s string) float64 {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return 0
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d
	}
	return fallback
}
