package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds a single service's configuration. All four services share
// the same shape; each reads its own YAML file from configs/.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
		// InsecureSkipVerify disables token verification and trusts the
		// X-User-ID / X-User-Role request headers instead. Local
		// development only. Never enable this on a reachable deployment.
		InsecureSkipVerify bool `yaml:"insecure_skip_verify"`
		// LoginRatePerMinute throttles the login endpoint per client IP.
		// Zero disables throttling.
		LoginRatePerMinute int `yaml:"login_rate_per_minute"`
	} `yaml:"auth"`
	Migrations struct {
		Path string `yaml:"path"`
	} `yaml:"migrations"`
}

// LoadConfig reads configuration from the specified YAML file. The
// DATABASE_URL, JWT_SECRET and PORT environment variables override the
// file values so deployments can keep secrets out of the config file.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.Database.URL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
	if v := os.Getenv("PORT"); v != "" {
		config.Server.Port = v
	}
	if config.Migrations.Path == "" {
		config.Migrations.Path = "migrations"
	}

	if config.Auth.JWTSecret == "" && !config.Auth.InsecureSkipVerify {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}

	return config, nil
}
