// Package config provides configuration loading and validation for the service.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the main application configuration struct.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	Poverty  PovertyConfig  `mapstructure:"poverty"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds document-store connection settings.
type DatabaseConfig struct {
	URL          string        `mapstructure:"url"`
	QueryTimeout time.Duration `mapstructure:"query_timeout"`
}

// GeminiConfig holds generator-collaborator settings.
type GeminiConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	CallTimeout time.Duration `mapstructure:"call_timeout"`
}

// PovertyConfig parameterizes the federal poverty line computation.
// These are reference constants published yearly, not business rules,
// so they live in configuration.
type PovertyConfig struct {
	BaseAmount         float64 `mapstructure:"base_amount"`
	PerPersonIncrement float64 `mapstructure:"per_person_increment"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// PovertyLine returns the poverty threshold for a household size.
func (p PovertyConfig) PovertyLine(householdSize int) float64 {
	if householdSize < 1 {
		householdSize = 1
	}
	return p.BaseAmount + float64(householdSize-1)*p.PerPersonIncrement
}

// Load reads configuration from an optional config file plus environment
// variables. Environment variables use the PLAN_ADVISOR prefix with
// underscores, e.g. PLAN_ADVISOR_DATABASE_URL, PLAN_ADVISOR_GEMINI_API_KEY.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("PLAN_ADVISOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 120*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.query_timeout", 10*time.Second)

	v.SetDefault("gemini.call_timeout", 60*time.Second)

	// 2023 federal poverty guidelines for the 48 contiguous states.
	v.SetDefault("poverty.base_amount", 14580.0)
	v.SetDefault("poverty.per_person_increment", 5140.0)

	v.SetDefault("logging.level", "info")
}

// ValidateForServe checks that the settings required to serve requests are
// present. A missing connection string or API key is fatal at startup; the
// process must not come up and fail per-request instead.
func (c *Config) ValidateForServe() error {
	if c.Database.URL == "" {
		return fmt.Errorf("config error: database.url is required (PLAN_ADVISOR_DATABASE_URL)")
	}
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("config error: gemini.api_key is required (PLAN_ADVISOR_GEMINI_API_KEY)")
	}
	if c.Poverty.BaseAmount <= 0 || c.Poverty.PerPersonIncrement < 0 {
		return fmt.Errorf("config error: poverty guideline amounts must be positive")
	}
	return nil
}
