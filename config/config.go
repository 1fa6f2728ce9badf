package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Prunflow  PrunflowConfig  `yaml:"prunflow"`
	FIO       FIOConfig       `yaml:"fio"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Logging   LoggingConfig   `yaml:"logging"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

type DashboardConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Address    string `yaml:"address"`
	LogHistory int    `yaml:"log_history"`
}

type PrunflowConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type FIOConfig struct {
	URLRoot   string          `yaml:"url_root"`
	CacheDir  string          `yaml:"cache_dir"`
	CacheTTL  Duration        `yaml:"cache_ttl"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// Duration accepts Go duration strings ("360s", "5m") or plain integer
// nanoseconds in the YAML file.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration value: %w", err)
	}
	*d = Duration(n)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size"`
}

type AnalysisConfig struct {
	ResupplyDays   int     `yaml:"resupply_days"`
	SupplyWarnDays float64 `yaml:"supply_warn_days"`
	Exchange       string  `yaml:"exchange"`
	CompanyCode    string  `yaml:"company_code"`
}

type MetricsConfig struct {
	CloudWatch CloudWatchConfig `yaml:"cloudwatch"`
}

type CloudWatchConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Region    string `yaml:"region"`
	Namespace string `yaml:"namespace"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	MaxAge int    `yaml:"max_age"`
}

// DefaultURLRoot is the public REST root of the game data API.
const DefaultURLRoot = "https://rest.fnar.net"

func LoadConfig(path string) (*Config, error) {
	// Read configuration file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Config{
		FIO: FIOConfig{
			URLRoot:  DefaultURLRoot,
			CacheTTL: Duration(360 * time.Second),
			RateLimit: RateLimitConfig{
				RequestsPerSecond: 4,
				BurstSize:         2,
			},
		},
		Analysis: AnalysisConfig{
			ResupplyDays:   21,
			SupplyWarnDays: 21,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.FIO.URLRoot = strings.TrimRight(strings.TrimSpace(config.FIO.URLRoot), "/")

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Prunflow.Name == "" {
		return fmt.Errorf("prunflow.name is required")
	}

	if cfg.Prunflow.Version == "" {
		return fmt.Errorf("prunflow.version is required")
	}

	if cfg.FIO.URLRoot == "" {
		return fmt.Errorf("fio.url_root is required")
	}

	if cfg.FIO.CacheTTL <= 0 {
		return fmt.Errorf("fio.cache_ttl must be greater than 0")
	}

	if cfg.FIO.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("fio.rate_limit.requests_per_second must be greater than 0")
	}
	if cfg.FIO.RateLimit.BurstSize <= 0 {
		return fmt.Errorf("fio.rate_limit.burst_size must be greater than 0")
	}

	if cfg.Analysis.ResupplyDays <= 0 {
		return fmt.Errorf("analysis.resupply_days must be greater than 0")
	}
	if cfg.Analysis.SupplyWarnDays <= 0 {
		return fmt.Errorf("analysis.supply_warn_days must be greater than 0")
	}

	if cfg.Metrics.CloudWatch.Enabled && cfg.Metrics.CloudWatch.Namespace == "" {
		return fmt.Errorf("metrics.cloudwatch.namespace is required when CloudWatch is enabled")
	}

	return nil
}
