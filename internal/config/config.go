package config

import (
	"errors"
	"os"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"

	"github.com/couchcryptid/usgs-quake-query/internal/domain"
)

// Config holds all client settings, populated from environment variables.
type Config struct {
	BaseURL   string
	Timeout   time.Duration // zero means no client-side timeout
	OutputDir string

	LogLevel        string
	LogFormat       string
	MetricsTextfile string

	// Optional Kafka sink for in-memory results.
	KafkaBrokers []string
	KafkaTopic   string
}

// KafkaEnabled reports whether in-memory results should be published.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	timeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("USGS_TIMEOUT", "0s"))
	if err != nil || timeout < 0 {
		return nil, errors.New("invalid USGS_TIMEOUT")
	}

	cfg := &Config{
		BaseURL:         sharedcfg.EnvOrDefault("USGS_BASE_URL", domain.DefaultBaseURL),
		Timeout:         timeout,
		OutputDir:       sharedcfg.EnvOrDefault("OUTPUT_DIR", "."),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "text"),
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),
		KafkaTopic:      sharedcfg.EnvOrDefault("KAFKA_TOPIC", "usgs-query-results"),
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = sharedcfg.ParseBrokers(brokers)
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("USGS_BASE_URL is required")
	}
	if cfg.KafkaEnabled() && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_BROKERS is set but KAFKA_TOPIC is empty")
	}

	return cfg, nil
}
