// Package config builds runtime configuration from the environment so main
// stays lean.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures process-level configuration.
type Server struct {
	Addr string `env:"LARDER_ADDR" envDefault:":8080"`

	// PostgresURL is empty in dev mode; in-memory stores are used instead.
	PostgresURL string `env:"LARDER_POSTGRES_URL"`

	Redis RedisConfig `envPrefix:"LARDER_REDIS_"`

	// KafkaBrokers enables the Kafka audit sink when non-empty.
	KafkaBrokers []string `env:"LARDER_KAFKA_BROKERS"`
	AuditTopic   string   `env:"LARDER_AUDIT_TOPIC" envDefault:"larder.audit"`

	// JWTSigningKey verifies bearer tokens issued by the external identity
	// subsystem. Token issuance is out of scope here.
	JWTSigningKey string `env:"LARDER_JWT_SIGNING_KEY" envDefault:"dev-secret-key-change-in-production"`

	// SearchCacheTTL bounds staleness of cached ingredient search results.
	SearchCacheTTL time.Duration `env:"LARDER_SEARCH_CACHE_TTL" envDefault:"5m"`
}

// RedisConfig holds connection settings for the search cache. Empty URL
// means Redis is not configured and the in-memory cache is used.
type RedisConfig struct {
	URL          string        `env:"URL"`
	PoolSize     int           `env:"POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"3s"`
}

// FromEnv parses the environment into a Server config.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
