package config

import (
	"strings"
	"time"
)

// StorageBackend selects the durable storage driver.
type StorageBackend string

const (
	BackendFile   StorageBackend = "file"
	BackendSQLite StorageBackend = "sqlite"
	BackendRedis  StorageBackend = "redis"
	BackendMemory StorageBackend = "memory"
)

// Valid reports whether b names a known backend.
func (b StorageBackend) Valid() bool {
	switch b {
	case BackendFile, BackendSQLite, BackendRedis, BackendMemory:
		return true
	default:
		return false
	}
}

// StorageConfig contains durable storage configuration.
type StorageConfig struct {
	// Backend selects the driver: file, sqlite, redis, or memory.
	Backend StorageBackend `env:"BACKEND" envDefault:"file"`

	// Path is the record file (file backend) or database file (sqlite
	// backend).
	Path string `env:"PATH" envDefault:"data/app-state.json"`

	// Namespace keys the record for backends that share a database or
	// server across stores.
	Namespace string `env:"NAMESPACE" envDefault:"mobile-core"`

	// Debounce is the quiet period between a whitelisted state change and
	// the write that captures it.
	Debounce time.Duration `env:"DEBOUNCE" envDefault:"500ms"`
}

// Sanitize applies guardrails to storage configuration values.
func (s *StorageConfig) Sanitize() {
	s.Path = strings.TrimSpace(s.Path)
	s.Namespace = strings.TrimSpace(s.Namespace)
	if !s.Backend.Valid() {
		s.Backend = BackendFile
	}
	if s.Namespace == "" {
		s.Namespace = "mobile-core"
	}
	if s.Debounce <= 0 {
		s.Debounce = 500 * time.Millisecond
	}
}

// RedisConfig contains Redis connection configuration for the redis
// storage backend.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
