package config

import "strings"

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"chroniker"`
	Password string `env:"PASSWORD" envDefault:"chroniker"`
	Name     string `env:"NAME"     envDefault:"chroniker"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
}

// RedisConfig locates the Redis instance backing the monitor result cache.
// Redis is optional for the CLI; an empty URI disables it.
type RedisConfig struct {
	URI      string `env:"URI"      envDefault:""`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// Configured reports whether enough settings are present to dial Redis.
func (c *RedisConfig) Configured() bool {
	return c != nil && strings.TrimSpace(c.URI) != ""
}
