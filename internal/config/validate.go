package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.BodyLimit <= 0 {
		return fmt.Errorf("server.body_limit must be > 0 (got %d)", c.Server.BodyLimit)
	}

	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))

	switch c.Store.Driver {
	case DriverMemory:
	case DriverMongo:
		if err := c.Mongo.validate(); err != nil {
			return fmt.Errorf("mongo: %w", err)
		}
	case DriverPostgres:
		if err := c.Database.validate(); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	default:
		return fmt.Errorf("store.driver must be one of memory, mongo, postgres (got %q)", c.Store.Driver)
	}

	return nil
}

func (m *MongoConfig) validate() error {
	if m.URI == "" {
		return fmt.Errorf("uri is required")
	}
	if m.Database == "" {
		return fmt.Errorf("database is required")
	}
	if m.ConnectTimeout <= 0 {
		return fmt.Errorf("connect_timeout must be > 0 (got %v)", m.ConnectTimeout)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.DSN == "" {
		return fmt.Errorf("dsn is required")
	}
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be in 0..max_conns (got %d)", d.MinConns)
	}
	return nil
}
