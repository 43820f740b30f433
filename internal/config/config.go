// Package config holds the gateway's accepted configuration options.
//
// Parsing these values out of CLI flags, environment variables, or a
// databaseUrl connection string is the embedding application's job — this
// package only defines the shape and production-ready defaults, the way
// database.Config does for the pool layer it was adapted from.
package config

import "time"

// Config holds every option the gateway accepts.
type Config struct {
	// Pool dial parameters.
	Host     string
	User     string
	Password string
	Port     int
	Database string

	// Pool tuning.
	ConnectionLimit int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration

	// PortNumber is the HTTP listen port.
	PortNumber int

	// JWTSecret is the symmetric key used to verify bearer tokens.
	JWTSecret string

	// JWTRequired rejects any request without a verifiable bearer token.
	JWTRequired bool

	// StorageFolder is accepted for interface compatibility but unused:
	// upload/download of stored files is out of core (see SPEC_FULL.md).
	StorageFolder string
}

// DefaultConfig returns production-ready defaults for the given dial
// parameters. Mirrors database.DefaultConfig's shape from the pool layer.
func DefaultConfig(host, user, password, database string) *Config {
	return &Config{
		Host:            host,
		User:            user,
		Password:        password,
		Port:            3306,
		Database:        database,
		ConnectionLimit: 10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
		PortNumber:      3000,
		JWTRequired:     false,
	}
}
