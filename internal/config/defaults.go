package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenIssuer    = "go-job-tracker"
	defaultTokenDuration  = 7 * 24 * time.Hour
	defaultHTTPAddress    = "localhost:5000"
	defaultRequestTimeout = 10 * time.Second
	defaultCORSOrigin     = "http://localhost:3000"
	defaultClientAddress  = "http://localhost:5000"
	defaultVersion        = "dev"
)

// defaultConfig returns the lowest-priority layer of the configuration.
// Secrets and the DSN have no defaults.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: bcrypt.DefaultCost,
			Version:          defaultVersion,
		},
		Server: Server{
			HTTPAddress:        defaultHTTPAddress,
			RequestTimeout:     defaultRequestTimeout,
			CORSAllowedOrigins: []string{defaultCORSOrigin},
		},
		Client: Client{
			ServerAddress:  defaultClientAddress,
			RequestTimeout: defaultRequestTimeout,
		},
	}
}
