package config

import (
	"fmt"
	"time"
)

// ClientConfig is the view of the configuration used by the command-line
// API client.
type ClientConfig struct {
	// ServerAddress is the API base URL.
	ServerAddress string
	// RequestTimeout bounds each outbound request.
	RequestTimeout time.Duration
	// Token is the bearer token used for authenticated commands.
	Token string
}

// GetClientConfig builds and validates the client configuration from
// defaults, .env, environment, the global flags in args and an optional JSON
// file. It returns the arguments left after the global flags.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	flagsCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(dotEnvFile).
		withEnv().
		withConfig(flagsCfg).
		withJSON().
		merge()
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		ServerAddress:  cfg.Client.ServerAddress,
		RequestTimeout: cfg.Client.RequestTimeout,
		Token:          cfg.Client.Token,
	}

	if err = clientCfg.validate(); err != nil {
		return nil, nil, err
	}

	return clientCfg, rest, nil
}
