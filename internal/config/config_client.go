package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const defaultSessionFileName = "session"

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the address book server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter ClientAdapter
	// SessionFile is where the last issued session token is kept between
	// invocations.
	SessionFile string
}

// GetClientConfig builds and validates a client-specific config view.
//
// Command-line flags are not consulted: the client owns its argument list
// for subcommands. Defaults, the .env file, environment variables and the
// JSON file named by CONFIG are merged as usual.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(defaultDotEnvFile).
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		SessionFile: cfg.Client.SessionFile,
	}
	if clientCfg.SessionFile == "" {
		clientCfg.SessionFile = defaultSessionFile()
	}

	return clientCfg, clientCfg.validate()
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(DefaultClientSessionDir, defaultSessionFileName)
	}

	return filepath.Join(home, DefaultClientSessionDir, defaultSessionFileName)
}
