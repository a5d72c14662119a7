package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server base URL
//	-d local replica DSN
//	-keyring-service OS keyring service name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-min-interval minimum interval between full syncs (e.g., "30m")
//	-sync-job-interval background sync job period (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *Config {
	var baseURL string
	var databaseDSN string
	var keyringService string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncMinInterval time.Duration
	var syncJobInterval time.Duration

	flag.StringVar(&baseURL, "a", "", "Server base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local replica DSN")
	flag.StringVar(&keyringService, "keyring-service", "", "OS keyring service name")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncMinInterval, "sync-min-interval", 0, "Minimum interval between full syncs")
	flag.DurationVar(&syncJobInterval, "sync-job-interval", 0, "Background sync job period")

	flag.Parse()

	return &Config{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DSN: databaseDSN,
		},
		Keyring: Keyring{
			Service: keyringService,
		},
		Sync: Sync{
			MinInterval: syncMinInterval,
			JobInterval: syncJobInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
