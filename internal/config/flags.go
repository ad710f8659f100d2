package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend API base address, host:port or full URL
//	-d session database file path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "15s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var sessionDBPath string
	var jsonConfigPath string
	var requestTimeout time.Duration

	flag.StringVar(&serverAddress, "a", "", "Backend API base address (host:port or URL)")
	flag.StringVar(&sessionDBPath, "d", "", "Session database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: sessionDBPath},
		},
		JSONFilePath: jsonConfigPath,
	}
}
