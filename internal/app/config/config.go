package config

import (
	"flag"
	"os"
	"strings"
)

type Config struct {
	Address  string
	LogLevel string
}

// Load reads configuration from flags with environment fallback.
func Load(args []string) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("ordermart", flag.ContinueOnError)
	fs.StringVar(&cfg.Address, "a", getenv("RUN_ADDRESS", ":8080"), "listen address")
	fs.StringVar(&cfg.LogLevel, "l", getenv("LOG_LEVEL", "info"), "log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}

	return v
}
