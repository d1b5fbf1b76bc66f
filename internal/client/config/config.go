package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the activities client.
type Config struct {
	ServerURL       string        `env:"ACTIVITIES_SERVER_URL"`
	RequestTimeout  time.Duration `env:"ACTIVITIES_REQUEST_TIMEOUT"`
	NotificationTTL time.Duration `env:"ACTIVITIES_NOTIFICATION_TTL"`
	LogFile         string        `env:"ACTIVITIES_LOG_FILE"`
	Plain           bool          `env:"ACTIVITIES_PLAIN"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 10 * time.Second
	c.NotificationTTL = 5 * time.Second
	c.LogFile = ""
	c.Plain = false
}

// LoadConfig builds a Config from defaults, then the JSON file, then the
// environment, then flags found in args (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
