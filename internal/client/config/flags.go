package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/activityboard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only the flags owned here are looked at, so -c/-config and anything
// unknown pass through untouched.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-n", "-l"}, "-plain")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the activities API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	ttl := fs.Int("n", int(cfg.NotificationTTL.Seconds()), "notification display time (in seconds)")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "diagnostic log file")
	fs.BoolVar(&cfg.Plain, "plain", cfg.Plain, "use the line-oriented REPL")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Durations are only touched when given, so sub-second values from
	// JSON or the environment survive.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		case "n":
			cfg.NotificationTTL = time.Duration(*ttl) * time.Second
		}
	})
	return nil
}
