// Package config loads runtime configuration for the activities client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed ACTIVITIES_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the activities API
//	-t int      per-request timeout (seconds)
//	-n int      how long a notification stays visible (seconds)
//	-l string   diagnostic log file (rotated)
//	-plain      line-oriented REPL instead of the full-screen UI
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "5s" or
// integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:8000",
//	  "request_timeout": "10s",
//	  "notification_ttl": "5s",
//	  "log_file": "/tmp/activities.log",
//	  "plain": false
//	}
package config
