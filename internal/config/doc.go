// Package config loads runtime configuration for the conduit CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-d string   data directory for local state (BadgerDB)
//	-t int      per-request timeout in seconds (0 = no timeout)
//
// # JSON schema
//
// The JSON loader uses timex.Duration, so durations can be either strings
// like "30s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.realworld.io/api",
//	  "data_dir": ".conduit",
//	  "request_timeout": "30s"
//	}
package config
