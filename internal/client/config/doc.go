// Package config loads runtime configuration for the Linkfo CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the API, e.g. http://127.0.0.1:5000/api
//	-f string   path of the local token store
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "10s" or
// integer nanoseconds. Absent keys keep their previous value:
//
//	{
//	  "server_url": "http://127.0.0.1:5000/api",
//	  "token_store_path": "linkfo.db",
//	  "request_timeout": "10s",
//	  "online_check_interval": "30s"
//	}
package config
