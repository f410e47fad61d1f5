// Package config loads runtime configuration for the Ember CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-d string   path of the local credential database
//	-p int      feed page size
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "https://api.ember.example/api/v1",
//	  "request_timeout": "10s",
//	  "credential_db_path": "ember.db",
//	  "feed_page_size": 10,
//	  "swipes_per_second": 4
//	}
package config
