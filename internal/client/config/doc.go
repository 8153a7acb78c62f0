// Package config loads runtime configuration for the parasearch CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, then the process environment.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string     base URL of the paragraph API
//	-s string     path of the local session database
//	-t int        request timeout in seconds (0 disables it)
//	-log-file     path of the rotating diagnostic log
//	-log-level    debug, info, warn or error
//	-ephemeral    keep the session in memory only
//
// Environment
//
//	PARASEARCH_API_URL      base URL of the paragraph API
//	PARASEARCH_SESSION_DB   path of the local session database
//
// # JSON schema
//
// Timeouts use timex.Duration, so they may be strings like "10s" or integer
// nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000/api/",
//	  "session_db_path": "parasearch.db",
//	  "request_timeout": "10s",
//	  "log_file": "parasearch.log",
//	  "log_level": "info",
//	  "ephemeral": false
//	}
package config
