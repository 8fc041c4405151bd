// Package config loads runtime configuration for the fitkeeper CLI.
//
// Sources, in increasing precedence:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-f string   directory for the local database and device key
//	-t int      per-request timeout (seconds)
//
// JSON keys mirror the flags; durations accept "5s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "data_dir": "/home/me/.fitkeeper",
//	  "request_timeout": "10s",
//	  "log_level": "debug"
//	}
package config
