// Package config loads, merges and validates go-diffsync configuration.
//
// Values come from several sources. For every field the first source that
// sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (-c / CONFIG)
//  4. Built-in defaults
//
// [GetStructuredConfig] returns the server configuration, [GetClientConfig]
// the client view of the same sources.
package config
