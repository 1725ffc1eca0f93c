// Package config provides configuration loading, merging, and validation
// for the job tracker server and its command-line client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file and environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
