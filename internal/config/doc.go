// Package config provides configuration loading, merging, and validation
// facilities for the readsync client and blob server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables, including those loaded from a .env file
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] and [GetServerConfig]; both
// build on [GetStructuredConfig].
package config
