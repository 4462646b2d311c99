// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. For every field the first
// source holding a non-zero value wins:
//  1. Environment variables, including those loaded from a .env file
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and the
// operator tools and [GetClientConfig] for the terminal client.
package config
