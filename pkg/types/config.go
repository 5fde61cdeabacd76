// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared configuration structures for
// grant-reporter.
package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "grant-reporter/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ReporterConfig holds settings for the RePORTER API client.
type ReporterConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxRetries caps retries on rate-limited requests (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ServerConfig holds settings for the hosted MCP server.
type ServerConfig struct {
	// Addr is the HTTP listen address (e.g. ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// AuthTokenSecret names the secret holding the HTTP bearer token.
	// Empty disables authentication.
	AuthTokenSecret string `json:"auth_token_secret,omitempty" yaml:"auth_token_secret,omitempty"`
}

// HistoryConfig holds settings for the invocation log.
type HistoryConfig struct {
	// Path is the SQLite database file. Empty disables the log.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// MaxEntries is the default page size when listing history (default 20).
	MaxEntries int `json:"max_entries" yaml:"max_entries"`
}

// Config groups all grant-reporter configuration.
type Config struct {
	Reporter ReporterConfig `json:"reporter" yaml:"reporter"`
	Server   ServerConfig   `json:"server" yaml:"server"`
	History  HistoryConfig  `json:"history" yaml:"history"`

	// Debug enables debug-level logging.
	Debug bool `json:"debug" yaml:"debug"`
}
