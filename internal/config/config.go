// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

// Package config loads configuration for the starred command.
//
// Configuration file is optional. Values not present in the file keep
// their defaults, and command line flags override values from the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tprasadtp/go-starred/internal/api"
)

// DefaultAddr is the default listen address of the web UI.
const DefaultAddr = "127.0.0.1:8080"

// Config is configuration for the starred command.
type Config struct {
	// Addr is the address web UI listens on.
	Addr string `yaml:"addr"`

	// Endpoint is GitHub REST API endpoint.
	Endpoint string `yaml:"endpoint"`

	// UserAgent is the user agent used for API requests.
	UserAgent string `yaml:"user_agent"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// NoColor disables colored terminal output.
	NoColor bool `yaml:"no_color"`
}

// Default returns configuration with default values.
func Default() *Config {
	return &Config{
		Addr:      DefaultAddr,
		Endpoint:  api.DefaultEndpoint,
		UserAgent: api.UAHeaderValue,
		LogLevel:  "info",
	}
}

// LoadFile loads configuration from path, merging it over defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg := Default()
	if err = cfg.decode(data); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// decode decodes YAML data into c. Unknown keys are rejected.
func (c *Config) decode(data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err := decoder.Decode(c)
	// Empty file is a valid config.
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Level returns the [slog.Level] for LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level: %q", c.LogLevel)
	}
	return level, nil
}

// Validate checks configuration for errors.
func (c *Config) Validate() error {
	var err error

	if strings.TrimSpace(c.Addr) == "" {
		err = errors.Join(err, errors.New("addr cannot be empty"))
	}

	if c.Endpoint != "" {
		u, parseErr := url.Parse(c.Endpoint)
		switch {
		case parseErr != nil:
			err = errors.Join(err, fmt.Errorf("invalid endpoint: %w", parseErr))
		case u.Scheme != "http" && u.Scheme != "https":
			err = errors.Join(err, fmt.Errorf("invalid endpoint scheme: %q", c.Endpoint))
		}
	}

	if _, levelErr := c.Level(); levelErr != nil {
		err = errors.Join(err, levelErr)
	}
	return err
}
