// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

package starred

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// Options takes a variadic slice of [Option] and returns
// a single [Option] which includes all the given options.
// This is useful for sharing presets. If conflicting options
// are specified, last one specified wins. As a special case,
// if no options are specified or all specified options are nil,
// this will return nil.
func Options(options ...Option) Option {
	nils := 0
	for i := range options {
		if options[i] == nil {
			nils++
		}
	}
	if len(options) == nils {
		return nil
	}

	return &funcOption{
		f: func(c *Client) error {
			var err error
			for i := range options {
				if options[i] != nil {
					err = errors.Join(err, options[i].apply(c))
				}
			}
			return err
		},
	}
}

// Option is option to apply for [Client].
type Option interface {
	apply(c *Client) error
}

// funcOption wraps a function that is applied to the Client
// during its initial configuration. It implements [Option]
// interface.
type funcOption struct {
	f func(*Client) error
}

func (opt *funcOption) apply(c *Client) error {
	return opt.f(c)
}

// WithEndpoint configures [Client] to use custom REST API(v3) endpoint.
// This is useful for GitHub Enterprise Server or for testing.
//
// When not specified or empty, "https://api.github.com" is used.
func WithEndpoint(endpoint string) Option {
	if endpoint == "" {
		return nil
	}
	return &funcOption{
		f: func(c *Client) error {
			u, err := url.Parse(endpoint)
			if err != nil {
				return fmt.Errorf("invalid endpoint url: %w", err)
			}
			switch u.Scheme {
			case "http", "https":
			default:
				return fmt.Errorf("invalid url scheme : %s (%s)", u.Scheme, endpoint)
			}

			if u.Host == "" {
				return fmt.Errorf("endpoint has no host: %s", endpoint)
			}

			if u.Fragment != "" || u.RawQuery != "" {
				return fmt.Errorf("endpoint cannot have query or fragments: %s", endpoint)
			}

			// Paths are appended to the endpoint path, trim trailing slash
			// to avoid empty path segments.
			u.Path = strings.TrimRight(u.Path, "/")
			u.RawPath = ""
			c.baseURL = u
			return nil
		},
	}
}

// WithRoundTripper configures [Client] to use next as underlying [http.RoundTripper].
//
// This can be used to add logging, tracing or recording of requests.
// When not specified, [http.DefaultTransport] is used.
func WithRoundTripper(next http.RoundTripper) Option {
	if next == nil {
		return nil
	}
	return &funcOption{
		f: func(c *Client) error {
			c.next = next
			return nil
		},
	}
}

// WithUserAgent configures user agent header to use for API requests.
// GitHub API rejects requests without a user agent, thus a default one is
// always used when not specified.
func WithUserAgent(ua string) Option {
	if strings.TrimSpace(ua) == "" {
		return nil
	}
	return &funcOption{
		f: func(c *Client) error {
			c.ua = ua
			return nil
		},
	}
}

// WithLogger configures logger for the [Client]. Requests and responses
// are logged at [slog.LevelDebug]. When not specified, nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		return nil
	}
	return &funcOption{
		f: func(c *Client) error {
			c.logger = logger
			return nil
		},
	}
}
