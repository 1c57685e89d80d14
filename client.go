// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

package starred

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/tprasadtp/go-starred/internal/api"
)

// PerPage is the number of items requested per page by list operations.
// Use this to compute page counts.
const PerPage = 100

// Client is a GitHub REST API client for fetching users and the
// repositories they have starred.
//
// Client is immutable once built and is safe for concurrent use.
// It does not authenticate, cache, retry or interpret rate limits.
// Responses are returned as is.
type Client struct {
	baseURL *url.URL          // REST API v3 base URL
	ua      string            // user agent
	next    http.RoundTripper // next round tripper
	logger  *slog.Logger      // logger
	client  *http.Client      // http client using transport
}

// NewClient creates a new [Client]. Without any options, client uses
// "https://api.github.com" as endpoint and [http.DefaultTransport].
func NewClient(opts ...Option) (*Client, error) {
	var err error
	c := &Client{}

	for i := range opts {
		if opts[i] != nil {
			err = errors.Join(err, opts[i].apply(c))
		}
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOptions, err)
	}

	// If there is no existing round tripper, use DefaultTransport.
	if c.next == nil {
		c.next = http.DefaultTransport
	}

	// If there is not custom user agent specified, use default.
	if c.ua == "" {
		c.ua = api.UAHeaderValue
	}

	// If endpoint is not configured, use default endpoint.
	if c.baseURL == nil {
		c.baseURL, _ = url.Parse(api.DefaultEndpoint)
	}

	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	// No timeout is configured. Use context to abandon requests.
	c.client = &http.Client{
		Transport: &transport{
			host: c.baseURL.Host,
			ua:   c.ua,
			next: c.next,
		},
	}
	return c, nil
}

// Endpoint returns the REST API endpoint used by the client.
func (c *Client) Endpoint() string {
	return c.baseURL.String()
}

// FetchStarredRepos fetches a single page of repositories starred by the user.
// Page size is always [PerPage]. If page is 0, first page is fetched.
//
// Username and page are not validated and are used as is.
//
// Returned response body is not read, and MUST be closed by the caller
// whenever response is not nil. If API responds with non 2xx status,
// both response and [*ResponseError] are returned.
//
// https://docs.github.com/en/rest/activity/starring?apiVersion=2022-11-28#list-repositories-starred-by-a-user
func (c *Client) FetchStarredRepos(ctx context.Context, username string, page int) (*http.Response, error) {
	if page == 0 {
		page = 1
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(PerPage))
	return c.get(ctx, c.endpoint(query, "users", username, "starred"))
}

// FetchUser fetches public profile of the user.
//
// Username is not validated and is used as is. Like [Client.FetchStarredRepos],
// response body MUST be closed by the caller whenever response is not nil.
//
// https://docs.github.com/en/rest/users/users?apiVersion=2022-11-28#get-a-user
func (c *Client) FetchUser(ctx context.Context, username string) (*http.Response, error) {
	return c.get(ctx, c.endpoint(nil, "users", username))
}

// endpoint builds URL for the path elements. Elements are joined verbatim.
// They are neither cleaned nor escaped, thus empty elements result in empty
// path segments and already escaped elements are sent as is.
func (c *Client) endpoint(query url.Values, elem ...string) string {
	var b strings.Builder
	b.WriteString(c.baseURL.String())
	b.WriteString("/")
	b.WriteString(strings.Join(elem, "/"))
	if q := query.Encode(); q != "" {
		b.WriteString("?")
		b.WriteString(q)
	}
	return b.String()
}

// get performs a single GET request. If u is not a valid URL,
// error wraps [ErrRequest] and no request is made.
func (c *Client) get(ctx context.Context, u string) (*http.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "Sending request",
		slog.String("method", r.Method),
		slog.String("url", r.URL.Redacted()),
	)

	resp, err := c.client.Do(r)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelDebug, "Request failed",
			slog.String("url", r.URL.Redacted()),
			slog.Any("err", err),
		)
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "Received response",
		slog.String("url", r.URL.Redacted()),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp, &ResponseError{Response: resp}
	}
	return resp, nil
}

// defaultClient is the process wide client used by package level functions.
var defaultClient = sync.OnceValue(func() *Client {
	c, err := NewClient()
	if err != nil {
		panic(fmt.Sprintf("starred: failed to build default client: %s", err))
	}
	return c
})

// Default returns the process wide [Client] with default options.
// It is built once on first use.
func Default() *Client {
	return defaultClient()
}

// FetchStarredRepos is like [Client.FetchStarredRepos], but uses [Default] client.
func FetchStarredRepos(ctx context.Context, username string, page int) (*http.Response, error) {
	return Default().FetchStarredRepos(ctx, username, page)
}

// FetchUser is like [Client.FetchUser], but uses [Default] client.
func FetchUser(ctx context.Context, username string) (*http.Response, error) {
	return Default().FetchUser(ctx, username)
}
