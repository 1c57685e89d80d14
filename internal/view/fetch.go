// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

package view

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/tprasadtp/go-starred"
	"github.com/tprasadtp/go-starred/internal/api"
)

// Fetcher fetches raw API responses. [*starred.Client] implements it.
type Fetcher interface {
	FetchStarredRepos(ctx context.Context, username string, page int) (*http.Response, error)
	FetchUser(ctx context.Context, username string) (*http.Response, error)
}

var (
	_ Fetcher = (*starred.Client)(nil)
	_ error   = (*Error)(nil)
)

// maxBodySize limits size of response bodies decoded by views.
const maxBodySize = 32 << 20

// Error is an error suitable to show to the user.
type Error struct {
	Status  int    // HTTP status to respond with
	Message string // message to show
	Err     error  // underlying error
}

// Implements Error() interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// newError converts errors returned by [Fetcher] to [*Error].
//
// For non 2xx API responses, status code is preserved and message
// is read from the error response if available. All other errors
// are reported as [http.StatusBadGateway].
func newError(err error) *Error {
	var respErr *starred.ResponseError
	if errors.As(err, &respErr) && respErr.Response != nil {
		e := &Error{
			Status:  respErr.StatusCode(),
			Message: respErr.Response.Status,
			Err:     err,
		}

		// Redirects which were not followed are not errors the user can act on.
		if e.Status < http.StatusBadRequest {
			e.Status = http.StatusBadGateway
		}

		if respErr.Response.Body != nil {
			data, _ := io.ReadAll(io.LimitReader(respErr.Response.Body, maxBodySize))
			errResp := api.ErrorResponse{}
			if json.Unmarshal(data, &errResp) == nil && errResp.Message != "" {
				e.Message = errResp.Message
			}
		}
		return e
	}

	return &Error{
		Status:  http.StatusBadGateway,
		Message: "GitHub API is not reachable",
		Err:     err,
	}
}

// decode reads and decodes the response body into v.
func decode(resp *http.Response, v any) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &Error{
			Status:  http.StatusBadGateway,
			Message: "failed to read response",
			Err:     err,
		}
	}

	err = json.Unmarshal(data, v)
	if err != nil {
		return &Error{
			Status:  http.StatusBadGateway,
			Message: "failed to unmarshal response",
			Err:     err,
		}
	}
	return nil
}

// FetchUser fetches and decodes public profile of the user.
func FetchUser(ctx context.Context, f Fetcher, username string) (api.User, error) {
	resp, err := f.FetchUser(ctx, username)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return api.User{}, newError(err)
	}

	user := api.User{}
	if err = decode(resp, &user); err != nil {
		return api.User{}, err
	}
	return user, nil
}

// Page is a single page of starred repositories.
type Page struct {
	Pagination
	Repos []api.Repository
}

// FetchPage fetches and decodes a single page of repositories starred by the user.
func FetchPage(ctx context.Context, f Fetcher, username string, page int) (Page, error) {
	resp, err := f.FetchStarredRepos(ctx, username, page)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return Page{}, newError(err)
	}

	repos := make([]api.Repository, 0, starred.PerPage)
	if err = decode(resp, &repos); err != nil {
		return Page{}, err
	}

	return Page{
		Pagination: Paginate(resp.Header, page, len(repos)),
		Repos:      repos,
	}, nil
}
