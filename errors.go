// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

package starred

import (
	"fmt"
	"net/http"
)

var (
	_ error = Error("")
	_ error = (*ResponseError)(nil)
)

// Error is immutable error representation.
//
// Error strings themselves are NOT part of semver compatibility guarantees.
// Use exported symbols instead of directly using error strings.
type Error string

// Implements Error() interface.
func (e Error) Error() string {
	return string(e)
}

const (
	// ErrOptions is returned by [NewClient] when options are invalid.
	ErrOptions = Error("starred: invalid options")

	// ErrRequest is returned when a request cannot be built or sent.
	ErrRequest = Error("starred: request failed")

	// ErrHost is returned when a request is not for the API endpoint host.
	// Redirects to other hosts are not followed.
	ErrHost = Error("starred: request host does not match endpoint")
)

// ResponseError is returned when API responds with a non 2xx status.
//
// Response is returned as is. Its body is not read, and it is the same
// response returned alongside the error, thus closing either closes both.
// Error body is not interpreted. Rate limit responses are treated like
// any other non 2xx response.
type ResponseError struct {
	Response *http.Response
}

// StatusCode returns HTTP status code of the response.
func (e *ResponseError) StatusCode() int {
	if e == nil || e.Response == nil {
		return 0
	}
	return e.Response.StatusCode
}

// Implements Error() interface.
func (e *ResponseError) Error() string {
	if e == nil || e.Response == nil {
		return "starred: <nil> response"
	}

	if e.Response.Request != nil && e.Response.Request.URL != nil {
		return fmt.Sprintf("starred: %s %s: %s",
			e.Response.Request.Method, e.Response.Request.URL.Redacted(), e.Response.Status)
	}
	return fmt.Sprintf("starred: %s", e.Response.Status)
}
