// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

package starred

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"strings"

	"github.com/tprasadtp/go-starred/internal/api"
)

var (
	_ http.RoundTripper = (*transport)(nil)
)

// transport wraps an existing [http.RoundTripper] and populates headers
// required by GitHub REST API.
//
// 'Accept' header is always overridden with media type for REST API v3.
// 'User-Agent' header is only populated if request does not have one.
// Requests for hosts other than the API endpoint host are rejected.
type transport struct {
	host string            // API endpoint host
	ua   string            // user agent
	next http.RoundTripper // next round tripper
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, errors.New("starred(RoundTrip): request is nil")
	}

	if req.URL == nil || !strings.EqualFold(t.host, req.URL.Host) {
		var host string
		if req.URL != nil {
			host = req.URL.Host
		}
		return nil, fmt.Errorf("%w: host for round tripper(%s) does not match host for request(%s)",
			ErrHost, t.host, host)
	}

	clone := cloneRequest(req) // RoundTripper should not modify request
	clone.Header.Set(api.AcceptHeader, api.AcceptHeaderValue)
	if clone.Header.Get(api.UAHeader) == "" {
		clone.Header.Set(api.UAHeader, t.ua)
	}

	//nolint:wrapcheck // don't wrap errors returned by underlying round-tripper.
	return t.next.RoundTrip(clone)
}

// cloneRequest returns a clone of the provided *http.Request.
// The clone is a shallow copy of the struct and its shallow copy of
// Header map.
func cloneRequest(r *http.Request) *http.Request {
	// shallow copy of the struct
	clone := new(http.Request)
	*clone = *r

	// shallow copy of the Headers.
	clone.Header = maps.Clone(r.Header)
	if clone.Header == nil {
		clone.Header = make(http.Header)
	}
	return clone
}
