// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

// Package internal holds test helpers shared by packages in this module.
package internal

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"sync"
)

var (
	_ http.RoundTripper = (*RoundTripFunc)(nil)
	_ http.RoundTripper = (*Recorder)(nil)
)

// RoundTripFunc is an adapter to allow the use of ordinary functions as
// RoundTrippers, similar to [http.HandlerFunc].
type RoundTripFunc func(*http.Request) (*http.Response, error)

// RoundTrip implements the RoundTripper interface by calling f(r).
func (f RoundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// Recorder is a [http.RoundTripper] which records all requests and
// responds with a canned status and body. It never makes network calls.
type Recorder struct {
	Status int    // status code, defaults to 200
	Body   []byte // response body

	mu       sync.Mutex
	requests []*http.Request
}

// RoundTrip implements the RoundTripper interface.
func (r *Recorder) RoundTrip(req *http.Request) (*http.Response, error) {
	r.mu.Lock()
	r.requests = append(r.requests, req)
	r.mu.Unlock()

	status := r.Status
	if status == 0 {
		status = http.StatusOK
	}

	return &http.Response{
		Status:        strconv.Itoa(status) + " " + http.StatusText(status),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        http.Header{"Content-Type": []string{"application/json"}},
		Body:          io.NopCloser(bytes.NewReader(r.Body)),
		ContentLength: int64(len(r.Body)),
		Request:       req,
	}, nil
}

// Requests returns requests recorded so far.
func (r *Recorder) Requests() []*http.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*http.Request(nil), r.requests...)
}
