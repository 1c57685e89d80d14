// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

package view

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tprasadtp/go-starred"
	"github.com/tprasadtp/go-starred/internal/api"
	"github.com/tprasadtp/go-starred/internal/testdata/apitestdata"
)

// newFakeAPI returns a client for a fake GitHub API serving recorded responses
// for [apitestdata.Username]. All other users are not found.
func newFakeAPI(t *testing.T, link string) *starred.Client {
	t.Helper()

	data := apitestdata.Get(t)
	mux := http.NewServeMux()
	write := func(w http.ResponseWriter, status int, body []byte) {
		w.Header().Set(api.ContentTypeHeader, api.ContentTypeJSON)
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}

	mux.HandleFunc("/users/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/" + apitestdata.Username:
			write(w, http.StatusOK, data[apitestdata.User])
		case "/users/" + apitestdata.Username + "/starred":
			if link != "" {
				w.Header().Set(api.LinkHeader, link)
			}
			write(w, http.StatusOK, data[apitestdata.Starred])
		case "/users/broken":
			write(w, http.StatusOK, []byte(`{"login":`))
		default:
			write(w, http.StatusNotFound, data[apitestdata.NotFound])
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := starred.NewClient(starred.WithEndpoint(server.URL))
	if err != nil {
		t.Fatalf("failed to build client: %s", err)
	}
	return client
}
