// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

package view

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/tprasadtp/go-starred"
	"github.com/tprasadtp/go-starred/internal"
	"github.com/tprasadtp/go-starred/internal/shared"
	"github.com/tprasadtp/go-starred/internal/testdata/apitestdata"
)

func TestFetchUser(t *testing.T) {
	client := newFakeAPI(t, "")

	t.Run("ok", func(t *testing.T) {
		ctx, cancel := shared.TestingCtx(t, time.Second*10)
		defer cancel()

		user, err := FetchUser(ctx, client, apitestdata.Username)
		if err != nil {
			t.Fatalf("expected no error, got %s", err)
		}
		if str(user.Login) != apitestdata.Username {
			t.Errorf("login=%s, expected=%s", str(user.Login), apitestdata.Username)
		}
		if str(user.Name) != "The Octocat" {
			t.Errorf("name=%s, expected=The Octocat", str(user.Name))
		}
	})

	t.Run("not-found", func(t *testing.T) {
		ctx, cancel := shared.TestingCtx(t, time.Second*10)
		defer cancel()

		_, err := FetchUser(ctx, client, "nonexistent-user-xyz")
		var viewErr *Error
		if !errors.As(err, &viewErr) {
			t.Fatalf("expected *Error, got %T(%v)", err, err)
		}
		if viewErr.Status != http.StatusNotFound {
			t.Errorf("status=%d, expected=404", viewErr.Status)
		}
		if viewErr.Message != "Not Found" {
			t.Errorf("message=%q, expected=%q", viewErr.Message, "Not Found")
		}

		var respErr *starred.ResponseError
		if !errors.As(err, &respErr) {
			t.Errorf("expected underlying *starred.ResponseError")
		}
	})

	t.Run("invalid-json", func(t *testing.T) {
		ctx, cancel := shared.TestingCtx(t, time.Second*10)
		defer cancel()

		_, err := FetchUser(ctx, client, "broken")
		var viewErr *Error
		if !errors.As(err, &viewErr) {
			t.Fatalf("expected *Error, got %T(%v)", err, err)
		}
		if viewErr.Status != http.StatusBadGateway {
			t.Errorf("status=%d, expected=502", viewErr.Status)
		}
	})

	t.Run("transport-error", func(t *testing.T) {
		ctx, cancel := shared.TestingCtx(t, time.Second*10)
		defer cancel()

		broken, err := starred.NewClient(
			starred.WithRoundTripper(internal.RoundTripFunc(func(*http.Request) (*http.Response, error) {
				return nil, errors.New("no route to host")
			})),
		)
		if err != nil {
			t.Fatalf("failed to build client: %s", err)
		}

		_, err = FetchUser(ctx, broken, apitestdata.Username)
		var viewErr *Error
		if !errors.As(err, &viewErr) {
			t.Fatalf("expected *Error, got %T(%v)", err, err)
		}
		if viewErr.Status != http.StatusBadGateway {
			t.Errorf("status=%d, expected=502", viewErr.Status)
		}
		if !errors.Is(err, starred.ErrRequest) {
			t.Errorf("expected underlying ErrRequest")
		}
	})

	t.Run("unfollowed-redirect", func(t *testing.T) {
		ctx, cancel := shared.TestingCtx(t, time.Second*10)
		defer cancel()

		redirect, err := starred.NewClient(
			starred.WithRoundTripper(&internal.Recorder{Status: http.StatusNotModified}),
		)
		if err != nil {
			t.Fatalf("failed to build client: %s", err)
		}

		_, err = FetchUser(ctx, redirect, apitestdata.Username)
		var viewErr *Error
		if !errors.As(err, &viewErr) {
			t.Fatalf("expected *Error, got %T(%v)", err, err)
		}
		if viewErr.Status != http.StatusBadGateway {
			t.Errorf("status=%d, expected=502", viewErr.Status)
		}
	})
}

func TestFetchPage(t *testing.T) {
	t.Run("single-page", func(t *testing.T) {
		ctx, cancel := shared.TestingCtx(t, time.Second*10)
		defer cancel()

		client := newFakeAPI(t, "")
		page, err := FetchPage(ctx, client, apitestdata.Username, 0)
		if err != nil {
			t.Fatalf("expected no error, got %s", err)
		}
		if len(page.Repos) != apitestdata.StarredCount {
			t.Errorf("repos=%d, expected=%d", len(page.Repos), apitestdata.StarredCount)
		}
		expect := Pagination{Page: 1, Last: 1}
		if page.Pagination != expect {
			t.Errorf("pagination=%+v, expected=%+v", page.Pagination, expect)
		}
	})

	t.Run("with-link", func(t *testing.T) {
		ctx, cancel := shared.TestingCtx(t, time.Second*10)
		defer cancel()

		client := newFakeAPI(t,
			`<https://api.github.com/user/583231/starred?page=3&per_page=100>; rel="next", `+
				`<https://api.github.com/user/583231/starred?page=9&per_page=100>; rel="last"`)
		page, err := FetchPage(ctx, client, apitestdata.Username, 2)
		if err != nil {
			t.Fatalf("expected no error, got %s", err)
		}
		expect := Pagination{Page: 2, Last: 9, HasPrev: true, HasNext: true}
		if page.Pagination != expect {
			t.Errorf("pagination=%+v, expected=%+v", page.Pagination, expect)
		}
	})

	t.Run("not-found", func(t *testing.T) {
		ctx, cancel := shared.TestingCtx(t, time.Second*10)
		defer cancel()

		client := newFakeAPI(t, "")
		_, err := FetchPage(ctx, client, "nonexistent-user-xyz", 1)
		var viewErr *Error
		if !errors.As(err, &viewErr) {
			t.Fatalf("expected *Error, got %T(%v)", err, err)
		}
		if viewErr.Status != http.StatusNotFound {
			t.Errorf("status=%d, expected=404", viewErr.Status)
		}
	})
}
