// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

// Package view implements the presentation layer for starred repositories.
//
// [Home] renders a user's profile and starred repositories as HTML,
// [Terminal] renders the same data for the command line.
package view

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/tprasadtp/go-starred/internal/api"
)

var (
	_ http.Handler = (*Home)(nil)
)

//go:embed templates/*.html
var templates embed.FS

var homeTemplate = template.Must(template.ParseFS(templates, "templates/home.html"))

// homeData is data passed to home template.
type homeData struct {
	Username   string
	User       *userModel
	Repos      []repoModel
	Pagination Pagination
	Error      *Error
}

// Home is the view listing repositories starred by a user.
//
// Username and page are read from "user" and "page" query parameters.
// When username is empty, only the search form is rendered.
type Home struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// NewHome returns a new [Home] view. If logger is nil, nothing is logged.
func NewHome(f Fetcher, logger *slog.Logger) *Home {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Home{
		fetcher: f,
		logger:  logger,
	}
}

// parsePage parses page query parameter. Invalid values fall back to 1.
func parsePage(s string) int {
	page, err := strconv.Atoi(s)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (h *Home) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
	default:
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	query := r.URL.Query()
	data := homeData{
		Username:   strings.TrimSpace(query.Get("user")),
		Pagination: Pagination{Page: parsePage(query.Get("page"))},
	}

	if data.Username == "" {
		h.render(w, r, http.StatusOK, data)
		return
	}

	user, err := FetchUser(ctx, h.fetcher, data.Username)
	if err != nil {
		h.fail(w, r, data, err)
		return
	}
	data.User = newUserModel(user)

	page, err := FetchPage(ctx, h.fetcher, data.Username, data.Pagination.Page)
	if err != nil {
		h.fail(w, r, data, err)
		return
	}
	data.Repos = newRepoModels(page.Repos)
	data.Pagination = page.Pagination

	h.logger.LogAttrs(ctx, slog.LevelDebug, "Rendered starred repositories",
		slog.String("user", data.Username),
		slog.Int("page", data.Pagination.Page),
		slog.Int("count", len(data.Repos)),
	)
	h.render(w, r, http.StatusOK, data)
}

// fail renders the error.
func (h *Home) fail(w http.ResponseWriter, r *http.Request, data homeData, err error) {
	var viewErr *Error
	if !errors.As(err, &viewErr) {
		viewErr = &Error{
			Status:  http.StatusInternalServerError,
			Message: http.StatusText(http.StatusInternalServerError),
			Err:     err,
		}
	}

	level := slog.LevelWarn
	if viewErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.LogAttrs(r.Context(), level, "Failed to fetch starred repositories",
		slog.String("user", data.Username),
		slog.Int("status", viewErr.Status),
		slog.Any("err", err),
	)

	data.User = nil
	data.Repos = nil
	data.Error = viewErr
	h.render(w, r, viewErr.Status, data)
}

// render executes home template. Template is rendered to a buffer first,
// so that template errors do not result in partial responses.
func (h *Home) render(w http.ResponseWriter, r *http.Request, status int, data homeData) {
	var buf bytes.Buffer
	err := homeTemplate.Execute(&buf, data)
	if err != nil {
		h.logger.LogAttrs(r.Context(), slog.LevelError, "Failed to render template",
			slog.Any("err", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set(api.ContentTypeHeader, api.ContentTypeHTML)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = buf.WriteTo(w)
	}
}
