// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

// Package router holds the route table of the web UI.
//
// Route table has exactly one route, "/" which is served by the home view.
// There are no guards, nested routes or redirects. Unmatched paths fall
// through to [http.NotFound].
package router

import (
	"net/http"
	"slices"
)

var (
	_ http.Handler = (*Router)(nil)
)

// RootPath is the path of the home route.
const RootPath = "/"

// HomeRouteName is name of the home route.
const HomeRouteName = "home"

// Route associates a path with a named view.
type Route struct {
	Path string
	Name string
	View http.Handler
}

// Router resolves request paths to routes.
type Router struct {
	routes []Route
}

// New returns a new [Router] which maps "/" to home view.
// If home is nil, [http.NotFoundHandler] is used.
func New(home http.Handler) *Router {
	if home == nil {
		home = http.NotFoundHandler()
	}
	return &Router{
		routes: []Route{
			{
				Path: RootPath,
				Name: HomeRouteName,
				View: home,
			},
		},
	}
}

// Routes returns a copy of the route table.
func (r *Router) Routes() []Route {
	return slices.Clone(r.routes)
}

// Resolve returns the route for path. Only exact matches are considered.
func (r *Router) Resolve(path string) (Route, bool) {
	for _, route := range r.routes {
		if route.Path == path {
			return route, true
		}
	}
	return Route{}, false
}

// ServeHTTP dispatches the request to the view of the matched route.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	route, ok := r.Resolve(req.URL.Path)
	if !ok {
		http.NotFound(w, req)
		return
	}
	route.View.ServeHTTP(w, req)
}
