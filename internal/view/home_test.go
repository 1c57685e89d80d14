// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

package view

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParsePage(t *testing.T) {
	tt := map[string]int{
		"":    1,
		"1":   1,
		"3":   3,
		"0":   1,
		"-1":  1,
		"abc": 1,
		"2.5": 1,
	}
	for input, expect := range tt {
		if got := parsePage(input); got != expect {
			t.Errorf("parsePage(%q)=%d, expected=%d", input, got, expect)
		}
	}
}

func TestHome(t *testing.T) {
	link := `<https://api.github.com/user/583231/starred?page=3&per_page=100>; rel="next", ` +
		`<https://api.github.com/user/583231/starred?page=4&per_page=100>; rel="last", ` +
		`<https://api.github.com/user/583231/starred?page=1&per_page=100>; rel="prev"`
	home := NewHome(newFakeAPI(t, link), nil)

	type testCase struct {
		name     string
		method   string
		target   string
		status   int
		contains []string
		excludes []string
	}
	tt := []testCase{
		{
			name:     "form-only",
			target:   "/",
			status:   http.StatusOK,
			contains: []string{`<form`, `name="user"`},
			excludes: []string{`class="repos"`, `class="error"`},
		},
		{
			name:     "blank-user",
			target:   "/?user=%20%20",
			status:   http.StatusOK,
			contains: []string{`<form`},
			excludes: []string{`class="repos"`, `class="error"`},
		},
		{
			name:   "starred",
			target: "/?user=octocat&page=2",
			status: http.StatusOK,
			contains: []string{
				"The Octocat",
				"octocat/Hello-World",
				"apple/swift",
				"golang/go",
				"The Go programming language",
				"Page 2 of 4",
				"/?user=octocat&amp;page=1",
				"/?user=octocat&amp;page=3",
			},
			excludes: []string{`class="error"`},
		},
		{
			name:     "invalid-page",
			target:   "/?user=octocat&page=abc",
			status:   http.StatusOK,
			contains: []string{"octocat/Hello-World"},
		},
		{
			name:     "not-found",
			target:   "/?user=nonexistent-user-xyz",
			status:   http.StatusNotFound,
			contains: []string{`class="error"`, "Not Found", `value="nonexistent-user-xyz"`},
			excludes: []string{`class="repos"`},
		},
		{
			name:     "escaped-username",
			target:   "/?user=%3Cscript%3E",
			status:   http.StatusNotFound,
			contains: []string{"&lt;script&gt;"},
			excludes: []string{"<script>"},
		},
		{
			name:   "method-not-allowed",
			method: http.MethodPost,
			target: "/",
			status: http.StatusMethodNotAllowed,
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			method := tc.method
			if method == "" {
				method = http.MethodGet
			}

			w := httptest.NewRecorder()
			home.ServeHTTP(w, httptest.NewRequest(method, tc.target, nil))
			if w.Code != tc.status {
				t.Errorf("status=%d, expected=%d", w.Code, tc.status)
			}

			body := w.Body.String()
			for _, s := range tc.contains {
				if !strings.Contains(body, s) {
					t.Errorf("body does not contain %q", s)
				}
			}
			for _, s := range tc.excludes {
				if strings.Contains(body, s) {
					t.Errorf("body must not contain %q", s)
				}
			}
		})
	}

	t.Run("head", func(t *testing.T) {
		w := httptest.NewRecorder()
		home.ServeHTTP(w, httptest.NewRequest(http.MethodHead, "/?user=octocat", nil))
		if w.Code != http.StatusOK {
			t.Errorf("status=%d, expected=200", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Errorf("HEAD response must not have a body")
		}
		if w.Header().Get("Content-Length") == "" {
			t.Errorf("HEAD response must have Content-Length")
		}
	})

	t.Run("content-type", func(t *testing.T) {
		w := httptest.NewRecorder()
		home.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if v := w.Header().Get("Content-Type"); !strings.HasPrefix(v, "text/html") {
			t.Errorf("Content-Type=%s, expected text/html", v)
		}
	})
}
