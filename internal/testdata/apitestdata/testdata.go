// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

// Package apitestdata holds recorded GitHub API responses for tests.
package apitestdata

import (
	"embed"
	"io/fs"
	"maps"
	"path"
	"strings"
	"sync"
	"testing"
)

// Username is the user whose responses are recorded.
const Username = "octocat"

// StarredCount is number of repositories in the starred fixture.
const StarredCount = 3

// Fixture names.
const (
	User     = "user"
	Starred  = "starred"
	NotFound = "not-found"
)

//go:embed *.json
var files embed.FS

// Read api data once.
var once sync.Once

// API data storage.
var apiDataMap map[string][]byte

// Get returns API test data which is a map of fixture names to JSON responses.
// Both file name and file name without extension are valid keys.
func Get(t *testing.T) map[string][]byte {
	t.Helper()

	once.Do(func() {
		items, err := fs.Glob(files, "*.json")
		if err != nil || len(items) == 0 {
			return
		}

		m := make(map[string][]byte, len(items)*2)
		for _, item := range items {
			slurp, err := files.ReadFile(item)
			if err != nil {
				return
			}
			m[item] = slurp
			m[strings.TrimSuffix(item, path.Ext(item))] = slurp
		}
		apiDataMap = m
	})

	if apiDataMap == nil {
		t.Fatalf("failed to populate api data")
	}

	// Return clone of the map, as some callers may mutate map keys.
	return maps.Clone(apiDataMap)
}
