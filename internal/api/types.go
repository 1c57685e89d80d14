// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

// Package api holds types to deserialize responses from GitHub API.
//
// API client returns raw responses. These types are only used by the
// presentation layer and are just enough to render a profile card and
// a list of starred repositories. They should be considered incomplete.
package api

// User represents a GitHub user. This is incomplete!
//
// https://docs.github.com/en/rest/users/users?apiVersion=2022-11-28#get-a-user
type User struct {
	Login       *string `json:"login,omitempty"`
	ID          *int64  `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	HTMLURL     *string `json:"html_url,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	PublicRepos *int64  `json:"public_repos,omitempty"`
}

// Repository represents a GitHub repository. This is incomplete!
//
// https://docs.github.com/en/rest/activity/starring?apiVersion=2022-11-28#list-repositories-starred-by-a-user
type Repository struct {
	ID              *int64  `json:"id,omitempty"`
	Owner           *User   `json:"owner,omitempty"`
	Name            *string `json:"name,omitempty"`
	FullName        *string `json:"full_name,omitempty"`
	HTMLURL         *string `json:"html_url,omitempty"`
	Description     *string `json:"description,omitempty"`
	Language        *string `json:"language,omitempty"`
	StargazersCount *int64  `json:"stargazers_count,omitempty"`
	ForksCount      *int64  `json:"forks_count,omitempty"`
}

// ErrorResponse is the error body returned by GitHub API for non 2xx responses.
type ErrorResponse struct {
	Message          string `json:"message,omitempty"` // error message
	DocumentationURL string `json:"documentation_url,omitempty"`
}
