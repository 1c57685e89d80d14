// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

package view

import "github.com/tprasadtp/go-starred/internal/api"

// userModel is a flattened [api.User] for rendering.
type userModel struct {
	Login     string
	Name      string
	AvatarURL string
	HTMLURL   string
	Bio       string
}

// repoModel is a flattened [api.Repository] for rendering.
type repoModel struct {
	FullName    string
	HTMLURL     string
	Description string
	Language    string
	Stars       int64
	Forks       int64
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func num(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func newUserModel(u api.User) *userModel {
	return &userModel{
		Login:     str(u.Login),
		Name:      str(u.Name),
		AvatarURL: str(u.AvatarURL),
		HTMLURL:   str(u.HTMLURL),
		Bio:       str(u.Bio),
	}
}

func newRepoModels(repos []api.Repository) []repoModel {
	rv := make([]repoModel, 0, len(repos))
	for _, repo := range repos {
		m := repoModel{
			FullName:    str(repo.FullName),
			HTMLURL:     str(repo.HTMLURL),
			Description: str(repo.Description),
			Language:    str(repo.Language),
			Stars:       num(repo.StargazersCount),
			Forks:       num(repo.ForksCount),
		}
		// Older API versions may not return full_name.
		if m.FullName == "" {
			m.FullName = str(repo.Name)
			if repo.Owner != nil && repo.Owner.Login != nil {
				m.FullName = *repo.Owner.Login + "/" + m.FullName
			}
		}
		rv = append(rv, m)
	}
	return rv
}
