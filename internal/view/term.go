// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tprasadtp/go-starred/internal/api"
)

// Terminal renders users and starred repositories for terminals.
type Terminal struct {
	w        io.Writer
	title    lipgloss.Style
	name     lipgloss.Style
	muted    lipgloss.Style
	language lipgloss.Style
	stars    lipgloss.Style
}

// NewTerminal returns a new [Terminal] writing to w. Color profile is detected
// from w, and colors are disabled if w is not a terminal or if noColor is true.
func NewTerminal(w io.Writer, noColor bool) *Terminal {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Terminal{
		w:        w,
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#58a6ff"}),
		name:     r.NewStyle().Bold(true),
		muted:    r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#59636e", Dark: "#9198a1"}),
		language: r.NewStyle().Foreground(lipgloss.Color("#3fb950")),
		stars:    r.NewStyle().Foreground(lipgloss.Color("#d29922")),
	}
}

// compact formats n as 1.2k, 3.4m etc.
func compact(n int64) string {
	if n < 1_000 {
		return strconv.FormatInt(n, 10)
	}

	// Round to tenths before picking the unit, so that 999_950 is 1.0m
	// and not 1000.0k.
	div := int64(1_000)
	for _, unit := range []string{"k", "m"} {
		tenths := (n*10 + div/2) / div
		if tenths < 10_000 {
			return fmt.Sprintf("%d.%d%s", tenths/10, tenths%10, unit)
		}
		div *= 1_000
	}
	tenths := (n*10 + div/2) / div
	return fmt.Sprintf("%d.%d%s", tenths/10, tenths%10, "b")
}

// RenderUser writes profile of the user.
func (t *Terminal) RenderUser(u api.User) error {
	m := newUserModel(u)

	var b strings.Builder
	if m.Name != "" {
		b.WriteString(t.title.Render(m.Name))
		b.WriteString(" ")
		b.WriteString(t.muted.Render("(" + m.Login + ")"))
	} else {
		b.WriteString(t.title.Render(m.Login))
	}
	b.WriteString("\n")

	if m.Bio != "" {
		b.WriteString(m.Bio)
		b.WriteString("\n")
	}

	if u.PublicRepos != nil {
		b.WriteString(t.muted.Render(fmt.Sprintf("public repositories: %d", *u.PublicRepos)))
		b.WriteString("\n")
	}

	if m.HTMLURL != "" {
		b.WriteString(t.muted.Render(m.HTMLURL))
		b.WriteString("\n")
	}

	_, err := io.WriteString(t.w, b.String())
	return err
}

// RenderPage writes a page of starred repositories followed by page position.
func (t *Terminal) RenderPage(p Page) error {
	var b strings.Builder
	for _, repo := range newRepoModels(p.Repos) {
		b.WriteString(t.name.Render(repo.FullName))
		b.WriteString("  ")
		b.WriteString(t.stars.Render("★ " + compact(repo.Stars)))
		if repo.Language != "" {
			b.WriteString("  ")
			b.WriteString(t.language.Render(repo.Language))
		}
		b.WriteString("\n")
		if repo.Description != "" {
			b.WriteString("  ")
			b.WriteString(t.muted.Render(repo.Description))
			b.WriteString("\n")
		}
	}

	if len(p.Repos) == 0 {
		b.WriteString(t.muted.Render("no starred repositories"))
		b.WriteString("\n")
	}

	position := fmt.Sprintf("page %d", p.Page)
	if p.Last > 0 {
		position = fmt.Sprintf("page %d of %d", p.Page, p.Last)
	}
	if p.HasNext {
		position += fmt.Sprintf(" (next: --page %d)", p.Next())
	}
	b.WriteString(t.muted.Render(position))
	b.WriteString("\n")

	_, err := io.WriteString(t.w, b.String())
	return err
}
