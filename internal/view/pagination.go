// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

package view

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tprasadtp/go-starred"
	"github.com/tprasadtp/go-starred/internal/api"
)

// parseLinks extracts URLs keyed by their relation type from an RFC 8288
// Link header. Returns nil if there are no links.
//
// Format: <https://api.github.com/...?page=2>; rel="next", <...>; rel="last"
func parseLinks(header string) map[string]string {
	if header == "" {
		return nil
	}

	var links map[string]string
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)

		// Each part is: <url>; rel="type"
		urlPart, params, ok := strings.Cut(part, ";")
		if !ok {
			continue
		}

		urlPart = strings.TrimSpace(urlPart)
		if !strings.HasPrefix(urlPart, "<") || !strings.HasSuffix(urlPart, ">") {
			continue
		}

		for _, param := range strings.Split(params, ";") {
			key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || key != "rel" {
				continue
			}
			if links == nil {
				links = make(map[string]string)
			}
			// rel may hold multiple space separated relation types.
			for _, rel := range strings.Fields(strings.Trim(value, `"`)) {
				links[rel] = urlPart[1 : len(urlPart)-1]
			}
		}
	}
	return links
}

// pageOf returns value of "page" query parameter in link.
func pageOf(link string) (int, bool) {
	u, err := url.Parse(link)
	if err != nil {
		return 0, false
	}
	page, err := strconv.Atoi(u.Query().Get("page"))
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

// Pagination describes position of a page within a list.
type Pagination struct {
	Page    int  // current page
	Last    int  // last page, 0 if unknown
	HasPrev bool // there is a previous page
	HasNext bool // there is a next page
}

// Paginate computes pagination from response headers of the current page
// and number of items in it.
//
// When the Link header is missing, a full page (of [starred.PerPage] items)
// is assumed to have a next page.
func Paginate(h http.Header, page, count int) Pagination {
	if page < 1 {
		page = 1
	}

	p := Pagination{
		Page:    page,
		HasPrev: page > 1,
	}

	links := parseLinks(h.Get(api.LinkHeader))
	if links == nil {
		p.HasNext = count >= starred.PerPage
		if !p.HasNext {
			p.Last = page
		}
		return p
	}

	_, p.HasNext = links["next"]
	if last, ok := pageOf(links["last"]); ok {
		p.Last = last
	} else if !p.HasNext {
		p.Last = page
	}
	return p
}

// Prev returns previous page number.
func (p Pagination) Prev() int {
	if p.Page <= 1 {
		return 1
	}
	return p.Page - 1
}

// Next returns next page number.
func (p Pagination) Next() int {
	return p.Page + 1
}
