// SPDX-FileCopyrightText: Copyright 2024 Prasad Tengse
// SPDX-License-Identifier: MIT

package api

// Common headers used by this module.
const (
	AcceptHeader      = "Accept"
	AcceptHeaderValue = "application/vnd.github.v3+json"
	UAHeader          = "User-Agent"
	UAHeaderValue     = "github.com/tprasadtp/go-starred/v0"
	LinkHeader        = "Link"
	ContentTypeHeader = "Content-Type"
	ContentTypeJSON   = "application/json"
	ContentTypeHTML   = "text/html; charset=utf-8"
)
