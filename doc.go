// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

// Package starred provides a thin client for listing repositories
// starred by a GitHub user and fetching the user's public profile.
//
// Responses are returned unmodified. Decoding, pagination UI and error
// presentation are left to the caller.
//
//	resp, err := starred.FetchStarredRepos(ctx, "octocat", 1)
//	if resp != nil {
//		defer resp.Body.Close()
//	}
//	if err != nil {
//		return err
//	}
package starred
