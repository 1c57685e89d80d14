// SPDX-FileCopyrightText: Copyright 2024 Prasad Tengse
// SPDX-License-Identifier: MIT

// Package shared holds helpers shared by tests.
package shared

import (
	"context"
	"testing"
	"time"
)

// TestingCtx returns a context which expires with the test deadline.
// If test has no deadline, timeout is used instead.
//
// Ideally we would set per test timeouts, but they are not available yet.
// See https://github.com/golang/go/issues/48157 for more info.
func TestingCtx(t *testing.T, timeout time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()

	if ts, ok := t.Deadline(); ok {
		return context.WithDeadline(context.Background(), ts)
	}

	if timeout <= 0 {
		t.Logf("Ignoring invalid timeout value: %s", timeout)
		timeout = time.Second * 30
	}
	return context.WithTimeout(context.Background(), timeout)
}
