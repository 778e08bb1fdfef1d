// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package fileutils

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// DefaultLockTimeout is the maximum time to wait for a file lock
const DefaultLockTimeout = 1 * time.Second

const lockRetryDelay = 100 * time.Millisecond

// WithFileLock runs fn while holding an exclusive advisory lock on path+".lock".
// A separate lock file is used so the guarded file itself can be replaced by rename.
func WithFileLock(ctx context.Context, path string, timeout time.Duration, fn func() error) error {
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}

	fileLock := flock.New(path + ".lock")
	lockCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	locked, err := fileLock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock: timeout after %v", timeout)
	}
	defer func() {
		_ = fileLock.Unlock()
	}()

	return fn()
}
