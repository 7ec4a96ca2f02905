// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"sync"
	"time"
)

// EveryN rate limits a repetitive log message to at most one per N, as
// measured by the logger's clock.
type EveryN struct {
	N time.Duration

	mu struct {
		sync.Mutex
		last       time.Time
		suppressed int
	}
}

// Every returns an EveryN allowing one message per interval n.
func Every(n time.Duration) *EveryN {
	return &EveryN{N: n}
}

// ShouldLog reports whether the message should be emitted now, and if so, how
// many occurrences were dropped since the last emitted one. With verbosity 2
// or above every occurrence is logged.
func (e *EveryN) ShouldLog() (ok bool, suppressed int) {
	logging.mu.Lock()
	now := logging.mu.now()
	logging.mu.Unlock()
	return e.shouldLog(now)
}

func (e *EveryN) shouldLog(now time.Time) (bool, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !V(2) && !e.mu.last.IsZero() && now.Sub(e.mu.last) < e.N {
		e.mu.suppressed++
		return false, 0
	}
	n := e.mu.suppressed
	e.mu.last, e.mu.suppressed = now, 0
	return true, n
}
