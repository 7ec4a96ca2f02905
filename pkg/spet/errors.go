// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package spet

import "github.com/cockroachdb/errors"

// ErrInvalidSpan is returned (marked) when a span is constructed with
// start > end, or with an endpoint that has no order (NaN).
var ErrInvalidSpan = errors.New("invalid span")

// ErrInvalidThreshold is returned (marked) when NOverlapping is asked for a
// coverage threshold below one.
var ErrInvalidThreshold = errors.New("invalid overlap threshold")

// ErrNotCanonical is returned (marked) by CheckCanonical.
var ErrNotCanonical = errors.New("span set not canonical")

func invalidSpanError[T any](start, end T) error {
	return errors.Mark(
		errors.Newf("span start %v is after end %v", start, end), ErrInvalidSpan)
}
