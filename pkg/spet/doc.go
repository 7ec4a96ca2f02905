// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package spet implements set algebra over closed one-dimensional spans.
//
// A Span is a closed interval [start, end] over any cmp.Ordered domain. A
// Spet ("span set") is an immutable, sorted sequence of spans that are
// pairwise disjoint and non-adjacent; it represents the set of values covered
// by its spans. Spets are built by normalizing arbitrary spans (FromSpans,
// FromSortedSpans) and combined with Union, Intersection, Difference and
// NOverlapping, every one of which returns a new canonical Spet. The typical
// use is reconciling timespans from independent event logs:
//
//	alice := spet.FromSpans(spet.MustSpan(9, 12), spet.MustSpan(13, 17))
//	bob := spet.FromSpans(spet.MustSpan(11, 14))
//	carol := spet.FromSpans(spet.MustSpan(16, 18))
//	busy, _ := spet.NOverlapping(2, alice, bob, carol)
//	// busy is {[11, 12], [13, 14], [16, 17]}
//
// Touching spans are merged: [1, 2] and [2, 3] normalize to [1, 3]. There is
// no notion of a successor value, so over the integers [1, 2] and [3, 4]
// remain two spans.
//
// Callers must not supply values without a total order (NaN). MakeSpan
// rejects NaN endpoints.
//
// Spets are safe for concurrent use by multiple readers; nothing mutates a
// Spet after construction.
package spet
