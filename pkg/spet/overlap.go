// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package spet

import (
	"cmp"

	"github.com/cockroachdb/errors"
)

// NOverlapping returns the set of values covered by at least k of the given
// sets. It fails with an error marked with ErrInvalidThreshold if k < 1; if k
// exceeds the number of sets the result is empty.
//
// The sets' endpoints are swept in order (see Points) while counting how many
// sets cover the sweep line. A region opens when the count reaches k and
// closes when it drops back below k. At a single coordinate all starts are
// applied before any end, so spans that merely touch still cover their shared
// endpoint together: [0, 5] and [5, 10] have [5, 5] in common.
func NOverlapping[T cmp.Ordered](k int, sets ...Spet[T]) (Spet[T], error) {
	if k < 1 {
		return Spet[T]{}, errors.Mark(
			errors.Newf("overlap threshold %d must be at least 1", k), ErrInvalidThreshold)
	}
	if k > len(sets) {
		return Spet[T]{}, nil
	}
	return nOverlapping(k, sets), nil
}

func nOverlapping[T cmp.Ordered](k int, sets []Spet[T]) Spet[T] {
	var r []Span[T]
	var active int
	var pendingStart T
	for p := range Points(sets...) {
		switch p.Kind {
		case StartPoint:
			active++
			if active == k {
				pendingStart = p.Span.start
			}
		case EndPoint:
			if active == k {
				r = append(r, Span[T]{start: pendingStart, end: p.Span.end})
			}
			active--
		}
	}
	return fromCanonical(r)
}

// UnionAll returns the set of values covered by any of the sets.
func UnionAll[T cmp.Ordered](sets ...Spet[T]) Spet[T] {
	switch len(sets) {
	case 0:
		return Spet[T]{}
	case 1:
		return sets[0]
	case 2:
		return Union(sets[0], sets[1])
	}
	return nOverlapping(1, sets)
}

// IntersectAll returns the set of values covered by every one of the sets. The
// intersection of no sets is empty.
func IntersectAll[T cmp.Ordered](sets ...Spet[T]) Spet[T] {
	switch len(sets) {
	case 0:
		return Spet[T]{}
	case 1:
		return sets[0]
	case 2:
		return Intersection(sets[0], sets[1])
	}
	return nOverlapping(len(sets), sets)
}
