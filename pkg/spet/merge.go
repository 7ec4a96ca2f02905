// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package spet

import "cmp"

// Union returns the set of values in a or b. It is a single two-cursor merge
// over both span sequences in ascending order of start, extending the last
// emitted span whenever the next one overlaps or touches it.
func Union[T cmp.Ordered](a, b Spet[T]) Spet[T] {
	switch {
	case len(a.spans) == 0:
		return b
	case len(b.spans) == 0:
		return a
	}

	r := make([]Span[T], 0, len(a.spans)+len(b.spans))
	add := func(cur Span[T]) {
		if len(r) == 0 {
			r = append(r, cur)
			return
		}
		prev := &r[len(r)-1]
		if cur.start > prev.end {
			r = append(r, cur)
		} else if cur.end > prev.end {
			prev.end = cur.end
		}
	}

	var i, j int
	for i < len(a.spans) && j < len(b.spans) {
		if a.spans[i].Compare(b.spans[j]) <= 0 {
			add(a.spans[i])
			i++
		} else {
			add(b.spans[j])
			j++
		}
	}
	for ; i < len(a.spans); i++ {
		add(a.spans[i])
	}
	for ; j < len(b.spans); j++ {
		add(b.spans[j])
	}
	return fromCanonical(r)
}

// Intersection returns the set of values in both a and b.
func Intersection[T cmp.Ordered](a, b Spet[T]) Spet[T] {
	if len(a.spans) == 0 || len(b.spans) == 0 {
		return Spet[T]{}
	}

	var r []Span[T]
	for i, j := 0, 0; i < len(a.spans) && j < len(b.spans); {
		as, bs := a.spans[i], b.spans[j]
		if overlap, ok := as.Intersect(bs); ok {
			r = append(r, overlap)
		}

		// Only move past the span that ends first: the other one may still
		// overlap the successor of the span we're dropping.
		switch c := cmp.Compare(as.end, bs.end); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			i++
			j++
		}
	}
	return fromCanonical(r)
}

// Integer is the set of scalar types with a successor function, i.e. the
// domains over which closed spans can be cut.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Difference returns the set of values in todo that are not in done. It is
// only defined over integer domains: removing [b, c] from [a, d] leaves
// [a, b-1] and [c+1, d], which have no closed representation over a dense
// domain.
//
// Internally the minuend and subtrahend are labeled as "todo" and "done", i.e.
// conceptually a set of spans "to do" with a subset that has been "done" and
// needs to be removed.
func Difference[T Integer](todo, done Spet[T]) Spet[T] {
	if len(todo.spans) == 0 || len(done.spans) == 0 {
		return todo
	}

	var remaining []Span[T]
	var d, t int
	// cur is what is left of todo.spans[t] after cutting away the done spans
	// seen so far.
	cur := todo.spans[0]
	for t < len(todo.spans) && d < len(done.spans) {
		ds := done.spans[d]
		if ds.start > cur.end {
			// Done span starts after todo span: what's left is kept.
			remaining = append(remaining, cur)
			if t++; t < len(todo.spans) {
				cur = todo.spans[t]
			}
			continue
		}
		if ds.end < cur.start {
			// Done span isn't in todo at all, so pop it off and move on.
			d++
			continue
		}

		// At this point, we know that the two spans overlap.
		if ds.start > cur.start {
			// The beginning of todo is uncovered: split it to remaining.
			remaining = append(remaining, Span[T]{start: cur.start, end: ds.start - 1})
		}
		if ds.end < cur.end {
			// There is todo uncovered after done: pop done, shrink and keep todo.
			cur.start = ds.end + 1
			d++
		} else {
			// Done covers the rest of todo: pop todo, keep consuming done.
			if t++; t < len(todo.spans) {
				cur = todo.spans[t]
			}
		}
	}
	// Just append anything that's left.
	if t < len(todo.spans) {
		remaining = append(remaining, cur)
		remaining = append(remaining, todo.spans[t+1:]...)
	}
	return fromCanonical(remaining)
}
