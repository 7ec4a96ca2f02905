// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package spet

import (
	"cmp"

	"github.com/cockroachdb/redact"
)

// Span is a closed interval [start, end] with start <= end. The zero value is
// the single-point span [0, 0] of T's zero value; spans are otherwise only
// obtained through MakeSpan and its variants.
type Span[T cmp.Ordered] struct {
	start, end T
}

// MakeSpan returns the span [start, end]. It fails with an error marked with
// ErrInvalidSpan if start > end or if either endpoint is unordered (NaN). The
// endpoints are never swapped.
func MakeSpan[T cmp.Ordered](start, end T) (Span[T], error) {
	// NB: written as a negation so that NaN endpoints are rejected.
	if !(start <= end) {
		return Span[T]{}, invalidSpanError(start, end)
	}
	return Span[T]{start: start, end: end}, nil
}

// MustSpan is like MakeSpan but panics on an invalid span. It is meant for
// literals in tests and examples.
func MustSpan[T cmp.Ordered](start, end T) Span[T] {
	s, err := MakeSpan(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

// PointSpan returns the span [v, v].
func PointSpan[T cmp.Ordered](v T) Span[T] {
	return MustSpan(v, v)
}

// Start returns the lower bound of the span.
func (s Span[T]) Start() T { return s.start }

// End returns the upper bound of the span.
func (s Span[T]) End() T { return s.end }

// Contains returns whether v lies within [start, end].
func (s Span[T]) Contains(v T) bool {
	return s.start <= v && v <= s.end
}

// Overlaps returns whether the two spans share at least one value. Spans that
// touch at an endpoint overlap.
func (s Span[T]) Overlaps(o Span[T]) bool {
	return max(s.start, o.start) <= min(s.end, o.end)
}

// Adjacent returns whether one span ends exactly where the other starts.
func (s Span[T]) Adjacent(o Span[T]) bool {
	return s.end == o.start || o.end == s.start
}

// Touches returns whether the spans overlap or are adjacent, i.e. whether
// normalization merges them into one.
func (s Span[T]) Touches(o Span[T]) bool {
	return s.Overlaps(o) || s.Adjacent(o)
}

// Intersect returns the span of values common to both spans. The boolean is
// false if they do not overlap.
func (s Span[T]) Intersect(o Span[T]) (Span[T], bool) {
	if !s.Overlaps(o) {
		return Span[T]{}, false
	}
	return Span[T]{start: max(s.start, o.start), end: min(s.end, o.end)}, true
}

// Compare orders spans by start, then by end.
func (s Span[T]) Compare(o Span[T]) int {
	if c := cmp.Compare(s.start, o.start); c != 0 {
		return c
	}
	return cmp.Compare(s.end, o.end)
}

// Equal returns whether the spans have identical endpoints.
func (s Span[T]) Equal(o Span[T]) bool {
	return s.start == o.start && s.end == o.end
}

// String implements fmt.Stringer.
func (s Span[T]) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter. The endpoints are rendered as
// unsafe values.
func (s Span[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("[%v, %v]", s.start, s.end)
}
