// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package spet

import (
	"cmp"
	"iter"
	"slices"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/spet/pkg/util/buildutil"
)

// Spet is an immutable set of values represented as a sorted sequence of
// closed spans. For consecutive spans s[i], s[i+1] it always holds that
// s[i].End() < s[i+1].Start(): spans never overlap nor touch. The zero value
// is the empty set.
type Spet[T cmp.Ordered] struct {
	spans []Span[T]
}

// FromSpans returns the canonical Spet covering the union of the given spans,
// which may be unsorted, overlapping or touching. The input is not retained or
// modified.
func FromSpans[T cmp.Ordered](spans ...Span[T]) Spet[T] {
	if len(spans) == 0 {
		return Spet[T]{}
	}
	sorted := slices.Clone(spans)
	// Sort first on start and second on end, stable so that the result does
	// not depend on the sort implementation.
	slices.SortStableFunc(sorted, Span[T].Compare)
	return Spet[T]{spans: mergeSorted(sorted)}
}

// FromSortedSpans is like FromSpans but skips the sort. The spans must be in
// ascending order of start; they may overlap or touch. Passing unsorted spans
// yields an undefined result; builds with the invariants tag panic instead.
func FromSortedSpans[T cmp.Ordered](spans ...Span[T]) Spet[T] {
	if len(spans) == 0 {
		return Spet[T]{}
	}
	if buildutil.Invariants {
		for i := 1; i < len(spans); i++ {
			if spans[i].start < spans[i-1].start {
				panic(errors.AssertionFailedf(
					"FromSortedSpans: span %d %s starts before span %d %s", i, spans[i], i-1, spans[i-1]))
			}
		}
	}
	return Spet[T]{spans: mergeSorted(slices.Clone(spans))}
}

// mergeSorted merges overlapping and touching spans of a slice sorted by
// start. We build up the resulting slice in place. This is safe because "r"
// grows by at most 1 element on each iteration, staying abreast or behind the
// iteration over "spans".
func mergeSorted[T cmp.Ordered](spans []Span[T]) []Span[T] {
	r := spans[:1]
	for _, cur := range spans[1:] {
		prev := &r[len(r)-1]
		if cur.start > prev.end {
			r = append(r, cur) // [a,b] + [c,d] = [a,b], [c,d]
		} else if cur.end > prev.end {
			prev.end = cur.end // [a,c] + [b,d] = [a,d]
		}
	}
	return slices.Clip(r)
}

// fromCanonical wraps spans that are known to be in canonical form.
func fromCanonical[T cmp.Ordered](spans []Span[T]) Spet[T] {
	s := Spet[T]{spans: spans}
	if buildutil.Invariants {
		if err := s.CheckCanonical(); err != nil {
			panic(errors.NewAssertionErrorWithWrappedErrf(err, "produced non-canonical span set"))
		}
	}
	return s
}

// Len returns the number of spans in the set.
func (s Spet[T]) Len() int { return len(s.spans) }

// Empty returns whether the set contains no values.
func (s Spet[T]) Empty() bool { return len(s.spans) == 0 }

// At returns the i-th span in ascending order.
func (s Spet[T]) At(i int) Span[T] { return s.spans[i] }

// Spans returns a copy of the spans in ascending order.
func (s Spet[T]) Spans() []Span[T] { return slices.Clone(s.spans) }

// All iterates over the spans in ascending order.
func (s Spet[T]) All() iter.Seq2[int, Span[T]] {
	return func(yield func(int, Span[T]) bool) {
		for i, sp := range s.spans {
			if !yield(i, sp) {
				return
			}
		}
	}
}

// Bounds returns the smallest span covering the whole set. The boolean is
// false for the empty set.
func (s Spet[T]) Bounds() (Span[T], bool) {
	if len(s.spans) == 0 {
		return Span[T]{}, false
	}
	return Span[T]{start: s.spans[0].start, end: s.spans[len(s.spans)-1].end}, true
}

// Contains returns whether v is a member of the set, in O(log n).
func (s Spet[T]) Contains(v T) bool {
	// Find the first span whose end is not before v; v is a member iff that
	// span also starts at or before v.
	i := sort.Search(len(s.spans), func(i int) bool {
		return s.spans[i].end >= v
	})
	return i < len(s.spans) && s.spans[i].start <= v
}

// ContainsSpan returns whether every value of sp is a member of the set.
func (s Spet[T]) ContainsSpan(sp Span[T]) bool {
	i := sort.Search(len(s.spans), func(i int) bool {
		return s.spans[i].end >= sp.start
	})
	return i < len(s.spans) && s.spans[i].start <= sp.start && sp.end <= s.spans[i].end
}

// Equal returns whether the two sets contain the same values.
func (s Spet[T]) Equal(o Spet[T]) bool {
	return slices.EqualFunc(s.spans, o.spans, Span[T].Equal)
}

// Union returns the values in s or o. See the Union function.
func (s Spet[T]) Union(o Spet[T]) Spet[T] { return Union(s, o) }

// Intersection returns the values in both s and o. See the Intersection
// function.
func (s Spet[T]) Intersection(o Spet[T]) Spet[T] { return Intersection(s, o) }

// CheckCanonical verifies that the spans are sorted, disjoint and
// non-adjacent. The returned error is marked with ErrNotCanonical.
func (s Spet[T]) CheckCanonical() error {
	for i := range s.spans {
		if !(s.spans[i].start <= s.spans[i].end) {
			return errors.Mark(errors.Newf("span %d %s is backwards", i, s.spans[i]), ErrNotCanonical)
		}
		if i > 0 && !(s.spans[i-1].end < s.spans[i].start) {
			return errors.Mark(errors.Newf("span %d %s does not follow span %d %s with a gap",
				i, s.spans[i], i-1, s.spans[i-1]), ErrNotCanonical)
		}
	}
	return nil
}

// String implements fmt.Stringer.
func (s Spet[T]) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter. The set renders as
// {[a, b], [c, d]}.
func (s Spet[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeRune('{')
	for i, sp := range s.spans {
		if i > 0 {
			w.SafeString(", ")
		}
		w.Print(sp)
	}
	w.SafeRune('}')
}
