// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package spet

import (
	"cmp"
	"container/heap"
	"iter"

	"github.com/cockroachdb/redact"
)

// PointKind distinguishes the two endpoints of a span.
type PointKind int8

const (
	// StartPoint is the lower bound of a span.
	StartPoint PointKind = iota
	// EndPoint is the upper bound of a span.
	EndPoint
)

// SafeValue implements redact.SafeValue.
func (PointKind) SafeValue() {}

// String implements fmt.Stringer.
func (k PointKind) String() string {
	if k == StartPoint {
		return "start"
	}
	return "end"
}

// Point is the start or the end of a span of one of the sets passed to
// Points.
type Point[T cmp.Ordered] struct {
	Kind PointKind
	// Set is the index of the set the span belongs to.
	Set  int
	Span Span[T]
}

// Value returns the coordinate of the point.
func (p Point[T]) Value() T {
	if p.Kind == StartPoint {
		return p.Span.start
	}
	return p.Span.end
}

// String implements fmt.Stringer.
func (p Point[T]) String() string {
	return redact.StringWithoutMarkers(p)
}

// SafeFormat implements redact.SafeFormatter.
func (p Point[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%s %v of %s (set %d)", p.Kind, p.Value(), p.Span, p.Set)
}

// comparePoints orders points in sweep order: by coordinate, then starts
// before ends, then by set.
func comparePoints[T cmp.Ordered](a, b Point[T]) int {
	if c := cmp.Compare(a.Value(), b.Value()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	return cmp.Compare(a.Set, b.Set)
}

// Points returns every endpoint of every span of the given sets in sweep
// order: ascending by coordinate and, at equal coordinates, all starts before
// all ends. Within one set the points are already ascending (start <= end <
// next start), so the sequence is a k-way merge of the sets through a min-heap
// holding one pending point per set. Nothing is materialized: iterating over
// n points of k sets takes O(n log k) time and O(k) space.
func Points[T cmp.Ordered](sets ...Spet[T]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		h := make(pointHeap[T], 0, len(sets))
		for i, s := range sets {
			if len(s.spans) > 0 {
				h = append(h, pointCursor[T]{spans: s.spans, pt: Point[T]{Set: i, Span: s.spans[0]}})
			}
		}
		heap.Init(&h)
		for len(h) > 0 {
			c := &h[0]
			if !yield(c.pt) {
				return
			}
			if c.advance() {
				heap.Fix(&h, 0)
			} else {
				heap.Pop(&h)
			}
		}
	}
}

// pointCursor walks the points of a single set.
type pointCursor[T cmp.Ordered] struct {
	spans []Span[T]
	idx   int
	pt    Point[T]
}

// advance moves the cursor to the next point, returning false once the set is
// exhausted.
func (c *pointCursor[T]) advance() bool {
	if c.pt.Kind == StartPoint {
		c.pt.Kind = EndPoint
		return true
	}
	c.idx++
	if c.idx == len(c.spans) {
		return false
	}
	c.pt.Kind = StartPoint
	c.pt.Span = c.spans[c.idx]
	return true
}

type pointHeap[T cmp.Ordered] []pointCursor[T]

var _ heap.Interface = (*pointHeap[int])(nil)

func (h pointHeap[T]) Len() int           { return len(h) }
func (h pointHeap[T]) Less(i, j int) bool { return comparePoints(h[i].pt, h[j].pt) < 0 }
func (h pointHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *pointHeap[T]) Push(x any) { *h = append(*h, x.(pointCursor[T])) }

func (h *pointHeap[T]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
