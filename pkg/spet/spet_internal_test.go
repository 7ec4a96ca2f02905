// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package spet

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var spanComparer = cmp.Comparer(Span[int].Equal)

func TestFromSpansDoesNotRetainInput(t *testing.T) {
	in := []Span[int]{MustSpan(5, 6), MustSpan(0, 3), MustSpan(2, 4)}
	orig := append([]Span[int](nil), in...)
	s := FromSpans(in...)
	if diff := cmp.Diff(orig, in, spanComparer); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
	want := []Span[int]{MustSpan(0, 4), MustSpan(5, 6)}
	if diff := cmp.Diff(want, s.Spans(), spanComparer); diff != "" {
		t.Fatalf("unexpected spans (-want +got):\n%s", diff)
	}

	// Neither mutating the input nor the returned copy affects the set.
	in[0] = MustSpan(100, 200)
	spans := s.Spans()
	spans[0] = MustSpan(-1, -1)
	if diff := cmp.Diff(want, s.Spans(), spanComparer); diff != "" {
		t.Fatalf("set mutated (-want +got):\n%s", diff)
	}

	sorted := []Span[int]{MustSpan(0, 1), MustSpan(1, 2)}
	_ = FromSortedSpans(sorted...)
	require.Equal(t, MustSpan(0, 1), sorted[0])
}

func TestSpetAccessors(t *testing.T) {
	var empty Spet[int]
	require.True(t, empty.Empty())
	require.Equal(t, 0, empty.Len())
	_, ok := empty.Bounds()
	require.False(t, ok)
	require.False(t, empty.Contains(0))
	require.Equal(t, "{}", empty.String())
	require.True(t, empty.Equal(FromSpans[int]()))

	s := FromSpans(MustSpan(10, 20), MustSpan(0, 5), MustSpan(30, 30))
	require.False(t, s.Empty())
	require.Equal(t, 3, s.Len())
	require.Equal(t, MustSpan(0, 5), s.At(0))
	b, ok := s.Bounds()
	require.True(t, ok)
	require.Equal(t, MustSpan(0, 30), b)

	var visited []Span[int]
	for i, sp := range s.All() {
		require.Equal(t, s.At(i), sp)
		visited = append(visited, sp)
		if i == 1 {
			break
		}
	}
	require.Len(t, visited, 2)

	for v, want := range map[int]bool{
		-1: false, 0: true, 3: true, 5: true, 6: false, 9: false,
		10: true, 20: true, 21: false, 30: true, 31: false,
	} {
		require.Equal(t, want, s.Contains(v), "Contains(%d)", v)
	}

	require.True(t, s.ContainsSpan(MustSpan(11, 19)))
	require.True(t, s.ContainsSpan(MustSpan(10, 20)))
	require.True(t, s.ContainsSpan(PointSpan(30)))
	require.False(t, s.ContainsSpan(MustSpan(4, 11)))
	require.False(t, s.ContainsSpan(MustSpan(19, 21)))
	require.False(t, s.ContainsSpan(MustSpan(6, 9)))

	require.True(t, s.Equal(FromSpans(MustSpan(0, 5), MustSpan(10, 20), MustSpan(30, 30))))
	require.False(t, s.Equal(FromSpans(MustSpan(0, 5), MustSpan(10, 20))))
}

func TestCheckCanonical(t *testing.T) {
	for _, tc := range []struct {
		spans []Span[int]
		err   string
	}{
		{spans: nil},
		{spans: []Span[int]{{start: 0, end: 1}, {start: 2, end: 3}}},
		{
			spans: []Span[int]{{start: 0, end: 1}, {start: 1, end: 3}},
			err:   "span 1 [1, 3] does not follow span 0 [0, 1] with a gap",
		},
		{
			spans: []Span[int]{{start: 2, end: 3}, {start: 0, end: 1}},
			err:   "span 1 [0, 1] does not follow span 0 [2, 3] with a gap",
		},
		{
			spans: []Span[int]{{start: 3, end: 2}},
			err:   "span 0 [3, 2] is backwards",
		},
	} {
		err := Spet[int]{spans: tc.spans}.CheckCanonical()
		if tc.err == "" {
			require.NoError(t, err)
			continue
		}
		require.True(t, errors.Is(err, ErrNotCanonical))
		require.EqualError(t, err, tc.err)
	}
}

func TestNOverlappingThreshold(t *testing.T) {
	a := FromSpans(MustSpan(0, 10))
	for _, k := range []int{0, -1} {
		_, err := NOverlapping(k, a)
		require.True(t, errors.Is(err, ErrInvalidThreshold), "%v", err)
	}
	r, err := NOverlapping(2, a)
	require.NoError(t, err)
	require.True(t, r.Empty())

	r, err = NOverlapping[int](1)
	require.NoError(t, err)
	require.True(t, r.Empty())
}

func TestUnionAllIntersectAll(t *testing.T) {
	a := FromSpans(MustSpan(0, 10), MustSpan(20, 30))
	b := FromSpans(MustSpan(5, 25))
	c := FromSpans(MustSpan(8, 22))

	require.True(t, UnionAll[int]().Empty())
	require.True(t, IntersectAll[int]().Empty())
	require.True(t, UnionAll(a).Equal(a))
	require.True(t, IntersectAll(a).Equal(a))

	require.Equal(t, "{[0, 30]}", UnionAll(a, b).String())
	require.Equal(t, "{[5, 10], [20, 25]}", IntersectAll(a, b).String())
	require.Equal(t, "{[0, 30]}", UnionAll(a, b, c).String())
	require.Equal(t, "{[8, 10], [20, 22]}", IntersectAll(a, b, c).String())
}

func TestMergeSortedInPlace(t *testing.T) {
	spans := []Span[int]{
		{start: 0, end: 2}, {start: 1, end: 1}, {start: 2, end: 5}, {start: 7, end: 8}, {start: 8, end: 8},
	}
	got := mergeSorted(spans)
	want := []Span[int]{{start: 0, end: 5}, {start: 7, end: 8}}
	if diff := cmp.Diff(want, got, spanComparer); diff != "" {
		t.Fatalf("unexpected spans (-want +got):\n%s", diff)
	}
	require.Equal(t, len(got), cap(got))
}
