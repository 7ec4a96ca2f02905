// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package spet_test

import (
	"testing"

	"github.com/cockroachdb/spet/pkg/spet"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const lo, hi = -50, 50

// genSpans generates unsorted, possibly overlapping spans within [lo, hi].
func genSpans() gopter.Gen {
	return gen.SliceOf(gen.IntRange(lo, hi)).Map(func(vs []int) []spet.Span[int] {
		spans := make([]spet.Span[int], 0, len(vs)/2)
		for i := 0; i+1 < len(vs); i += 2 {
			spans = append(spans, spet.MustSpan(min(vs[i], vs[i+1]), max(vs[i], vs[i+1])))
		}
		return spans
	})
}

func genSpet() gopter.Gen {
	return genSpans().Map(func(spans []spet.Span[int]) spet.Spet[int] {
		return spet.FromSpans(spans...)
	})
}

// sameMembers reports whether want(v) == s.Contains(v) for every value in
// the sampled domain, which covers every endpoint and the values around it.
func sameMembers(s spet.Spet[int], want func(v int) bool) bool {
	for v := lo - 2; v <= hi+2; v++ {
		if s.Contains(v) != want(v) {
			return false
		}
	}
	return true
}

func canonical(sets ...spet.Spet[int]) bool {
	for _, s := range sets {
		if s.CheckCanonical() != nil {
			return false
		}
	}
	return true
}

func TestSetLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	parameters.MaxSize = 20
	properties := gopter.NewProperties(parameters)

	properties.Property("normalization is canonical and idempotent", prop.ForAll(
		func(spans []spet.Span[int]) bool {
			s := spet.FromSpans(spans...)
			return canonical(s) &&
				s.Equal(spet.FromSpans(s.Spans()...)) &&
				s.Equal(spet.FromSortedSpans(s.Spans()...))
		},
		genSpans(),
	))

	properties.Property("normalization preserves members", prop.ForAll(
		func(spans []spet.Span[int]) bool {
			return sameMembers(spet.FromSpans(spans...), func(v int) bool {
				for _, sp := range spans {
					if sp.Contains(v) {
						return true
					}
				}
				return false
			})
		},
		genSpans(),
	))

	properties.Property("union", prop.ForAll(
		func(a, b, c spet.Spet[int]) bool {
			u := spet.Union(a, b)
			return canonical(u) &&
				u.Equal(spet.Union(b, a)) &&
				spet.Union(u, c).Equal(spet.Union(a, spet.Union(b, c))) &&
				spet.Union(a, spet.Spet[int]{}).Equal(a) &&
				u.Equal(spet.FromSpans(append(a.Spans(), b.Spans()...)...)) &&
				sameMembers(u, func(v int) bool { return a.Contains(v) || b.Contains(v) })
		},
		genSpet(), genSpet(), genSpet(),
	))

	properties.Property("intersection", prop.ForAll(
		func(a, b, c spet.Spet[int]) bool {
			i := spet.Intersection(a, b)
			return canonical(i) &&
				i.Equal(spet.Intersection(b, a)) &&
				spet.Intersection(i, c).Equal(spet.Intersection(a, spet.Intersection(b, c))) &&
				spet.Intersection(a, spet.Spet[int]{}).Empty() &&
				spet.Intersection(a, a).Equal(a) &&
				sameMembers(i, func(v int) bool { return a.Contains(v) && b.Contains(v) })
		},
		genSpet(), genSpet(), genSpet(),
	))

	properties.Property("difference", prop.ForAll(
		func(a, b spet.Spet[int]) bool {
			d := spet.Difference(a, b)
			return canonical(d) &&
				spet.Intersection(d, b).Empty() &&
				sameMembers(d, func(v int) bool { return a.Contains(v) && !b.Contains(v) })
		},
		genSpet(), genSpet(),
	))

	properties.Property("k of n overlap", prop.ForAll(
		func(k int, sets []spet.Spet[int]) bool {
			r, err := spet.NOverlapping(k, sets...)
			if err != nil {
				return false
			}
			if k > len(sets) && !r.Empty() {
				return false
			}
			return canonical(r) && sameMembers(r, func(v int) bool {
				var n int
				for _, s := range sets {
					if s.Contains(v) {
						n++
					}
				}
				return n >= k
			})
		},
		gen.IntRange(1, 6), gen.SliceOf(genSpet()),
	))

	properties.Property("overlap boundaries", prop.ForAll(
		func(sets []spet.Spet[int]) bool {
			if len(sets) == 0 {
				return true
			}
			one, err := spet.NOverlapping(1, sets[0])
			if err != nil || !one.Equal(sets[0]) {
				return false
			}
			all, err := spet.NOverlapping(len(sets), sets...)
			if err != nil {
				return false
			}
			want := sets[0]
			for _, s := range sets[1:] {
				want = spet.Intersection(want, s)
			}
			anyOf, err := spet.NOverlapping(1, sets...)
			if err != nil {
				return false
			}
			wantAny := sets[0]
			for _, s := range sets[1:] {
				wantAny = spet.Union(wantAny, s)
			}
			return all.Equal(want) && all.Equal(spet.IntersectAll(sets...)) &&
				anyOf.Equal(wantAny) && anyOf.Equal(spet.UnionAll(sets...))
		},
		gen.SliceOf(genSpet()),
	))

	properties.TestingRun(t)
}
