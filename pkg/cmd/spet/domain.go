// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"cmp"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/spet/pkg/spet"
	"github.com/dustin/go-humanize"
)

// domain describes how the scalar values of a span set are read and
// rendered.
type domain[T cmp.Ordered] struct {
	name   string
	parse  func(string) (T, error)
	format func(T) string
	// length renders the extent of a span.
	length func(spet.Span[T]) string
}

var numberDomain = domain[float64]{
	name: "number",
	parse: func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	},
	format: func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	},
	length: func(s spet.Span[float64]) string {
		return strconv.FormatFloat(s.End()-s.Start(), 'g', -1, 64)
	},
}

// Timestamps are kept as Unix nanoseconds, which are totally ordered and
// cheap to compare.
var timeDomain = domain[int64]{
	name: "time",
	parse: func(s string) (int64, error) {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return 0, errors.Wrapf(err, "timestamp %q", s)
		}
		return t.UnixNano(), nil
	},
	format: func(v int64) string {
		return time.Unix(0, v).UTC().Format(time.RFC3339Nano)
	},
	length: func(s spet.Span[int64]) string {
		if s.Start() == s.End() {
			return "instant"
		}
		return strings.TrimSpace(humanize.RelTime(time.Unix(0, s.Start()), time.Unix(0, s.End()), "", ""))
	},
}

// formatSpan renders sp as "[start, end]".
func (d domain[T]) formatSpan(sp spet.Span[T]) string {
	return "[" + d.format(sp.Start()) + ", " + d.format(sp.End()) + "]"
}

// formatSet renders s as "{[a, b], [c, d]}".
func (d domain[T]) formatSet(s spet.Spet[T]) string {
	var buf strings.Builder
	buf.WriteByte('{')
	for i, sp := range s.All() {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(d.formatSpan(sp))
	}
	buf.WriteByte('}')
	return buf.String()
}
