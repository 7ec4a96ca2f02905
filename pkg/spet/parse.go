// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package spet

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseSpans parses a list of spans written as "[a, b]", separated by
// whitespace or commas and optionally enclosed in braces, i.e. the format
// produced by Spet.String. Endpoints are parsed with parseScalar. The spans
// are returned as written, neither sorted nor merged.
func ParseSpans[T cmp.Ordered](s string, parseScalar func(string) (T, error)) ([]Span[T], error) {
	in := strings.TrimSpace(s)
	if strings.HasPrefix(in, "{") {
		if !strings.HasSuffix(in, "}") {
			return nil, errors.Newf("unterminated span set %q", s)
		}
		in = in[1 : len(in)-1]
	}

	var spans []Span[T]
	for {
		in = strings.TrimLeft(in, " \t\n,")
		if in == "" {
			return spans, nil
		}
		if in[0] != '[' {
			return nil, errors.Newf("expected '[' at %q", in)
		}
		closing := strings.IndexByte(in, ']')
		if closing < 0 {
			return nil, errors.Newf("unterminated span at %q", in)
		}
		startStr, endStr, ok := strings.Cut(in[1:closing], ",")
		if !ok {
			return nil, errors.Newf("span %q must have two endpoints", in[:closing+1])
		}
		start, err := parseScalar(strings.TrimSpace(startStr))
		if err != nil {
			return nil, errors.Wrapf(err, "parsing start of %q", in[:closing+1])
		}
		end, err := parseScalar(strings.TrimSpace(endStr))
		if err != nil {
			return nil, errors.Wrapf(err, "parsing end of %q", in[:closing+1])
		}
		sp, err := MakeSpan(start, end)
		if err != nil {
			return nil, err
		}
		spans = append(spans, sp)
		in = in[closing+1:]
	}
}

// Parse parses spans as ParseSpans does and normalizes them into a Spet.
func Parse[T cmp.Ordered](s string, parseScalar func(string) (T, error)) (Spet[T], error) {
	spans, err := ParseSpans(s, parseScalar)
	if err != nil {
		return Spet[T]{}, err
	}
	return FromSpans(spans...), nil
}

// ParseFloat parses a Spet of float64 values.
func ParseFloat(s string) (Spet[float64], error) {
	return Parse(s, func(v string) (float64, error) {
		return strconv.ParseFloat(v, 64)
	})
}

// ParseInt parses a Spet of int64 values.
func ParseInt(s string) (Spet[int64], error) {
	return Parse(s, func(v string) (int64, error) {
		return strconv.ParseInt(v, 10, 64)
	})
}
