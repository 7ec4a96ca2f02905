// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"cmp"
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/spet/pkg/spet"
	"github.com/cockroachdb/spet/pkg/util/log"
	"github.com/olekukonko/tablewriter"
)

// commands are the operations of the tool, bound to one scalar domain.
type commands interface {
	normalize(ctx context.Context, files []string) error
	union(ctx context.Context, files []string) error
	intersect(ctx context.Context, files []string) error
	overlap(ctx context.Context, k int, files []string) error
	contains(ctx context.Context, at string, files []string) error
	points(ctx context.Context, files []string) error
}

func newCommands(cfg *config, stdin io.Reader, stdout io.Writer) (commands, error) {
	switch cfg.domain {
	case numberDomain.name:
		return &app[float64]{d: numberDomain, format: cfg.format, stdin: stdin, stdout: stdout}, nil
	case timeDomain.name:
		return &app[int64]{d: timeDomain, format: cfg.format, stdin: stdin, stdout: stdout}, nil
	}
	return nil, errors.Newf("unknown domain %q, expected %q or %q", cfg.domain, numberDomain.name, timeDomain.name)
}

type app[T cmp.Ordered] struct {
	d      domain[T]
	format string
	stdin  io.Reader
	stdout io.Writer
}

var _ commands = (*app[int64])(nil)

func (a *app[T]) load(ctx context.Context, files []string) ([]namedSet[T], error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	return loadFiles(ctx, a.d, a.stdin, files)
}

func (a *app[T]) print(sets ...namedSet[T]) error {
	return printSets(a.stdout, a.d, a.format, sets)
}

func (a *app[T]) normalize(ctx context.Context, files []string) error {
	sets, err := a.load(ctx, files)
	if err != nil {
		return err
	}
	return a.print(sets...)
}

func (a *app[T]) union(ctx context.Context, files []string) error {
	sets, err := a.load(ctx, files)
	if err != nil {
		return err
	}
	return a.print(namedSet[T]{name: "union", set: spet.UnionAll(spets(sets)...)})
}

func (a *app[T]) intersect(ctx context.Context, files []string) error {
	sets, err := a.load(ctx, files)
	if err != nil {
		return err
	}
	return a.print(namedSet[T]{name: "intersection", set: spet.IntersectAll(spets(sets)...)})
}

func (a *app[T]) overlap(ctx context.Context, k int, files []string) error {
	sets, err := a.load(ctx, files)
	if err != nil {
		return err
	}
	if k > len(sets) {
		log.Warningf(ctx, "threshold %d exceeds the number of span sets (%d)", k, len(sets))
	}
	r, err := spet.NOverlapping(k, spets(sets)...)
	if err != nil {
		return err
	}
	return a.print(namedSet[T]{name: fmt.Sprintf("at least %d of %d", k, len(sets)), set: r})
}

func (a *app[T]) contains(ctx context.Context, at string, files []string) error {
	v, err := a.d.parse(at)
	if err != nil {
		return errors.Wrap(err, "--at")
	}
	sets, err := a.load(ctx, files)
	if err != nil {
		return err
	}
	for _, s := range sets {
		if _, err := fmt.Fprintf(a.stdout, "%s: %t\n", s.name, s.set.Contains(v)); err != nil {
			return err
		}
	}
	return nil
}

func (a *app[T]) points(ctx context.Context, files []string) error {
	sets, err := a.load(ctx, files)
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(a.stdout)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"value", "point", "set", "span"})
	for p := range spet.Points(spets(sets)...) {
		table.Append([]string{a.d.format(p.Value()), p.Kind.String(), sets[p.Set].name, a.d.formatSpan(p.Span)})
	}
	table.Render()
	return nil
}

func spets[T cmp.Ordered](sets []namedSet[T]) []spet.Spet[T] {
	r := make([]spet.Spet[T], len(sets))
	for i, s := range sets {
		r[i] = s.set
	}
	return r
}
