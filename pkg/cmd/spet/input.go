// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"cmp"
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/spet/pkg/spet"
	"github.com/cockroachdb/spet/pkg/util/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// namedSet is a span set as read from (or written to) a YAML document.
type namedSet[T cmp.Ordered] struct {
	name string
	set  spet.Spet[T]
}

// duplicateEvery limits the duplicate set warning when many files repeat the
// same names.
var duplicateEvery = log.Every(time.Second)

// loadFiles reads the span sets of every file concurrently and returns them
// in the order of the files, then of the sets within each file. The path "-"
// designates stdin.
func loadFiles[T cmp.Ordered](
	ctx context.Context, d domain[T], stdin io.Reader, paths []string,
) ([]namedSet[T], error) {
	results := make([][]namedSet[T], len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			ctx := logtags.AddTag(ctx, "file", filepath.Base(path))
			var data []byte
			var err error
			if path == "-" {
				data, err = io.ReadAll(stdin)
			} else {
				data, err = os.ReadFile(path)
			}
			if err != nil {
				return errors.Wrapf(err, "reading %s", path)
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			sets, err := decodeSets(d, data)
			if err != nil {
				return errors.Wrapf(err, "%s", path)
			}
			log.VEventf(ctx, 1, "loaded %d span sets", len(sets))
			results[i] = sets
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []namedSet[T]
	seen := map[string]bool{}
	for _, sets := range results {
		for _, s := range sets {
			if seen[s.name] {
				if ok, n := duplicateEvery.ShouldLog(); ok {
					log.Warningf(ctx, "span set %q is defined more than once (%d similar warnings suppressed)", s.name, n)
				}
			}
			seen[s.name] = true
			all = append(all, s)
		}
	}
	return all, nil
}

// decodeSets parses a YAML mapping from set names to spans. Spans are given
// either as a list of [start, end] pairs or in the text form "[a, b] [c, d]".
func decodeSets[T cmp.Ordered](d domain[T], data []byte) ([]namedSet[T], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing YAML")
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.Newf("line %d: expected a mapping from set names to spans", root.Line)
	}

	sets := make([]namedSet[T], 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		spans, err := decodeSpans(d, val)
		if err != nil {
			return nil, errors.Wrapf(err, "span set %q", key.Value)
		}
		sets = append(sets, namedSet[T]{name: key.Value, set: spet.FromSpans(spans...)})
	}
	return sets, nil
}

func decodeSpans[T cmp.Ordered](d domain[T], n *yaml.Node) ([]spet.Span[T], error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return spet.ParseSpans(n.Value, d.parse)
	case yaml.SequenceNode:
	default:
		return nil, errors.Newf("line %d: expected a list of spans", n.Line)
	}

	spans := make([]spet.Span[T], 0, len(n.Content))
	for _, item := range n.Content {
		if item.Kind != yaml.SequenceNode || len(item.Content) != 2 {
			return nil, errors.Newf("line %d: a span is a [start, end] pair", item.Line)
		}
		start, err := d.parse(item.Content[0].Value)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", item.Line)
		}
		end, err := d.parse(item.Content[1].Value)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", item.Line)
		}
		sp, err := spet.MakeSpan(start, end)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", item.Line)
		}
		spans = append(spans, sp)
	}
	return spans, nil
}
