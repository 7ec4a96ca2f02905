// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatText  = "text"
)

// printSets writes the span sets to w in the requested format.
func printSets[T cmp.Ordered](w io.Writer, d domain[T], format string, sets []namedSet[T]) error {
	switch format {
	case formatTable:
		return printTable(w, d, sets)
	case formatYAML:
		return printYAML(w, d, sets)
	case formatText:
		for _, s := range sets {
			if _, err := fmt.Fprintf(w, "%s: %s\n", s.name, d.formatSet(s.set)); err != nil {
				return err
			}
		}
		return nil
	}
	return errors.Newf("unknown output format %q", format)
}

func printTable[T cmp.Ordered](w io.Writer, d domain[T], sets []namedSet[T]) error {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"set", "start", "end", "length"})
	var nSpans int64
	for _, s := range sets {
		for _, sp := range s.set.All() {
			table.Append([]string{s.name, d.format(sp.Start()), d.format(sp.End()), d.length(sp)})
			nSpans++
		}
	}
	table.Render()
	suffix := "s"
	if nSpans == 1 {
		suffix = ""
	}
	_, err := fmt.Fprintf(w, "(%s span%s)\n", humanize.Comma(nSpans), suffix)
	return err
}

// printYAML writes the sets in the same shape that decodeSets reads, so that
// results can be fed back as input.
func printYAML[T cmp.Ordered](w io.Writer, d domain[T], sets []namedSet[T]) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range sets {
		spans := &yaml.Node{Kind: yaml.SequenceNode}
		for _, sp := range s.set.All() {
			spans.Content = append(spans.Content, &yaml.Node{
				Kind:  yaml.SequenceNode,
				Style: yaml.FlowStyle,
				Content: []*yaml.Node{
					{Kind: yaml.ScalarNode, Value: d.format(sp.Start())},
					{Kind: yaml.ScalarNode, Value: d.format(sp.End())},
				},
			})
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: s.name}, spans)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return errors.Wrap(err, "encoding YAML")
	}
	return enc.Close()
}
