// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// spet reconciles spans read from YAML files: it prints their union,
// intersection, or the regions where at least k of them overlap.
//
// Each input file maps set names to spans:
//
//	alice:
//	  - ["2024-05-01T09:00:00Z", "2024-05-01T12:00:00Z"]
//	  - ["2024-05-01T13:00:00Z", "2024-05-01T17:00:00Z"]
//	bob: "[2024-05-01T11:00:00Z, 2024-05-01T14:00:00Z]"
//	carol: []
package main

import (
	"context"
	"os"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/spet/pkg/util/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// config holds the values of the command-line flags.
type config struct {
	domain    string
	format    string
	k         int
	at        string
	verbosity int32
	noColor   bool
}

func defaultFormat() string {
	if f := os.Getenv("SPET_FORMAT"); f != "" {
		return f
	}
	return formatTable
}

func newRootCmd(cfg *config) *cobra.Command {
	rootFlags := pflag.NewFlagSet("spet", pflag.ContinueOnError)
	rootFlags.StringVar(&cfg.domain, "domain", timeDomain.name,
		"scalar domain of the span endpoints: time (RFC 3339) or number")
	rootFlags.StringVar(&cfg.format, "format", defaultFormat(),
		"output format: table, yaml or text (default from SPET_FORMAT)")
	rootFlags.Int32Var(&cfg.verbosity, "v", 0, "log verbosity")
	rootFlags.BoolVar(&cfg.noColor, "no-color", false, "disable colors in log output")

	rootCmd := &cobra.Command{
		Use:           "spet",
		Short:         "Set algebra over spans read from YAML files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetVerbosity(cfg.verbosity)
			if cfg.noColor {
				log.DisableColor()
			}
		},
	}
	rootCmd.PersistentFlags().AddFlagSet(rootFlags)

	run := func(fn func(ctx context.Context, c commands, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			c, err := newCommands(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = logtags.AddTag(ctx, "cmd", cmd.Name())
			return fn(ctx, c, args)
		}
	}

	normalizeCmd := &cobra.Command{
		Use:   "normalize [files...]",
		Short: "Print every span set in canonical form",
		RunE: run(func(ctx context.Context, c commands, args []string) error {
			return c.normalize(ctx, args)
		}),
	}
	unionCmd := &cobra.Command{
		Use:   "union [files...]",
		Short: "Print the values covered by any span set",
		RunE: run(func(ctx context.Context, c commands, args []string) error {
			return c.union(ctx, args)
		}),
	}
	intersectCmd := &cobra.Command{
		Use:   "intersect [files...]",
		Short: "Print the values covered by every span set",
		RunE: run(func(ctx context.Context, c commands, args []string) error {
			return c.intersect(ctx, args)
		}),
	}
	overlapCmd := &cobra.Command{
		Use:     "overlap [files...]",
		Short:   "Print the values covered by at least k span sets",
		Example: `spet overlap --k 2 alice.yaml bob.yaml carol.yaml`,
		RunE: run(func(ctx context.Context, c commands, args []string) error {
			return c.overlap(ctx, cfg.k, args)
		}),
	}
	overlapCmd.Flags().IntVar(&cfg.k, "k", 2, "minimum number of overlapping span sets")
	containsCmd := &cobra.Command{
		Use:   "contains --at <value> [files...]",
		Short: "Print whether each span set contains a value",
		RunE: run(func(ctx context.Context, c commands, args []string) error {
			return c.contains(ctx, cfg.at, args)
		}),
	}
	containsCmd.Flags().StringVar(&cfg.at, "at", "", "value to look up")
	_ = containsCmd.MarkFlagRequired("at")
	pointsCmd := &cobra.Command{
		Use:   "points [files...]",
		Short: "Print the endpoints of all span sets in sweep order",
		RunE: run(func(ctx context.Context, c commands, args []string) error {
			return c.points(ctx, args)
		}),
	}

	rootCmd.AddCommand(normalizeCmd, unionCmd, intersectCmd, overlapCmd, containsCmd, pointsCmd)
	return rootCmd
}

func main() {
	ctx := context.Background()
	if err := newRootCmd(&config{}).ExecuteContext(ctx); err != nil {
		log.Fatalf(ctx, "%v", err)
	}
}
