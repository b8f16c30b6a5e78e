// SPDX-License-Identifier: MIT

// Package main provides lctreplay, a CLI that replays YAML operation scripts
// against a link-cut forest and checks their expectations.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lctreplay",
		Short: "Replay link-cut forest operation scripts",
		Long: `lctreplay runs YAML scripts of link, cut and path operations against a
link-cut forest and reports every step whose result differs from its expectation.

Commands:
  run       Replay one or more scripts
  version   Show version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(versionCmd())

	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lctreplay %s\n", version)
		},
	}
}
