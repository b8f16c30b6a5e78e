// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkcut/internal/config"
	"github.com/katalvlaran/linkcut/internal/replay"
)

// errScriptsFailed is returned when at least one script did not pass.
var errScriptsFailed = errors.New("lctreplay: scripts failed")

type runFlags struct {
	configPath string
	failFast   bool
}

func newRunCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run <script.yaml>...",
		Short: "Replay one or more scripts",
		Long: `Replay each script against a fresh forest. Every script runs even if an
earlier one fails; the command fails if any script does.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(flags.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("fail-fast") {
				cfg.Replay.FailFast = flags.failFast
			}

			logger, err := config.NewLogger(cfg.Logging, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			return runScripts(cmd, args, cfg, logger)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file (default is ./lctreplay.yaml)")
	cmd.Flags().BoolVar(&flags.failFast, "fail-fast", false, "stop each script at its first failed expectation")

	return cmd
}

// runScripts replays every path and prints one summary line per script.
func runScripts(cmd *cobra.Command, paths []string, cfg *config.Config, logger *slog.Logger) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range paths {
		log := logger.With("script", filepath.Base(path))
		rep, err := replayFile(cmd, path, cfg, log)
		if err != nil && !errors.Is(err, replay.ErrExpectationFailed) {
			if ctxErr := cmd.Context().Err(); ctxErr != nil {
				return ctxErr
			}
			failed++
			fmt.Fprintf(out, "ERROR %s: %v\n", path, err)
			continue
		}
		printReport(out, path, rep)
		if len(rep.Failures) > 0 {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errScriptsFailed, failed, len(paths))
	}

	return nil
}

func replayFile(cmd *cobra.Command, path string, cfg *config.Config, logger *slog.Logger) (*replay.Report, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	script, err := replay.Parse(fh)
	if err != nil {
		return nil, err
	}

	return replay.Run(cmd.Context(), script, logger, replay.WithFailFast(cfg.Replay.FailFast))
}

func printReport(w io.Writer, path string, rep *replay.Report) {
	if len(rep.Failures) == 0 {
		fmt.Fprintf(w, "PASS %s: %d steps, %d checks\n", path, rep.Steps, rep.Checked)
		return
	}
	fmt.Fprintf(w, "FAIL %s: %d of %d checks failed\n", path, len(rep.Failures), rep.Checked)
	for _, f := range rep.Failures {
		fmt.Fprintf(w, "  %s\n", f)
	}
}
