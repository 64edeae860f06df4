package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"photoflow/internal/config"
	"photoflow/internal/jobspec"
	"photoflow/internal/runner"
	"photoflow/internal/services/photoshop"
)

// dispatch wires the resolved editor handle into a driver and runs the jobs
// sequentially. Per-job failures surface only through the printed summary;
// the returned error covers infrastructure problems.
func dispatch(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, handle photoshop.Handle, jobs []jobspec.Job, warnings []string) error {
	client, err := photoshop.NewClient(handle, time.Duration(cfg.Photoshop.JobTimeout)*time.Second)
	if err != nil {
		return err
	}

	run, err := runner.New(client, runner.Options{
		Logger:   logger,
		LockPath: cfg.LockFilePath(),
		Settle:   time.Duration(cfg.Photoshop.SettleSeconds) * time.Second,
	})
	if err != nil {
		return err
	}

	summary, err := run.Run(cmd.Context(), jobs, warnings)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(summary))
	return nil
}

func ensureOutputDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func droppedWarning(dropped int) string {
	if dropped == 1 {
		return "1 file ignored: incomplete bracket set"
	}
	return fmt.Sprintf("%d files ignored: incomplete bracket set", dropped)
}
