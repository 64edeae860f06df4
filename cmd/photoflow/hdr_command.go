package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"photoflow/internal/bracket"
	"photoflow/internal/jobspec"
	"photoflow/internal/logging"
	"photoflow/internal/scan"
	"photoflow/internal/services/photoshop"
)

func newHDRCommand(ctx *commandContext) *cobra.Command {
	var (
		bracketFlag   int
		noGhost       bool
		no32Bit       bool
		photoshopFlag string
	)

	cmd := &cobra.Command{
		Use:   "hdr <inputDir> <outputDir>",
		Short: "Merge bracketed exposure sets into HDR images",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			handle, err := photoshop.Locate(firstNonEmpty(photoshopFlag, cfg.Photoshop.ExecutablePath))
			if err != nil {
				return err
			}

			items, err := scan.Scan(args[0], scan.Options{Order: scan.Order(cfg.Scan.Order)})
			if err != nil {
				return err
			}
			if len(items) == 0 {
				return fmt.Errorf("no supported image files found in %s", args[0])
			}

			bracketCount := cfg.HDR.BracketCount
			if cmd.Flags().Changed("bracket-count") {
				bracketCount = bracketFlag
			}

			sets, dropped, err := bracket.Group(items, bracketCount)
			if err != nil {
				return err
			}
			if len(sets) == 0 {
				return fmt.Errorf("no complete bracket sets of %d images found in %s", bracketCount, args[0])
			}
			logger.Info("bracket grouping complete", logging.Args(
				logging.Int("sets", len(sets)),
				logging.Int("dropped", dropped),
			)...)

			var warnings []string
			if dropped > 0 {
				warnings = append(warnings, droppedWarning(dropped))
			}

			if err := ensureOutputDir(args[1]); err != nil {
				return err
			}

			jobs := jobspec.BuildHDRJobs(sets, jobspec.HDROptions{
				OutputDir:    args[1],
				RemoveGhosts: cfg.HDR.RemoveGhosts && !noGhost,
				Output32Bit:  cfg.HDR.Output32Bit && !no32Bit,
			})

			return dispatch(cmd, cfg, logger, handle, jobs, warnings)
		},
	}

	cmd.Flags().IntVarP(&bracketFlag, "bracket-count", "b", 0, "Number of exposures per bracket set (default from config)")
	cmd.Flags().BoolVar(&noGhost, "no-ghost", false, "Disable ghost removal during the merge")
	cmd.Flags().BoolVar(&no32Bit, "no-32bit", false, "Save merged images as 16-bit instead of 32-bit")
	cmd.Flags().StringVar(&photoshopFlag, "photoshop", "", "Path to the editor executable")

	return cmd
}
