package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"photoflow/internal/jobspec"
	"photoflow/internal/logging"
	"photoflow/internal/scan"
	"photoflow/internal/services/photoshop"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var (
		recursive     bool
		noExposure    bool
		noLens        bool
		noColor       bool
		formatFlag    string
		qualityFlag   int
		photoshopFlag string
	)

	cmd := &cobra.Command{
		Use:   "batch <inputDir> <outputDir>",
		Short: "Batch edit photos through the adjustment pipeline",
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

			items, err := scan.Scan(args[0], scan.Options{
				Recursive: recursive,
				Order:     scan.Order(cfg.Scan.Order),
			})
			if err != nil {
				return err
			}
			if len(items) == 0 {
				return fmt.Errorf("no supported image files found in %s", args[0])
			}
			logger.Info("scan complete", logging.Args(
				logging.String("input", args[0]),
				logging.Int("items", len(items)),
			)...)

			formatValue := cfg.Batch.SaveFormat
			if cmd.Flags().Changed("format") {
				formatValue = formatFlag
			}
			format, err := jobspec.ParseFormat(formatValue)
			if err != nil {
				return err
			}

			quality := cfg.Batch.JPEGQuality
			if cmd.Flags().Changed("quality") {
				quality = qualityFlag
			}

			if err := ensureOutputDir(args[1]); err != nil {
				return err
			}

			jobs, notes := jobspec.BuildBatchJobs(items, jobspec.BatchOptions{
				OutputDir: args[1],
				Toggles: jobspec.Toggles{
					Exposure: cfg.Batch.ApplyExposure && !noExposure,
					Lens:     cfg.Batch.ApplyLens && !noLens,
					Color:    cfg.Batch.ApplyColor && !noColor,
				},
				Format:  format,
				Quality: quality,
			})

			return dispatch(cmd, cfg, logger, handle, jobs, notes)
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Recursively scan subdirectories")
	cmd.Flags().BoolVar(&noExposure, "no-exposure", false, "Skip exposure correction")
	cmd.Flags().BoolVar(&noLens, "no-lens", false, "Skip lens correction")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Skip color grading")
	cmd.Flags().StringVar(&formatFlag, "format", "", "Output format: jpg, tif, or psd (default from config)")
	cmd.Flags().IntVar(&qualityFlag, "quality", 0, "JPEG quality 0-100 (default from config)")
	cmd.Flags().StringVar(&photoshopFlag, "photoshop", "", "Path to the editor executable")

	return cmd
}
