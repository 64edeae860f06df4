package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"photoflow/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	var photoshopFlag string

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Check availability of the external tools photoflow drives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := deps.Check(firstNonEmpty(photoshopFlag, cfg.Photoshop.ExecutablePath))

			tw := table.NewWriter()
			if stdoutIsTerminal() {
				tw.SetStyle(table.StyleRounded)
			}
			tw.AppendHeader(table.Row{"Dependency", "Available", "Detail"})
			missing := 0
			for _, status := range results {
				available := "yes"
				if !status.Available {
					available = "no"
					missing++
				}
				tw.AppendRow(table.Row{status.Name, available, status.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), tw.Render())

			if missing > 0 {
				return fmt.Errorf("%s unavailable", formatCount(missing, "dependency", "dependencies"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&photoshopFlag, "photoshop", "", "Path to the editor executable")
	return cmd
}
