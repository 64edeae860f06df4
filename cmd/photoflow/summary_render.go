package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"photoflow/internal/runner"
)

// renderSummary formats the terminal artifact of a run: one row per job in
// submission order, plus warnings and totals.
func renderSummary(summary *runner.Summary) string {
	var b strings.Builder

	for _, warning := range summary.Warnings {
		b.WriteString("warning: ")
		b.WriteString(warning)
		b.WriteByte('\n')
	}

	tw := table.NewWriter()
	if stdoutIsTerminal() {
		tw.SetStyle(table.StyleRounded)
	}
	tw.AppendHeader(table.Row{"#", "Job", "Kind", "Status", "Details"})
	for i, result := range summary.Results {
		details := result.OutputPath
		if !result.Succeeded() {
			details = result.Message
		}
		tw.AppendRow(table.Row{i + 1, result.JobID, string(result.JobKind), string(result.Status), details})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})
	b.WriteString(tw.Render())
	b.WriteByte('\n')

	b.WriteString(fmt.Sprintf("%d jobs: %d succeeded, %d failed",
		summary.Total(), summary.Succeeded, summary.Failed))
	if summary.Canceled {
		b.WriteString(" (canceled before completion)")
	}
	b.WriteString("\nrun " + summary.RunID)
	return b.String()
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func formatCount(n int, singular, plural string) string {
	if n == 1 {
		return strconv.Itoa(n) + " " + singular
	}
	return strconv.Itoa(n) + " " + plural
}
