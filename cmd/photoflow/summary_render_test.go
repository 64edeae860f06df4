package main

import (
	"strings"
	"testing"

	"photoflow/internal/jobspec"
	"photoflow/internal/runner"
	"photoflow/internal/services/photoshop"
)

func TestRenderSummaryListsJobsInOrder(t *testing.T) {
	summary := &runner.Summary{RunID: "run-1"}
	summary.Warnings = []string{"1 file ignored: incomplete bracket set"}
	for _, result := range []photoshop.Result{
		{JobID: "a.jpg", JobKind: jobspec.KindBatchEdit, Status: photoshop.StatusSucceeded, Message: "ok", OutputPath: "/out/a.jpg"},
		{JobID: "b.jpg", JobKind: jobspec.KindBatchEdit, Status: photoshop.StatusFailed, Message: "editor process failed: exit status 1"},
	} {
		summary.Results = append(summary.Results, result)
	}
	summary.Succeeded = 1
	summary.Failed = 1

	rendered := renderSummary(summary)
	if !strings.Contains(rendered, "warning: 1 file ignored") {
		t.Fatalf("expected warning line, got %q", rendered)
	}
	if !strings.Contains(rendered, "2 jobs: 1 succeeded, 1 failed") {
		t.Fatalf("expected counts, got %q", rendered)
	}
	if !strings.Contains(rendered, "/out/a.jpg") {
		t.Fatalf("expected output path for succeeded job, got %q", rendered)
	}
	if !strings.Contains(rendered, "exit status 1") {
		t.Fatalf("expected failure message for failed job, got %q", rendered)
	}
	if strings.Index(rendered, "a.jpg") > strings.Index(rendered, "b.jpg") {
		t.Fatal("expected results rendered in submission order")
	}
}

func TestRenderSummaryCanceled(t *testing.T) {
	summary := &runner.Summary{RunID: "run-2", Canceled: true}
	rendered := renderSummary(summary)
	if !strings.Contains(rendered, "canceled before completion") {
		t.Fatalf("expected cancellation note, got %q", rendered)
	}
}

func TestHelperFormatting(t *testing.T) {
	if droppedWarning(1) != "1 file ignored: incomplete bracket set" {
		t.Fatalf("unexpected singular warning %q", droppedWarning(1))
	}
	if droppedWarning(3) != "3 files ignored: incomplete bracket set" {
		t.Fatalf("unexpected plural warning %q", droppedWarning(3))
	}
	if firstNonEmpty("", "a", "b") != "a" {
		t.Fatal("expected first non-empty value")
	}
	if formatCount(1, "dependency", "dependencies") != "1 dependency" {
		t.Fatal("unexpected singular count")
	}
	if formatCount(2, "dependency", "dependencies") != "2 dependencies" {
		t.Fatal("unexpected plural count")
	}
}
